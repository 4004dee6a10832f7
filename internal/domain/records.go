// Package domain contém as estruturas de dados e os cálculos de métricas do dashboard
package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// MetricFilter define o escopo de uma leitura de métricas (empresa e, opcionalmente, funcionária)
type MetricFilter struct {
	TenantID   string  `json:"tenant_id,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

// HasEmployee indica se o filtro está restrito a uma funcionária
func (f MetricFilter) HasEmployee() bool {
	return f.EmployeeID != nil && *f.EmployeeID != ""
}

// MaxEmployeeIDLength limita o tamanho do identificador de funcionária aceito nos filtros
const MaxEmployeeIDLength = 64

var employeeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateEmployeeID aceita letras, dígitos, "_" e "-", até MaxEmployeeIDLength caracteres
func ValidateEmployeeID(id string) error {
	if len(id) > MaxEmployeeIDLength {
		return NewInputError("employee_id", fmt.Sprintf("identificador maior que %d caracteres", MaxEmployeeIDLength))
	}
	if !employeeIDPattern.MatchString(id) {
		return NewInputError("employee_id", fmt.Sprintf("identificador inválido %q", id))
	}
	return nil
}

// EventRecord representa uma mensagem ou atividade usada apenas para agrupamento por horário
type EventRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	SourceCategory string    `json:"source_category"`
}

// AppointmentRecord representa um agendamento. Sem ConversationRef é considerado reagendamento.
type AppointmentRecord struct {
	ID              string    `json:"id"`
	ConversationRef *string   `json:"conversation_ref"`
	CreatedAt       time.Time `json:"created_at"`
}

// FromConversation indica se o agendamento nasceu de uma conversa rastreada
func (a AppointmentRecord) FromConversation() bool {
	return a.ConversationRef != nil && *a.ConversationRef != ""
}

type ConversationRecord struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	EmployeeRef *string   `json:"employee_ref"`
}

// ChannelCounts agrupa contagens por canal de atendimento
type ChannelCounts struct {
	WhatsApp  int `json:"whatsapp"`
	Instagram int `json:"instagram"`
	Email     int `json:"email"`
	Phone     int `json:"phone"`
}

// Total soma todos os canais
func (c ChannelCounts) Total() int {
	return c.WhatsApp + c.Instagram + c.Email + c.Phone
}

// MonthlySalesMetrics representa uma linha de métricas mensais de vendas por (empresa, funcionária, mês)
type MonthlySalesMetrics struct {
	TenantID          string        `json:"tenant_id"`
	EmployeeID        *string       `json:"employee_id"`
	Month             time.Time     `json:"month"`
	NewLeadsToday     int           `json:"new_leads_today"`
	AppointmentsToday int           `json:"appointments_today"`
	ConversionRate    *float64      `json:"conversion_rate"`
	LeadsTrend        float64       `json:"leads_trend"`
	AppointmentsTrend float64       `json:"appointments_trend"`
	LeadsByChannel    ChannelCounts `json:"leads_by_channel"`
	NewClients        int           `json:"new_clients"`
	DistinctClients   int           `json:"distinct_clients"`
}

// ConversationMetrics representa uma linha de métricas de conversas por (empresa, funcionária, mês)
type ConversationMetrics struct {
	TenantID                     string        `json:"tenant_id"`
	EmployeeID                   *string       `json:"employee_id"`
	Month                        time.Time     `json:"month"`
	TotalConversations           int           `json:"total_conversations"`
	ConversationsWithAppointment int           `json:"conversations_with_appointment"`
	AppointmentConversionRate    *float64      `json:"appointment_conversion_rate"`
	AvgFirstResponseSeconds      float64       `json:"avg_first_response_seconds"`
	FastResponseRate             float64       `json:"fast_response_rate"`
	Channels                     ChannelCounts `json:"channels"`
	SatisfactionAverage          float64       `json:"satisfaction_average"`
	AvgResolutionMinutes         float64       `json:"avg_resolution_minutes"`
}

// ProcedureSalesMetrics representa as vendas de um procedimento em um mês
type ProcedureSalesMetrics struct {
	TenantID      string          `json:"tenant_id"`
	Month         time.Time       `json:"month"`
	Procedure     string          `json:"procedure"`
	Quantity      int             `json:"quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
}
