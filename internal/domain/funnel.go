package domain

import "math"

// RequestTypeBreakdown divide as conversas do mês por tipo de solicitação
type RequestTypeBreakdown struct {
	AgendamentosPercent   int `json:"agendamentos_percent"`
	ReagendamentosPercent int `json:"reagendamentos_percent"`
	InformacoesPercent    int `json:"informacoes_percent"`

	AppointmentsWithConversation    int `json:"appointments_with_conversation"`
	Rebookings                      int `json:"rebookings"`
	ConversationsWithoutAppointment int `json:"conversations_without_appointment"`
	TotalConversations              int `json:"total_conversations"`
}

// ComputeRequestTypeBreakdown calcula os percentuais de agendamentos, reagendamentos e pedidos
// de informação. Cada percentual é arredondado de forma independente, então a soma pode diferir de 100.
func ComputeRequestTypeBreakdown(totalConversations, totalAppointments, appointmentsWithConversation int) RequestTypeBreakdown {
	rebookings := maxInt(0, totalAppointments-appointmentsWithConversation)
	withoutAppointment := maxInt(0, totalConversations-appointmentsWithConversation)

	breakdown := RequestTypeBreakdown{
		AppointmentsWithConversation:    maxInt(0, appointmentsWithConversation),
		Rebookings:                      rebookings,
		ConversationsWithoutAppointment: withoutAppointment,
		TotalConversations:              maxInt(0, totalConversations),
	}

	if totalConversations <= 0 {
		return breakdown
	}

	total := float64(totalConversations)
	agendamentos := clampPercent(int(math.Round(float64(appointmentsWithConversation) / total * 100)))
	reagendamentos := clampPercent(int(math.Round(float64(rebookings) / total * 100)))

	breakdown.AgendamentosPercent = agendamentos
	breakdown.ReagendamentosPercent = reagendamentos
	breakdown.InformacoesPercent = maxInt(0, 100-agendamentos-reagendamentos)

	return breakdown
}

// CountRequestTypes conta os agendamentos do período e quantos vieram de uma conversa
func CountRequestTypes(appointments []AppointmentRecord, conversations []ConversationRecord) RequestTypeBreakdown {
	withConversation := 0
	for _, appointment := range appointments {
		if appointment.FromConversation() {
			withConversation++
		}
	}

	return ComputeRequestTypeBreakdown(len(conversations), len(appointments), withConversation)
}

// RateSource indica de qual conjunto de dados veio a taxa de conversão
type RateSource string

const (
	RateFromConversations RateSource = "conversation_metrics"
	RateFromMonthlySales  RateSource = "monthly_sales"
	RateUnavailable       RateSource = "none"
)

// DailySnapshot são os números do dia corrente, separados dos totais do mês
type DailySnapshot struct {
	NewLeadsToday     int     `json:"new_leads_today"`
	AppointmentsToday int     `json:"appointments_today"`
	LeadsTrend        float64 `json:"leads_trend"`
	AppointmentsTrend float64 `json:"appointments_trend"`
}

type FunnelSummary struct {
	NewLeads              int               `json:"new_leads"`
	ScheduledAppointments int               `json:"scheduled_appointments"`
	TotalConversations    int               `json:"total_conversations"`
	ConversionRate        float64           `json:"conversion_rate"`
	ConversionRateSource  RateSource        `json:"conversion_rate_source"`
	ConversionQuality     ConversionQuality `json:"conversion_quality"`
	LeadsByChannel        ChannelCounts     `json:"leads_by_channel"`
	Daily                 DailySnapshot     `json:"daily"`
}

// ComputeFunnelSummary junta as métricas mensais de vendas e de conversas no resumo do funil.
// Retorna nil quando nenhuma das duas linhas existe para o período.
func ComputeFunnelSummary(monthly *MonthlySalesMetrics, conversation *ConversationMetrics) *FunnelSummary {
	if monthly == nil && conversation == nil {
		return nil
	}

	summary := &FunnelSummary{ConversionRateSource: RateUnavailable}

	if monthly != nil {
		summary.NewLeads = maxInt(0, monthly.NewClients)
		summary.LeadsByChannel = monthly.LeadsByChannel
		summary.Daily = DailySnapshot{
			NewLeadsToday:     maxInt(0, monthly.NewLeadsToday),
			AppointmentsToday: maxInt(0, monthly.AppointmentsToday),
			LeadsTrend:        monthly.LeadsTrend,
			AppointmentsTrend: monthly.AppointmentsTrend,
		}
	}

	if conversation != nil {
		summary.ScheduledAppointments = maxInt(0, conversation.ConversationsWithAppointment)
		summary.TotalConversations = maxInt(0, conversation.TotalConversations)
	}

	switch {
	case conversation != nil && conversation.AppointmentConversionRate != nil:
		summary.ConversionRate = *conversation.AppointmentConversionRate
		summary.ConversionRateSource = RateFromConversations
	case monthly != nil && monthly.ConversionRate != nil:
		summary.ConversionRate = *monthly.ConversionRate
		summary.ConversionRateSource = RateFromMonthlySales
	}

	summary.ConversionQuality = ClassifyConversionQuality(summary.ConversionRate)

	return summary
}

func clampPercent(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
