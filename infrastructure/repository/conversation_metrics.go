package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	conversationMetricsTable = "conversation_metrics cm"
)

var conversationMetricsColumns = []string{
	"cm.tenant_id",
	"cm.employee_id",
	"cm.month",
	"cm.total_conversations",
	"cm.conversations_with_appointment",
	"cm.appointment_conversion_rate",
	"cm.avg_first_response_seconds",
	"cm.fast_response_rate",
	"cm.whatsapp_conversations",
	"cm.instagram_conversations",
	"cm.email_conversations",
	"cm.phone_conversations",
	"cm.satisfaction_average",
	"cm.avg_resolution_minutes",
}

type ConversationMetricsRepository interface {
	GetByMonth(ctx context.Context, filter domain.MetricFilter, monthKey string) (*domain.ConversationMetrics, error)
	SaveOrUpdate(ctx context.Context, metrics *domain.ConversationMetrics) error
}

type conversationMetricsRepository struct {
	conn postgres.Queryer
}

func NewConversationMetricsRepository(conn postgres.Queryer) ConversationMetricsRepository {
	return &conversationMetricsRepository{
		conn: conn,
	}
}

func (r *conversationMetricsRepository) GetByMonth(ctx context.Context, filter domain.MetricFilter, monthKey string) (*domain.ConversationMetrics, error) {
	builder := squirrel.
		Select(conversationMetricsColumns...).
		From(conversationMetricsTable).
		Where(squirrel.Eq{"cm.month": monthKey}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := withMetricFilter(builder, "cm", filter, true).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	metrics, err := scanConversationMetrics(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas de conversas: %w", err)
	}

	return metrics, nil
}

func (r *conversationMetricsRepository) SaveOrUpdate(ctx context.Context, metrics *domain.ConversationMetrics) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("conversation_metrics").
		Columns(
			"tenant_id", "employee_id", "month",
			"total_conversations", "conversations_with_appointment", "appointment_conversion_rate",
			"avg_first_response_seconds", "fast_response_rate",
			"whatsapp_conversations", "instagram_conversations", "email_conversations", "phone_conversations",
			"satisfaction_average", "avg_resolution_minutes",
		).
		Values(
			metrics.TenantID, metrics.EmployeeID, metrics.Month.Format(domain.MonthKeyLayout),
			metrics.TotalConversations, metrics.ConversationsWithAppointment, metrics.AppointmentConversionRate,
			metrics.AvgFirstResponseSeconds, metrics.FastResponseRate,
			metrics.Channels.WhatsApp, metrics.Channels.Instagram, metrics.Channels.Email, metrics.Channels.Phone,
			metrics.SatisfactionAverage, metrics.AvgResolutionMinutes,
		).
		Suffix(`
			ON CONFLICT (tenant_id, (COALESCE(employee_id, '')), month) DO UPDATE SET
				total_conversations = EXCLUDED.total_conversations,
				conversations_with_appointment = EXCLUDED.conversations_with_appointment,
				appointment_conversion_rate = EXCLUDED.appointment_conversion_rate,
				avg_first_response_seconds = EXCLUDED.avg_first_response_seconds,
				fast_response_rate = EXCLUDED.fast_response_rate,
				whatsapp_conversations = EXCLUDED.whatsapp_conversations,
				instagram_conversations = EXCLUDED.instagram_conversations,
				email_conversations = EXCLUDED.email_conversations,
				phone_conversations = EXCLUDED.phone_conversations,
				satisfaction_average = EXCLUDED.satisfaction_average,
				avg_resolution_minutes = EXCLUDED.avg_resolution_minutes,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversationMetrics(row rowScanner) (*domain.ConversationMetrics, error) {
	var (
		metrics    domain.ConversationMetrics
		employeeID sql.NullString
		rate       sql.NullFloat64
	)

	err := row.Scan(
		&metrics.TenantID,
		&employeeID,
		&metrics.Month,
		&metrics.TotalConversations,
		&metrics.ConversationsWithAppointment,
		&rate,
		&metrics.AvgFirstResponseSeconds,
		&metrics.FastResponseRate,
		&metrics.Channels.WhatsApp,
		&metrics.Channels.Instagram,
		&metrics.Channels.Email,
		&metrics.Channels.Phone,
		&metrics.SatisfactionAverage,
		&metrics.AvgResolutionMinutes,
	)
	if err != nil {
		return nil, err
	}

	if employeeID.Valid {
		metrics.EmployeeID = &employeeID.String
	}
	if rate.Valid {
		metrics.AppointmentConversionRate = &rate.Float64
	}

	return &metrics, nil
}
