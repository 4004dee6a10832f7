package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	messagesTable      = "messages m"
	appointmentsTable  = "appointments a"
	conversationsTable = "conversations c"
)

// ActivityRepository lê os registros brutos (mensagens, agendamentos e conversas) de um período
type ActivityRepository interface {
	ListEvents(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.EventRecord, error)
	ListAppointments(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.AppointmentRecord, error)
	ListConversations(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.ConversationRecord, error)
}

type activityRepository struct {
	conn postgres.Queryer
}

func NewActivityRepository(conn postgres.Queryer) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func betweenCreatedAt(builder squirrel.SelectBuilder, alias string, start, end time.Time) squirrel.SelectBuilder {
	return builder.
		Where(squirrel.GtOrEq{alias + ".created_at": start}).
		Where(squirrel.LtOrEq{alias + ".created_at": end})
}

func (r *activityRepository) ListEvents(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.EventRecord, error) {
	builder := squirrel.
		Select("m.created_at", "m.source_category").
		From(messagesTable).
		PlaceholderFormat(squirrel.Dollar)

	builder = withMetricFilter(betweenCreatedAt(builder, "m", start, end), "m", filter, false)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]domain.EventRecord, 0)
	for rows.Next() {
		var (
			event    domain.EventRecord
			category sql.NullString
		)
		if err := rows.Scan(&event.Timestamp, &category); err != nil {
			return nil, fmt.Errorf("erro ao escanear mensagens: %w", err)
		}
		event.SourceCategory = category.String
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

func (r *activityRepository) ListAppointments(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.AppointmentRecord, error) {
	builder := squirrel.
		Select("a.id", "a.conversation_id", "a.created_at").
		From(appointmentsTable).
		OrderBy("a.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = withMetricFilter(betweenCreatedAt(builder, "a", start, end), "a", filter, false)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	appointments := make([]domain.AppointmentRecord, 0)
	for rows.Next() {
		var (
			appointment    domain.AppointmentRecord
			conversationID sql.NullString
		)
		if err := rows.Scan(&appointment.ID, &conversationID, &appointment.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear agendamentos: %w", err)
		}
		if conversationID.Valid {
			appointment.ConversationRef = &conversationID.String
		}
		appointments = append(appointments, appointment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return appointments, nil
}

func (r *activityRepository) ListConversations(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.ConversationRecord, error) {
	builder := squirrel.
		Select("c.id", "c.created_at", "c.employee_id").
		From(conversationsTable).
		OrderBy("c.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	builder = withMetricFilter(betweenCreatedAt(builder, "c", start, end), "c", filter, false)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	conversations := make([]domain.ConversationRecord, 0)
	for rows.Next() {
		var (
			conversation domain.ConversationRecord
			employeeID   sql.NullString
		)
		if err := rows.Scan(&conversation.ID, &conversation.CreatedAt, &employeeID); err != nil {
			return nil, fmt.Errorf("erro ao escanear conversas: %w", err)
		}
		if employeeID.Valid {
			conversation.EmployeeRef = &employeeID.String
		}
		conversations = append(conversations, conversation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return conversations, nil
}
