package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/metricsource"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	demoTenantID   = "demo"
	demoEmployeeID = "demo-employee"
	seedMonths     = 3
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS monthly_sales_metrics (
		tenant_id          TEXT        NOT NULL,
		employee_id        TEXT,
		month              DATE        NOT NULL,
		new_leads_today    INTEGER     NOT NULL DEFAULT 0,
		appointments_today INTEGER     NOT NULL DEFAULT 0,
		conversion_rate    NUMERIC(6,2),
		leads_trend        NUMERIC(8,2) NOT NULL DEFAULT 0,
		appointments_trend NUMERIC(8,2) NOT NULL DEFAULT 0,
		leads_whatsapp     INTEGER     NOT NULL DEFAULT 0,
		leads_instagram    INTEGER     NOT NULL DEFAULT 0,
		leads_email        INTEGER     NOT NULL DEFAULT 0,
		leads_phone        INTEGER     NOT NULL DEFAULT 0,
		new_clients        INTEGER     NOT NULL DEFAULT 0,
		distinct_clients   INTEGER     NOT NULL DEFAULT 0,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS monthly_sales_metrics_scope_idx
		ON monthly_sales_metrics (tenant_id, (COALESCE(employee_id, '')), month)`,

	`CREATE TABLE IF NOT EXISTS conversation_metrics (
		tenant_id                      TEXT        NOT NULL,
		employee_id                    TEXT,
		month                          DATE        NOT NULL,
		total_conversations            INTEGER     NOT NULL DEFAULT 0,
		conversations_with_appointment INTEGER     NOT NULL DEFAULT 0,
		appointment_conversion_rate    NUMERIC(6,2),
		avg_first_response_seconds     NUMERIC(10,2) NOT NULL DEFAULT 0,
		fast_response_rate             NUMERIC(6,2) NOT NULL DEFAULT 0,
		whatsapp_conversations         INTEGER     NOT NULL DEFAULT 0,
		instagram_conversations        INTEGER     NOT NULL DEFAULT 0,
		email_conversations            INTEGER     NOT NULL DEFAULT 0,
		phone_conversations            INTEGER     NOT NULL DEFAULT 0,
		satisfaction_average           NUMERIC(4,2) NOT NULL DEFAULT 0,
		avg_resolution_minutes         NUMERIC(10,2) NOT NULL DEFAULT 0,
		created_at                     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at                     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS conversation_metrics_scope_idx
		ON conversation_metrics (tenant_id, (COALESCE(employee_id, '')), month)`,

	`CREATE TABLE IF NOT EXISTS procedure_sales_metrics (
		tenant_id      TEXT          NOT NULL,
		month          DATE          NOT NULL,
		procedure_name TEXT          NOT NULL,
		quantity       INTEGER       NOT NULL DEFAULT 0,
		total_revenue  NUMERIC(14,2) NOT NULL DEFAULT 0,
		average_ticket NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at     TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
		UNIQUE (tenant_id, month, procedure_name)
	)`,

	`CREATE TABLE IF NOT EXISTS conversations (
		id          TEXT PRIMARY KEY,
		tenant_id   TEXT        NOT NULL,
		employee_id TEXT,
		created_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS conversations_tenant_created_idx ON conversations (tenant_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS appointments (
		id              TEXT PRIMARY KEY,
		tenant_id       TEXT        NOT NULL,
		employee_id     TEXT,
		conversation_id TEXT REFERENCES conversations (id) ON DELETE SET NULL,
		created_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS appointments_tenant_created_idx ON appointments (tenant_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS messages (
		id              TEXT PRIMARY KEY,
		tenant_id       TEXT        NOT NULL,
		employee_id     TEXT,
		source_category TEXT,
		created_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS messages_tenant_created_idx ON messages (tenant_id, created_at)`,
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for i, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("erro no comando %d do schema: %w", i+1, err)
		}
	}

	log.L.WithField("statements", len(schema)).Info("migration: schema criado")
	return nil
}

// seedMetrics grava as linhas mensais (empresa e funcionária) dos últimos meses
func seedMetrics(ctx context.Context, tx *sql.Tx, fixture *metricsource.Fixture, filters []domain.MetricFilter, now time.Time) error {
	monthlyRepo := repository.NewMonthlySalesMetricsRepository(tx)
	conversationRepo := repository.NewConversationMetricsRepository(tx)
	procedureRepo := repository.NewProcedureSalesMetricsRepository(tx)

	for offset := 0; offset < seedMonths; offset++ {
		monthKey := domain.ResolveMonthAt(now.AddDate(0, -offset, 0)).MonthKey

		for _, filter := range filters {
			monthly, err := fixture.FetchMonthlySales(ctx, filter, monthKey)
			if err != nil {
				return err
			}
			if err := monthlyRepo.SaveOrUpdate(ctx, monthly); err != nil {
				return fmt.Errorf("erro ao gravar métricas mensais de %s: %w", monthKey, err)
			}

			conversation, err := fixture.FetchConversationMetrics(ctx, filter, monthKey)
			if err != nil {
				return err
			}
			if err := conversationRepo.SaveOrUpdate(ctx, conversation); err != nil {
				return fmt.Errorf("erro ao gravar métricas de conversas de %s: %w", monthKey, err)
			}
		}

		log.L.WithField("month", monthKey).Info("migration: métricas mensais gravadas")
	}

	procedures, err := fixture.FetchProcedureSales(ctx, filters[0])
	if err != nil {
		return err
	}
	for _, procedure := range procedures {
		if err := procedureRepo.SaveOrUpdate(ctx, procedure); err != nil {
			return fmt.Errorf("erro ao gravar o procedimento %s: %w", procedure.Procedure, err)
		}
	}

	return nil
}

// seedActivity grava mensagens, conversas e agendamentos do mês corrente da funcionária
func seedActivity(ctx context.Context, tx *sql.Tx, fixture *metricsource.Fixture, filter domain.MetricFilter, now time.Time) error {
	window := domain.ResolveMonthAt(now)

	appointments, conversations, err := fixture.FetchAppointmentsAndConversations(ctx, filter, window.Start, window.End)
	if err != nil {
		return err
	}

	// os ids de demonstração são trocados por ids curtos, mantendo o vínculo agendamento -> conversa
	conversationIDs := make(map[string]string, len(conversations))
	for _, conversation := range conversations {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}
		conversationIDs[conversation.ID] = id

		if err := insertRow(ctx, tx, "conversations",
			[]string{"id", "tenant_id", "employee_id", "created_at"},
			id, filter.TenantID, filter.EmployeeID, conversation.CreatedAt,
		); err != nil {
			return err
		}
	}

	for _, appointment := range appointments {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		var conversationID *string
		if appointment.FromConversation() {
			if mapped, ok := conversationIDs[*appointment.ConversationRef]; ok {
				conversationID = &mapped
			}
		}

		if err := insertRow(ctx, tx, "appointments",
			[]string{"id", "tenant_id", "employee_id", "conversation_id", "created_at"},
			id, filter.TenantID, filter.EmployeeID, conversationID, appointment.CreatedAt,
		); err != nil {
			return err
		}
	}

	events, err := fixture.FetchEvents(ctx, filter, window.Start, window.End)
	if err != nil {
		return err
	}
	for _, event := range events {
		id, err := utils.GenerateID()
		if err != nil {
			return err
		}

		if err := insertRow(ctx, tx, "messages",
			[]string{"id", "tenant_id", "employee_id", "source_category", "created_at"},
			id, filter.TenantID, filter.EmployeeID, event.SourceCategory, event.Timestamp,
		); err != nil {
			return err
		}
	}

	log.L.WithFields(log.Fields{
		"conversations": len(conversations),
		"appointments":  len(appointments),
		"messages":      len(events),
	}).Info("migration: registros brutos gravados")

	return nil
}

func insertRow(ctx context.Context, tx *sql.Tx, table string, columns []string, values ...any) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir em %s: %w", table, err)
	}

	return nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx := context.Background()
	startTime := time.Now()

	log.L.Info("migration: conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("migration: erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	now := time.Now().In(cfg.Dashboard.Location)
	fixture := &metricsource.Fixture{Now: func() time.Time { return now }}

	employeeID := demoEmployeeID
	company := domain.MetricFilter{TenantID: demoTenantID}
	employee := domain.MetricFilter{TenantID: demoTenantID, EmployeeID: &employeeID}

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}
		if err := seedMetrics(ctx, tx, fixture, []domain.MetricFilter{company, employee}, now); err != nil {
			return err
		}
		return seedActivity(ctx, tx, fixture, employee, now)
	})
	if err != nil {
		log.L.WithError(err).Fatal("migration: transação revertida")
	}

	log.L.WithFields(log.Fields{
		"tenant_id": demoTenantID,
		"elapsed":   time.Since(startTime).String(),
	}).Info("migration: carga inicial concluída")
}
