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
	monthlySalesMetricsTable = "monthly_sales_metrics msm"
)

var monthlySalesMetricsColumns = []string{
	"msm.tenant_id",
	"msm.employee_id",
	"msm.month",
	"msm.new_leads_today",
	"msm.appointments_today",
	"msm.conversion_rate",
	"msm.leads_trend",
	"msm.appointments_trend",
	"msm.leads_whatsapp",
	"msm.leads_instagram",
	"msm.leads_email",
	"msm.leads_phone",
	"msm.new_clients",
	"msm.distinct_clients",
}

type MonthlySalesMetricsRepository interface {
	GetByMonth(ctx context.Context, filter domain.MetricFilter, monthKey string) (*domain.MonthlySalesMetrics, error)
	SaveOrUpdate(ctx context.Context, metrics *domain.MonthlySalesMetrics) error
}

type monthlySalesMetricsRepository struct {
	conn postgres.Queryer
}

func NewMonthlySalesMetricsRepository(conn postgres.Queryer) MonthlySalesMetricsRepository {
	return &monthlySalesMetricsRepository{
		conn: conn,
	}
}

func (r *monthlySalesMetricsRepository) GetByMonth(ctx context.Context, filter domain.MetricFilter, monthKey string) (*domain.MonthlySalesMetrics, error) {
	builder := squirrel.
		Select(monthlySalesMetricsColumns...).
		From(monthlySalesMetricsTable).
		Where(squirrel.Eq{"msm.month": monthKey}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := withMetricFilter(builder, "msm", filter, true).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		metrics        domain.MonthlySalesMetrics
		employeeID     sql.NullString
		conversionRate sql.NullFloat64
	)

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&metrics.TenantID,
		&employeeID,
		&metrics.Month,
		&metrics.NewLeadsToday,
		&metrics.AppointmentsToday,
		&conversionRate,
		&metrics.LeadsTrend,
		&metrics.AppointmentsTrend,
		&metrics.LeadsByChannel.WhatsApp,
		&metrics.LeadsByChannel.Instagram,
		&metrics.LeadsByChannel.Email,
		&metrics.LeadsByChannel.Phone,
		&metrics.NewClients,
		&metrics.DistinctClients,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas mensais de vendas: %w", err)
	}

	if employeeID.Valid {
		metrics.EmployeeID = &employeeID.String
	}
	if conversionRate.Valid {
		metrics.ConversionRate = &conversionRate.Float64
	}

	return &metrics, nil
}

func (r *monthlySalesMetricsRepository) SaveOrUpdate(ctx context.Context, metrics *domain.MonthlySalesMetrics) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("monthly_sales_metrics").
		Columns(
			"tenant_id", "employee_id", "month",
			"new_leads_today", "appointments_today", "conversion_rate",
			"leads_trend", "appointments_trend",
			"leads_whatsapp", "leads_instagram", "leads_email", "leads_phone",
			"new_clients", "distinct_clients",
		).
		Values(
			metrics.TenantID, metrics.EmployeeID, metrics.Month.Format(domain.MonthKeyLayout),
			metrics.NewLeadsToday, metrics.AppointmentsToday, metrics.ConversionRate,
			metrics.LeadsTrend, metrics.AppointmentsTrend,
			metrics.LeadsByChannel.WhatsApp, metrics.LeadsByChannel.Instagram,
			metrics.LeadsByChannel.Email, metrics.LeadsByChannel.Phone,
			metrics.NewClients, metrics.DistinctClients,
		).
		Suffix(`
			ON CONFLICT (tenant_id, (COALESCE(employee_id, '')), month) DO UPDATE SET
				new_leads_today = EXCLUDED.new_leads_today,
				appointments_today = EXCLUDED.appointments_today,
				conversion_rate = EXCLUDED.conversion_rate,
				leads_trend = EXCLUDED.leads_trend,
				appointments_trend = EXCLUDED.appointments_trend,
				leads_whatsapp = EXCLUDED.leads_whatsapp,
				leads_instagram = EXCLUDED.leads_instagram,
				leads_email = EXCLUDED.leads_email,
				leads_phone = EXCLUDED.leads_phone,
				new_clients = EXCLUDED.new_clients,
				distinct_clients = EXCLUDED.distinct_clients,
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
