package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	procedureSalesMetricsTable = "procedure_sales_metrics psm"
)

type ProcedureSalesMetricsRepository interface {
	ListByTenant(ctx context.Context, filter domain.MetricFilter) ([]*domain.ProcedureSalesMetrics, error)
	SaveOrUpdate(ctx context.Context, metrics *domain.ProcedureSalesMetrics) error
}

type procedureSalesMetricsRepository struct {
	conn postgres.Queryer
}

func NewProcedureSalesMetricsRepository(conn postgres.Queryer) ProcedureSalesMetricsRepository {
	return &procedureSalesMetricsRepository{
		conn: conn,
	}
}

// ListByTenant retorna as vendas por procedimento da empresa, da maior para a menor receita.
// A tabela não tem funcionária, então apenas a empresa do filtro é considerada.
func (r *procedureSalesMetricsRepository) ListByTenant(ctx context.Context, filter domain.MetricFilter) ([]*domain.ProcedureSalesMetrics, error) {
	builder := squirrel.
		Select(
			"psm.tenant_id",
			"psm.month",
			"psm.procedure_name",
			"psm.quantity",
			"psm.total_revenue",
			"psm.average_ticket",
		).
		From(procedureSalesMetricsTable).
		OrderBy("psm.total_revenue DESC", "psm.procedure_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.TenantID != "" {
		builder = builder.Where(squirrel.Eq{"psm.tenant_id": filter.TenantID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.ProcedureSalesMetrics, 0)
	for rows.Next() {
		var metrics domain.ProcedureSalesMetrics
		if err := rows.Scan(
			&metrics.TenantID,
			&metrics.Month,
			&metrics.Procedure,
			&metrics.Quantity,
			&metrics.TotalRevenue,
			&metrics.AverageTicket,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por procedimento: %w", err)
		}
		result = append(result, &metrics)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *procedureSalesMetricsRepository) SaveOrUpdate(ctx context.Context, metrics *domain.ProcedureSalesMetrics) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("procedure_sales_metrics").
		Columns("tenant_id", "month", "procedure_name", "quantity", "total_revenue", "average_ticket").
		Values(
			metrics.TenantID,
			metrics.Month.Format(domain.MonthKeyLayout),
			metrics.Procedure,
			metrics.Quantity,
			metrics.TotalRevenue,
			metrics.AverageTicket,
		).
		Suffix(`
			ON CONFLICT (tenant_id, month, procedure_name) DO UPDATE SET
				quantity = EXCLUDED.quantity,
				total_revenue = EXCLUDED.total_revenue,
				average_ticket = EXCLUDED.average_ticket,
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
