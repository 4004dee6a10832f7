// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// withMetricFilter restringe a query à empresa e à funcionária do filtro.
// Sem funcionária, as tabelas de métricas usam a linha agregada da empresa (employee_id nulo).
func withMetricFilter(builder squirrel.SelectBuilder, alias string, filter domain.MetricFilter, aggregateWhenNoEmployee bool) squirrel.SelectBuilder {
	if filter.TenantID != "" {
		builder = builder.Where(squirrel.Eq{alias + ".tenant_id": filter.TenantID})
	}

	switch {
	case filter.HasEmployee():
		builder = builder.Where(squirrel.Eq{alias + ".employee_id": *filter.EmployeeID})
	case aggregateWhenNoEmployee:
		builder = builder.Where(squirrel.Eq{alias + ".employee_id": nil})
	}

	return builder
}

func wrapExecError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
