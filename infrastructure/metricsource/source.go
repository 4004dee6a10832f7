// Package metricsource define a fonte das métricas do dashboard e suas implementações (banco e demonstração)
package metricsource

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/telemetry"
)

// Source lê os conjuntos de dados usados no cálculo do dashboard.
// Ausência de linha retorna (nil, nil); falhas retornam *domain.SourceError.
type Source interface {
	FetchMonthlySales(ctx context.Context, filter domain.MetricFilter, monthKey string) (*domain.MonthlySalesMetrics, error)
	FetchConversationMetrics(ctx context.Context, filter domain.MetricFilter, monthKey string) (*domain.ConversationMetrics, error)
	FetchProcedureSales(ctx context.Context, filter domain.MetricFilter) ([]*domain.ProcedureSalesMetrics, error)
	FetchEvents(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.EventRecord, error)
	FetchAppointmentsAndConversations(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.AppointmentRecord, []domain.ConversationRecord, error)
}

// New escolhe a implementação configurada em METRIC_SOURCE
func New(cfg *config.Config, conn postgres.Queryer, metrics *telemetry.Metrics) (Source, error) {
	switch cfg.MetricSource.Kind {
	case config.MetricSourceFixture:
		return NewFixture(), nil
	case config.MetricSourceLive, "":
		if conn == nil {
			return nil, fmt.Errorf("fonte %q exige conexão com o banco", config.MetricSourceLive)
		}
		return NewLive(
			repository.NewMonthlySalesMetricsRepository(conn),
			repository.NewConversationMetricsRepository(conn),
			repository.NewProcedureSalesMetricsRepository(conn),
			repository.NewActivityRepository(conn),
			cfg.MetricSource.Timeout,
			metrics,
		), nil
	default:
		return nil, fmt.Errorf("fonte de métricas desconhecida: %q", cfg.MetricSource.Kind)
	}
}
