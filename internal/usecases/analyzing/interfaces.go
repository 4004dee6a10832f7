package analyzing

import (
	"context"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Analyzer calcula os números do dashboard de vendas.
// reference nil significa o mês atual no fuso configurado.
type Analyzer interface {
	// GetDashboard calcula todos os widgets; conjuntos de dados com falha viram avisos e valores zerados
	GetDashboard(ctx context.Context, filter domain.MetricFilter, reference *time.Time) (*domain.Dashboard, error)

	// GetFunnel retorna nil quando não há métricas para o mês
	GetFunnel(ctx context.Context, filter domain.MetricFilter, reference *time.Time) (*domain.FunnelSummary, error)

	GetActivityPeaks(ctx context.Context, filter domain.MetricFilter, reference *time.Time, opts domain.PeakOptions) (domain.ActivityPeaks, error)

	GetRequestTypes(ctx context.Context, filter domain.MetricFilter, reference *time.Time) (domain.RequestTypeBreakdown, error)

	GetConversations(ctx context.Context, filter domain.MetricFilter, reference *time.Time) (domain.NormalizedDashboardMetrics, error)

	// GetProcedures não é limitado ao mês: considera todas as vendas da empresa
	GetProcedures(ctx context.Context, filter domain.MetricFilter) (domain.ProcedureSalesSummary, error)
}
