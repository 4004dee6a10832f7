package metricsource

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/telemetry"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

const defaultReadTimeout = 5 * time.Second

// Live lê as métricas do PostgreSQL através dos repositórios
type Live struct {
	monthlyRepo      repository.MonthlySalesMetricsRepository
	conversationRepo repository.ConversationMetricsRepository
	procedureRepo    repository.ProcedureSalesMetricsRepository
	activityRepo     repository.ActivityRepository
	timeout          time.Duration
	metrics          *telemetry.Metrics
}

func NewLive(
	monthlyRepo repository.MonthlySalesMetricsRepository,
	conversationRepo repository.ConversationMetricsRepository,
	procedureRepo repository.ProcedureSalesMetricsRepository,
	activityRepo repository.ActivityRepository,
	timeout time.Duration,
	metrics *telemetry.Metrics,
) *Live {
	if timeout <= 0 {
		timeout = defaultReadTimeout
	}

	return &Live{
		monthlyRepo:      monthlyRepo,
		conversationRepo: conversationRepo,
		procedureRepo:    procedureRepo,
		activityRepo:     activityRepo,
		timeout:          timeout,
		metrics:          metrics,
	}
}

func (l *Live) FetchMonthlySales(ctx context.Context, filter domain.MetricFilter, monthKey string) (*domain.MonthlySalesMetrics, error) {
	return read(ctx, l, domain.DatasetMonthlySales, filter, func(ctx context.Context) (*domain.MonthlySalesMetrics, bool, error) {
		row, err := l.monthlyRepo.GetByMonth(ctx, filter, monthKey)
		return row, row == nil, err
	})
}

func (l *Live) FetchConversationMetrics(ctx context.Context, filter domain.MetricFilter, monthKey string) (*domain.ConversationMetrics, error) {
	return read(ctx, l, domain.DatasetConversationMetrics, filter, func(ctx context.Context) (*domain.ConversationMetrics, bool, error) {
		row, err := l.conversationRepo.GetByMonth(ctx, filter, monthKey)
		return row, row == nil, err
	})
}

func (l *Live) FetchProcedureSales(ctx context.Context, filter domain.MetricFilter) ([]*domain.ProcedureSalesMetrics, error) {
	return read(ctx, l, domain.DatasetProcedureSales, filter, func(ctx context.Context) ([]*domain.ProcedureSalesMetrics, bool, error) {
		rows, err := l.procedureRepo.ListByTenant(ctx, filter)
		return rows, len(rows) == 0, err
	})
}

func (l *Live) FetchEvents(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.EventRecord, error) {
	return read(ctx, l, domain.DatasetEvents, filter, func(ctx context.Context) ([]domain.EventRecord, bool, error) {
		events, err := l.activityRepo.ListEvents(ctx, filter, start, end)
		return events, len(events) == 0, err
	})
}

type funnelRecords struct {
	appointments  []domain.AppointmentRecord
	conversations []domain.ConversationRecord
}

// FetchAppointmentsAndConversations lê agendamentos e conversas em paralelo; os dois formam um único conjunto de dados
func (l *Live) FetchAppointmentsAndConversations(ctx context.Context, filter domain.MetricFilter, start, end time.Time) ([]domain.AppointmentRecord, []domain.ConversationRecord, error) {
	records, err := read(ctx, l, domain.DatasetFunnelEvents, filter, func(ctx context.Context) (funnelRecords, bool, error) {
		var result funnelRecords

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			result.appointments, err = l.activityRepo.ListAppointments(gctx, filter, start, end)
			return err
		})
		g.Go(func() error {
			var err error
			result.conversations, err = l.activityRepo.ListConversations(gctx, filter, start, end)
			return err
		})

		if err := g.Wait(); err != nil {
			return funnelRecords{}, false, err
		}

		return result, len(result.appointments) == 0 && len(result.conversations) == 0, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return records.appointments, records.conversations, nil
}

// read aplica o timeout da leitura, registra métricas e converte falhas em *domain.SourceError
func read[T any](ctx context.Context, l *Live, dataset domain.Dataset, filter domain.MetricFilter, fn func(context.Context) (T, bool, error)) (T, error) {
	readCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	started := time.Now()
	result, empty, err := fn(readCtx)
	elapsed := time.Since(started)

	if err != nil {
		outcome := telemetry.OutcomeError
		if errors.Is(err, context.DeadlineExceeded) {
			outcome = telemetry.OutcomeTimeout
		}
		l.metrics.ObserveSourceRead(string(dataset), outcome, elapsed)

		logger := log.ForContext(ctx).WithError(err).WithScope(filter.TenantID, filter.EmployeeID).WithFields(log.Fields{
			"dataset":     dataset,
			"duration_ms": elapsed.Milliseconds(),
		})
		logger.Warn("metric-source: falha ao ler conjunto de dados")

		var zero T
		return zero, domain.NewSourceError(dataset, err)
	}

	outcome := telemetry.OutcomeSuccess
	if empty {
		outcome = telemetry.OutcomeEmpty
	}
	l.metrics.ObserveSourceRead(string(dataset), outcome, elapsed)

	return result, nil
}
