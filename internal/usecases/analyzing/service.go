package analyzing

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/metricsource"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/telemetry"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

const maxPeakTop = 24

// mensagem exposta no aviso; o erro original fica só no log
const warningMessage = "não foi possível ler este conjunto de dados; os valores foram zerados"

type Service struct {
	source   metricsource.Source
	location *time.Location
	peaks    domain.PeakOptions
	metrics  *telemetry.Metrics
	now      func() time.Time
}

// NewService cria o serviço de cálculo do dashboard
func NewService(cfg *config.Config, source metricsource.Source, metrics *telemetry.Metrics) *Service {
	location := cfg.Dashboard.Location
	if location == nil {
		location = time.UTC
	}

	return &Service{
		source:   source,
		location: location,
		peaks: domain.PeakOptions{
			BucketWidthHours: cfg.Dashboard.PeakBucketWidthHours,
			Top:              cfg.Dashboard.PeakTop,
			Location:         location,
		},
		metrics: metrics,
		now:     time.Now,
	}
}

// window resolve o mês pedido; sem referência usa "agora" no fuso do dashboard
func (s *Service) window(reference *time.Time) domain.MonthWindow {
	if reference != nil {
		return domain.ResolveMonthAt(*reference)
	}
	return domain.ResolveMonthAt(s.now().In(s.location))
}

func (s *Service) GetDashboard(ctx context.Context, filter domain.MetricFilter, reference *time.Time) (*domain.Dashboard, error) {
	started := time.Now()
	window := s.window(reference)

	logger := log.ForContext(ctx).
		WithScope(filter.TenantID, filter.EmployeeID).
		WithField("month_key", window.MonthKey)

	var (
		monthly       *domain.MonthlySalesMetrics
		conversation  *domain.ConversationMetrics
		procedures    []*domain.ProcedureSalesMetrics
		events        []domain.EventRecord
		appointments  []domain.AppointmentRecord
		conversations []domain.ConversationRecord

		mu       sync.Mutex
		warnings []domain.Warning
	)

	// falhas não interrompem as outras leituras: cada goroutine registra o aviso e retorna nil
	warn := func(dataset domain.Dataset, err error) {
		logger.WithError(err).WithField("dataset", dataset).Warn("dashboard: conjunto de dados substituído por valores padrão")

		mu.Lock()
		defer mu.Unlock()
		warnings = append(warnings, domain.Warning{Dataset: dataset, Message: warningMessage})
	}

	var g errgroup.Group
	g.Go(func() error {
		row, err := s.source.FetchMonthlySales(ctx, filter, window.MonthKey)
		if err != nil {
			warn(domain.DatasetMonthlySales, err)
			return nil
		}
		monthly = row
		return nil
	})
	g.Go(func() error {
		row, err := s.source.FetchConversationMetrics(ctx, filter, window.MonthKey)
		if err != nil {
			warn(domain.DatasetConversationMetrics, err)
			return nil
		}
		conversation = row
		return nil
	})
	g.Go(func() error {
		rows, err := s.source.FetchProcedureSales(ctx, filter)
		if err != nil {
			warn(domain.DatasetProcedureSales, err)
			return nil
		}
		procedures = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.source.FetchEvents(ctx, filter, window.Start, window.End)
		if err != nil {
			warn(domain.DatasetEvents, err)
			return nil
		}
		events = rows
		return nil
	})
	g.Go(func() error {
		appts, convs, err := s.source.FetchAppointmentsAndConversations(ctx, filter, window.Start, window.End)
		if err != nil {
			warn(domain.DatasetFunnelEvents, err)
			return nil
		}
		appointments, conversations = appts, convs
		return nil
	})
	_ = g.Wait()

	// requisição encerrada antes do fim: descarta tudo, sem resultado parcial
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(warnings, func(i, j int) bool {
		return warnings[i].Dataset < warnings[j].Dataset
	})

	var conversationRows []*domain.ConversationMetrics
	if conversation != nil {
		conversationRows = []*domain.ConversationMetrics{conversation}
	}

	dashboard := &domain.Dashboard{
		Filter:        filter,
		Period:        window,
		Funnel:        domain.ComputeFunnelSummary(monthly, conversation),
		RequestTypes:  domain.CountRequestTypes(appointments, conversations),
		ActivityPeaks: domain.ComputeActivityPeaks(events, s.peaks),
		Conversations: domain.MergeConversationMetrics(conversationRows),
		Procedures:    domain.SummarizeProcedureSales(procedures),
		Warnings:      warnings,
	}
	if dashboard.Warnings == nil {
		dashboard.Warnings = []domain.Warning{}
	}

	elapsed := time.Since(started)
	s.metrics.ObserveDashboard(dashboard.Degraded(), elapsed)

	logger.WithFields(log.Fields{
		"warnings":    len(dashboard.Warnings),
		"duration_ms": elapsed.Milliseconds(),
	}).Info("dashboard: cálculo concluído")

	return dashboard, nil
}

func (s *Service) GetFunnel(ctx context.Context, filter domain.MetricFilter, reference *time.Time) (*domain.FunnelSummary, error) {
	window := s.window(reference)

	var (
		monthly      *domain.MonthlySalesMetrics
		conversation *domain.ConversationMetrics
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		monthly, err = s.source.FetchMonthlySales(gctx, filter, window.MonthKey)
		return err
	})
	g.Go(func() error {
		var err error
		conversation, err = s.source.FetchConversationMetrics(gctx, filter, window.MonthKey)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "dashboard: erro ao calcular o funil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return domain.ComputeFunnelSummary(monthly, conversation), nil
}

func (s *Service) GetActivityPeaks(ctx context.Context, filter domain.MetricFilter, reference *time.Time, opts domain.PeakOptions) (domain.ActivityPeaks, error) {
	opts, err := s.peakOptions(opts)
	if err != nil {
		return domain.ActivityPeaks{}, err
	}

	window := s.window(reference)
	events, err := s.source.FetchEvents(ctx, filter, window.Start, window.End)
	if err != nil {
		return domain.ActivityPeaks{}, errors.Wrap(err, "dashboard: erro ao calcular os picos de atividade")
	}

	return domain.ComputeActivityPeaks(events, opts), nil
}

// peakOptions completa as opções do pedido com as configuradas e valida os limites
func (s *Service) peakOptions(opts domain.PeakOptions) (domain.PeakOptions, error) {
	if opts.BucketWidthHours < 0 || opts.BucketWidthHours > 24 {
		return opts, domain.NewInputError("bucket_width", fmt.Sprintf("largura da faixa deve estar entre 1 e 24 horas, recebido %d", opts.BucketWidthHours))
	}
	if opts.Top < 0 || opts.Top > maxPeakTop {
		return opts, domain.NewInputError("top", fmt.Sprintf("quantidade de faixas deve estar entre 1 e %d, recebido %d", maxPeakTop, opts.Top))
	}

	if opts.BucketWidthHours == 0 {
		opts.BucketWidthHours = s.peaks.BucketWidthHours
	}
	if opts.Top == 0 {
		opts.Top = s.peaks.Top
	}
	if opts.Location == nil {
		opts.Location = s.peaks.Location
	}

	return opts, nil
}

func (s *Service) GetRequestTypes(ctx context.Context, filter domain.MetricFilter, reference *time.Time) (domain.RequestTypeBreakdown, error) {
	window := s.window(reference)

	appointments, conversations, err := s.source.FetchAppointmentsAndConversations(ctx, filter, window.Start, window.End)
	if err != nil {
		return domain.RequestTypeBreakdown{}, errors.Wrap(err, "dashboard: erro ao calcular os tipos de solicitação")
	}

	return domain.CountRequestTypes(appointments, conversations), nil
}

func (s *Service) GetConversations(ctx context.Context, filter domain.MetricFilter, reference *time.Time) (domain.NormalizedDashboardMetrics, error) {
	window := s.window(reference)

	row, err := s.source.FetchConversationMetrics(ctx, filter, window.MonthKey)
	if err != nil {
		return domain.NormalizedDashboardMetrics{}, errors.Wrap(err, "dashboard: erro ao ler as métricas de conversas")
	}

	var rows []*domain.ConversationMetrics
	if row != nil {
		rows = append(rows, row)
	}

	return domain.MergeConversationMetrics(rows), nil
}

func (s *Service) GetProcedures(ctx context.Context, filter domain.MetricFilter) (domain.ProcedureSalesSummary, error) {
	rows, err := s.source.FetchProcedureSales(ctx, filter)
	if err != nil {
		return domain.ProcedureSalesSummary{}, errors.Wrap(err, "dashboard: erro ao ler as vendas por procedimento")
	}

	return domain.SummarizeProcedureSales(rows), nil
}
