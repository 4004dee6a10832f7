package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/telemetry"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var (
	ErrViewNotFound    = errors.New("visão do dashboard não encontrada")
	ErrTooManyViews    = errors.New("limite de visões montadas atingido")
	ErrRefreshDisabled = errors.New("atualização periódica do dashboard desabilitada")
)

// DashboardRefreshConfig representa a configuração da atualização periódica das visões
type DashboardRefreshConfig struct {
	Enabled  bool
	Interval int // segundos
	MaxViews int // 0 = sem limite
}

// ViewRequest é o filtro de uma visão montada. Reference nil acompanha o mês atual.
type ViewRequest struct {
	Filter    domain.MetricFilter
	Reference *time.Time
}

// ViewSnapshot é o último cálculo de uma visão
type ViewSnapshot struct {
	ViewID      string              `json:"view_id"`
	Filter      domain.MetricFilter `json:"filter"`
	Dashboard   *domain.Dashboard   `json:"dashboard"`
	Error       string              `json:"error,omitempty"`
	RefreshedAt time.Time           `json:"refreshed_at"`
	Refreshes   int                 `json:"refreshes"`
}

type ViewStatus struct {
	ViewID        string              `json:"view_id"`
	Filter        domain.MetricFilter `json:"filter"`
	MountedAt     time.Time           `json:"mounted_at"`
	LastRefreshAt *time.Time          `json:"last_refresh_at,omitempty"`
	Refreshes     int                 `json:"refreshes"`
	Degraded      bool                `json:"degraded"`
}

type mountedView struct {
	id         string
	request    ViewRequest
	ctx        context.Context
	cancel     context.CancelFunc
	mountedAt  time.Time
	snapshot   *ViewSnapshot
	refreshes  int
	refreshing bool
}

// DashboardRefreshService mantém um job periódico por visão montada, identificado pela tag com o ID da visão
type DashboardRefreshService struct {
	scheduler *gocron.Scheduler
	config    DashboardRefreshConfig
	analyzer  analyzing.Analyzer
	metrics   *telemetry.Metrics
	newID     func() (string, error)
	now       func() time.Time

	mu      sync.Mutex
	views   map[string]*mountedView
	baseCtx context.Context
}

func NewDashboardRefreshService(analyzer analyzing.Analyzer, appConfig *config.Config, metrics *telemetry.Metrics) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		Enabled:  appConfig.DashboardRefresh.Enabled,
		Interval: appConfig.DashboardRefresh.IntervalSeconds,
		MaxViews: appConfig.DashboardRefresh.MaxViews,
	}
	if refreshConfig.Interval <= 0 {
		refreshConfig.Interval = 60
	}

	location := appConfig.Dashboard.Location
	if location == nil {
		location = time.UTC
	}

	log.L.WithFields(log.Fields{
		"interval_seconds": refreshConfig.Interval,
		"max_views":        refreshConfig.MaxViews,
		"enabled":          refreshConfig.Enabled,
	}).Info("refresh: configuração da atualização de visões carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(location),
		config:    refreshConfig,
		analyzer:  analyzer,
		metrics:   metrics,
		newID:     utils.GenerateViewID,
		now:       time.Now,
		views:     make(map[string]*mountedView),
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador; o contexto encerra o agendador e todas as visões
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("refresh: atualização de visões desabilitada por configuração")
		return nil
	}

	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()

	log.L.WithField("interval_seconds", s.config.Interval).Info("refresh: iniciando agendador de visões")
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop desmonta todas as visões e para o agendador
func (s *DashboardRefreshService) Stop() {
	s.mu.Lock()
	for id, view := range s.views {
		view.cancel()
		delete(s.views, id)
	}
	s.metrics.SetMountedViews(0)
	s.mu.Unlock()

	// fora do lock: jobs em execução precisam do lock para descartar o resultado
	if s.scheduler.IsRunning() {
		log.L.Info("refresh: parando agendador de visões")
		s.scheduler.Stop()
	}
	s.scheduler.Clear()
}

// Mount registra a visão, calcula o primeiro snapshot e agenda as atualizações seguintes
func (s *DashboardRefreshService) Mount(request ViewRequest) (string, error) {
	if !s.config.Enabled {
		return "", ErrRefreshDisabled
	}

	id, err := s.newID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar ID da visão: %w", err)
	}

	s.mu.Lock()
	if s.config.MaxViews > 0 && len(s.views) >= s.config.MaxViews {
		s.mu.Unlock()
		return "", ErrTooManyViews
	}

	ctx, cancel := context.WithCancel(s.baseCtx)
	view := &mountedView{
		id:        id,
		request:   request,
		ctx:       ctx,
		cancel:    cancel,
		mountedAt: s.now(),
	}

	_, err = s.scheduler.Every(s.config.Interval).Seconds().Tag(id).WaitForSchedule().Do(func() {
		s.refreshView(id)
	})
	if err != nil {
		s.mu.Unlock()
		cancel()
		return "", fmt.Errorf("erro ao agendar atualização da visão: %w", err)
	}

	s.views[id] = view
	s.metrics.SetMountedViews(len(s.views))
	s.mu.Unlock()

	log.L.WithFields(log.Fields{
		"view_id":   id,
		"tenant_id": request.Filter.TenantID,
	}).Info("refresh: visão montada")

	s.refreshView(id)

	return id, nil
}

// Unmount remove o job e cancela a visão; resultados em andamento são descartados
func (s *DashboardRefreshService) Unmount(id string) error {
	s.mu.Lock()
	view, ok := s.views[id]
	if !ok {
		s.mu.Unlock()
		return ErrViewNotFound
	}

	delete(s.views, id)
	view.cancel()
	s.metrics.SetMountedViews(len(s.views))
	s.mu.Unlock()

	if err := s.scheduler.RemoveByTag(id); err != nil {
		log.L.WithError(err).WithField("view_id", id).Warn("refresh: job da visão não encontrado no agendador")
	}

	log.L.WithField("view_id", id).Info("refresh: visão desmontada")

	return nil
}

func (s *DashboardRefreshService) Snapshot(id string) (*ViewSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := s.views[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	if view.snapshot == nil {
		return &ViewSnapshot{ViewID: id, Filter: view.request.Filter}, nil
	}

	snapshot := *view.snapshot
	return &snapshot, nil
}

// List retorna o estado das visões montadas, da mais antiga para a mais nova
func (s *DashboardRefreshService) List() []ViewStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := make([]ViewStatus, 0, len(s.views))
	for _, view := range s.views {
		status := ViewStatus{
			ViewID:    view.id,
			Filter:    view.request.Filter,
			MountedAt: view.mountedAt,
			Refreshes: view.refreshes,
		}
		if view.snapshot != nil {
			refreshedAt := view.snapshot.RefreshedAt
			status.LastRefreshAt = &refreshedAt
			status.Degraded = view.snapshot.Dashboard != nil && view.snapshot.Dashboard.Degraded()
		}
		statuses = append(statuses, status)
	}

	sort.Slice(statuses, func(i, j int) bool {
		if statuses[i].MountedAt.Equal(statuses[j].MountedAt) {
			return statuses[i].ViewID < statuses[j].ViewID
		}
		return statuses[i].MountedAt.Before(statuses[j].MountedAt)
	})

	return statuses
}

// refreshView recalcula o dashboard da visão. Execuções sobrepostas da mesma visão são ignoradas.
func (s *DashboardRefreshService) refreshView(id string) {
	s.mu.Lock()
	view, ok := s.views[id]
	if !ok || view.refreshing {
		s.mu.Unlock()
		return
	}
	view.refreshing = true
	s.mu.Unlock()

	dashboard, err := s.analyzer.GetDashboard(view.ctx, view.request.Filter, view.request.Reference)

	s.mu.Lock()
	defer s.mu.Unlock()
	view.refreshing = false

	if view.ctx.Err() != nil || s.views[id] != view {
		log.L.WithField("view_id", id).Debug("refresh: resultado descartado, visão desmontada")
		return
	}

	view.refreshes++
	snapshot := &ViewSnapshot{
		ViewID:      id,
		Filter:      view.request.Filter,
		Dashboard:   dashboard,
		RefreshedAt: s.now(),
		Refreshes:   view.refreshes,
	}
	if err != nil {
		log.L.WithError(err).WithField("view_id", id).Error("refresh: erro ao atualizar visão")
		snapshot.Dashboard = nil
		snapshot.Error = err.Error()
		if view.snapshot != nil {
			// mantém o último cálculo válido
			snapshot.Dashboard = view.snapshot.Dashboard
		}
	}

	view.snapshot = snapshot
}
