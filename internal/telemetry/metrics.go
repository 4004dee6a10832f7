// Package telemetry registra as métricas Prometheus do serviço
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sales_dashboard"

const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

type Metrics struct {
	registry *prometheus.Registry

	SourceReads      *prometheus.CounterVec
	SourceLatency    *prometheus.HistogramVec
	DashboardCompute *prometheus.HistogramVec
	HTTPRequests     *prometheus.CounterVec
	MountedViews     prometheus.Gauge
}

// NewMetrics cria um registry próprio com as métricas do dashboard e os coletores do runtime Go
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		SourceReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_reads_total",
			Help:      "Leituras na fonte de métricas por conjunto de dados e resultado.",
		}, []string{"dataset", "outcome"}),
		SourceLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "source_read_duration_seconds",
			Help:      "Duração das leituras na fonte de métricas.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"dataset"}),
		DashboardCompute: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dashboard_compute_duration_seconds",
			Help:      "Duração do cálculo completo do dashboard.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"degraded"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requisições HTTP por método e status.",
		}, []string{"method", "status"}),
		MountedViews: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mounted_views",
			Help:      "Visões do dashboard com atualização periódica ativa.",
		}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.SourceReads,
		m.SourceLatency,
		m.DashboardCompute,
		m.HTTPRequests,
		m.MountedViews,
	)

	return m
}

// Handler serve as métricas no formato de exposição do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveSourceRead registra uma leitura na fonte de métricas
func (m *Metrics) ObserveSourceRead(dataset, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.SourceReads.WithLabelValues(dataset, outcome).Inc()
	m.SourceLatency.WithLabelValues(dataset).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveDashboard(degraded bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DashboardCompute.WithLabelValues(strconv.FormatBool(degraded)).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveHTTPRequest(method string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

func (m *Metrics) SetMountedViews(count int) {
	if m == nil {
		return
	}
	m.MountedViews.Set(float64(count))
}
