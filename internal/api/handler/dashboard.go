package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

func requestLogger(r *http.Request, filter domain.MetricFilter) log.Logger {
	return log.ForContext(r.Context()).WithScope(filter.TenantID, filter.EmployeeID)
}

// GetDashboard retorna todos os widgets do mês. Conjuntos de dados com falha aparecem em warnings.
func GetDashboard(service analyzing.Analyzer, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := middleware.FilterFromContext(r.Context())
		logger := requestLogger(r, filter)

		reference, err := parseMonth(r, loc)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), filter, reference)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, dashboard)
	})
}

func GetFunnel(service analyzing.Analyzer, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := middleware.FilterFromContext(r.Context())
		logger := requestLogger(r, filter)

		reference, err := parseMonth(r, loc)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		funnel, err := service.GetFunnel(r.Context(), filter, reference)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		if funnel == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoData, "Nenhuma métrica encontrada para o período", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, funnel)
	})
}

// GetActivityPeaks aceita bucket_width (horas) e top para ajustar o agrupamento
func GetActivityPeaks(service analyzing.Analyzer, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := middleware.FilterFromContext(r.Context())
		logger := requestLogger(r, filter)

		reference, err := parseMonth(r, loc)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		width, err := parseOptionalInt(r, "bucket_width")
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		top, err := parseOptionalInt(r, "top")
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		peaks, err := service.GetActivityPeaks(r.Context(), filter, reference, domain.PeakOptions{BucketWidthHours: width, Top: top})
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, peaks)
	})
}

func GetRequestTypes(service analyzing.Analyzer, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := middleware.FilterFromContext(r.Context())
		logger := requestLogger(r, filter)

		reference, err := parseMonth(r, loc)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		breakdown, err := service.GetRequestTypes(r.Context(), filter, reference)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, breakdown)
	})
}

func GetConversations(service analyzing.Analyzer, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := middleware.FilterFromContext(r.Context())
		logger := requestLogger(r, filter)

		reference, err := parseMonth(r, loc)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		metrics, err := service.GetConversations(r.Context(), filter, reference)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, metrics)
	})
}

func GetProcedures(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := middleware.FilterFromContext(r.Context())
		logger := requestLogger(r, filter)

		summary, err := service.GetProcedures(r.Context(), filter)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, summary)
	})
}
