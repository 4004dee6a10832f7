package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

// DashboardViews é o ciclo de vida das visões com atualização periódica
type DashboardViews interface {
	Mount(request scheduler.ViewRequest) (string, error)
	Unmount(id string) error
	Snapshot(id string) (*scheduler.ViewSnapshot, error)
	List() []scheduler.ViewStatus
}

type mountViewResponse struct {
	ViewID string `json:"view_id"`
}

func writeViewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scheduler.ErrViewNotFound):
		apiErrors.WriteError(w, apiErrors.ErrViewNotFound, "Visão não encontrada", nil)
	case errors.Is(err, scheduler.ErrTooManyViews):
		apiErrors.WriteError(w, apiErrors.ErrTooManyViews, "Limite de visões montadas atingido", nil)
	case errors.Is(err, scheduler.ErrRefreshDisabled):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Atualização periódica desabilitada", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

func MountView(views DashboardViews, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := middleware.FilterFromContext(r.Context())
		logger := requestLogger(r, filter)

		reference, err := parseMonth(r, loc)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		id, err := views.Mount(scheduler.ViewRequest{Filter: filter, Reference: reference})
		if err != nil {
			logger.WithError(err).Warn("refresh: não foi possível montar a visão")
			writeViewError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusCreated, mountViewResponse{ViewID: id})
	})
}

// GetView retorna o último snapshot; visões de outra empresa respondem como inexistentes
func GetView(views DashboardViews) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := middleware.FilterFromContext(r.Context())
		logger := requestLogger(r, filter)
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		snapshot, err := views.Snapshot(id)
		if err != nil {
			writeViewError(w, err)
			return
		}
		if snapshot.Filter.TenantID != filter.TenantID {
			writeViewError(w, scheduler.ErrViewNotFound)
			return
		}

		writeJSON(w, logger, http.StatusOK, snapshot)
	})
}

func UnmountView(views DashboardViews) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := middleware.FilterFromContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		snapshot, err := views.Snapshot(id)
		if err != nil {
			writeViewError(w, err)
			return
		}
		if snapshot.Filter.TenantID != filter.TenantID {
			writeViewError(w, scheduler.ErrViewNotFound)
			return
		}

		if err := views.Unmount(id); err != nil {
			writeViewError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListViews(views DashboardViews) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := middleware.FilterFromContext(r.Context())
		logger := requestLogger(r, filter)

		statuses := make([]scheduler.ViewStatus, 0)
		for _, status := range views.List() {
			if status.Filter.TenantID == filter.TenantID {
				statuses = append(statuses, status)
			}
		}

		writeJSON(w, logger, http.StatusOK, statuses)
	})
}
