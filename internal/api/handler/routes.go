package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Dashboard(service analyzing.Analyzer, loc *time.Location, authEnabled bool) []router.Route {
	scoped := []func(http.Handler) http.Handler{middleware.TenantScope(authEnabled)}

	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service, loc),
			Middlewares: scoped,
		},
		{
			Path:        "/v1/dashboard/funnel",
			Method:      http.MethodGet,
			Handler:     GetFunnel(service, loc),
			Middlewares: scoped,
		},
		{
			Path:        "/v1/dashboard/activity-peaks",
			Method:      http.MethodGet,
			Handler:     GetActivityPeaks(service, loc),
			Middlewares: scoped,
		},
		{
			Path:        "/v1/dashboard/request-types",
			Method:      http.MethodGet,
			Handler:     GetRequestTypes(service, loc),
			Middlewares: scoped,
		},
		{
			Path:        "/v1/dashboard/conversations",
			Method:      http.MethodGet,
			Handler:     GetConversations(service, loc),
			Middlewares: scoped,
		},
		{
			Path:        "/v1/dashboard/procedures",
			Method:      http.MethodGet,
			Handler:     GetProcedures(service),
			Middlewares: scoped,
		},
	}
}

func DashboardViewRoutes(views DashboardViews, loc *time.Location, authEnabled bool) []router.Route {
	scoped := []func(http.Handler) http.Handler{middleware.TenantScope(authEnabled)}

	return []router.Route{
		{
			Path:        "/v1/dashboard/views",
			Method:      http.MethodPost,
			Handler:     MountView(views, loc),
			Middlewares: scoped,
		},
		{
			Path:        "/v1/dashboard/views",
			Method:      http.MethodGet,
			Handler:     ListViews(views),
			Middlewares: scoped,
		},
		{
			Path:        "/v1/dashboard/views/:id",
			Method:      http.MethodGet,
			Handler:     GetView(views),
			Middlewares: scoped,
		},
		{
			Path:        "/v1/dashboard/views/:id",
			Method:      http.MethodDelete,
			Handler:     UnmountView(views),
			Middlewares: scoped,
		},
	}
}
