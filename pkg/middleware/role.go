package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const ContextKeyFilter contextKey = "metric_filter"

// TenantScope monta o filtro de métricas da requisição.
// Com token, a empresa vem das claims e uma funcionária logada só vê os próprios dados;
// sem autenticação, aceita os parâmetros tenant_id e employee_id.
func TenantScope(authEnabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			var filter domain.MetricFilter

			claims, ok := ClaimsFromContext(r.Context())
			switch {
			case ok:
				filter = claims.Filter()
			case authEnabled:
				log.ForContext(r.Context()).Warn("auth: tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			default:
				filter.TenantID = strings.TrimSpace(query.Get("tenant_id"))
			}

			if filter.EmployeeID == nil {
				if employeeID := strings.TrimSpace(query.Get("employee_id")); employeeID != "" {
					if err := domain.ValidateEmployeeID(employeeID); err != nil {
						apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"field": "employee_id"})
						return
					}
					filter.EmployeeID = &employeeID
				}
			}

			if filter.TenantID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingTenant, "Empresa não informada", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyFilter, filter)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FilterFromContext retorna o filtro gravado pelo TenantScope
func FilterFromContext(ctx context.Context) domain.MetricFilter {
	filter, _ := ctx.Value(ContextKeyFilter).(domain.MetricFilter)
	return filter
}
