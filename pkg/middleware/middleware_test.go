package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/telemetry"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func captureFilter(filter *domain.MetricFilter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*filter = FilterFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	employeeID := "emp-1"

	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(auth *mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Rota pública dispensa token",
			path:       "/healthcheck",
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "Sem cabeçalho",
			path:       "/v1/dashboard",
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Cabeçalho sem Bearer",
			path:       "/v1/dashboard",
			header:     "Basic abc",
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token expirado",
			path:   "/v1/dashboard",
			header: "Bearer expirado",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("expirado").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "Erro sem contexto vira token inválido",
			path:   "/v1/dashboard",
			header: "Bearer qualquer",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("qualquer").Return(nil, errors.New("falha"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token válido",
			path:   "/v1/dashboard",
			header: "Bearer valido",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("valido").Return(&domain.Claims{TenantID: "tenant-1", EmployeeID: &employeeID}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth, true)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestTenantScope(t *testing.T) {
	t.Run("Claims têm prioridade sobre os parâmetros", func(t *testing.T) {
		employeeID := "emp-1"
		var filter domain.MetricFilter

		ctrl := gomock.NewController(t)
		auth := mocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().ValidateToken("valido").Return(&domain.Claims{TenantID: "tenant-1", EmployeeID: &employeeID}, nil)

		handler := AuthMiddleware(auth, true)(TenantScope(true)(captureFilter(&filter)))
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?tenant_id=outra&employee_id=emp-2", nil)
		req.Header.Set("Authorization", "Bearer valido")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "tenant-1", filter.TenantID)
		require.NotNil(t, filter.EmployeeID)
		assert.Equal(t, "emp-1", *filter.EmployeeID)
	})

	t.Run("Sem autenticação usa os parâmetros", func(t *testing.T) {
		var filter domain.MetricFilter
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?tenant_id=tenant-2&employee_id=emp-3", nil)
		rec := httptest.NewRecorder()

		TenantScope(false)(captureFilter(&filter)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "tenant-2", filter.TenantID)
		require.NotNil(t, filter.EmployeeID)
		assert.Equal(t, "emp-3", *filter.EmployeeID)
	})

	t.Run("Funcionária com formato inválido", func(t *testing.T) {
		tests := []string{
			"emp%201",
			"emp.1",
			strings.Repeat("a", domain.MaxEmployeeIDLength+1),
		}

		for _, employeeID := range tests {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
			rec := httptest.NewRecorder()

			TenantScope(false)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?tenant_id=tenant-1&employee_id="+employeeID, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code, employeeID)
			assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidFormat)
			assert.False(t, called)
		}
	})

	t.Run("Sem empresa", func(t *testing.T) {
		var filter domain.MetricFilter
		rec := httptest.NewRecorder()

		TenantScope(false)(captureFilter(&filter)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingTenant)
	})

	t.Run("Autenticação exigida sem claims", func(t *testing.T) {
		var filter domain.MetricFilter
		rec := httptest.NewRecorder()

		TenantScope(true)(captureFilter(&filter)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?tenant_id=x", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Origin", "https://desconhecida.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_RegistraStatus(t *testing.T) {
	metrics := telemetry.NewMetrics()
	handler := LogPanicMiddleware()(LoggingMiddleware(metrics)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	scrape := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(scrape.Body.String(), `status="418"`))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
