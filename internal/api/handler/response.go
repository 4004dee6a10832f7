package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("dashboard: erro ao codificar resposta")
	}
}

// writeServiceError converte os erros do domínio nos códigos da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var inputErr *domain.InputError
	var sourceErr *domain.SourceError

	switch {
	case errors.As(err, &inputErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, inputErr.Details, map[string]string{"field": inputErr.Field})
	case errors.As(err, &sourceErr):
		logger.WithError(err).WithField("dataset", sourceErr.Dataset).Error("dashboard: fonte de métricas indisponível")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Fonte de métricas indisponível", map[string]string{"dataset": string(sourceErr.Dataset)})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.WithError(err).Warn("dashboard: requisição encerrada antes do cálculo")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Requisição cancelada", nil)
	default:
		logger.WithError(err).Error("dashboard: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

// parseMonth lê o parâmetro month (YYYY-MM ou YYYY-MM-DD); ausente significa o mês atual
func parseMonth(r *http.Request, loc *time.Location) (*time.Time, error) {
	return domain.ParseMonthReference(r.URL.Query().Get("month"), loc)
}

// parseOptionalInt lê um inteiro positivo opcional; 0 quando ausente
func parseOptionalInt(r *http.Request, field string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(field))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, domain.NewInputError(field, "valor deve ser um inteiro positivo")
	}
	return value, nil
}
