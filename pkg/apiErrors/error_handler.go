package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos pela API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken  = "AUTH_006" // Token inválido
	ErrExpiredToken  = "AUTH_007" // Token expirado
	ErrMissingTenant = "AUTH_009" // Token sem empresa vinculada

	// Erros de validação (2000-2999)
	ErrInvalidFormat    = "VAL_003" // Formato de dados inválido
	ErrTooManyViews     = "VAL_004" // Limite de visões montadas atingido
	ErrRouteNotFound    = "VAL_005" // Rota inexistente
	ErrMethodNotAllowed = "VAL_006" // Método não suportado na rota

	// Erros de dados (3000-3999)
	ErrNoData       = "DATA_001" // Nenhum dado para o período
	ErrViewNotFound = "DATA_002" // Visão do dashboard não encontrada

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro em serviço externo
	ErrCommunication   = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:     http.StatusUnauthorized,
	ErrExpiredToken:     http.StatusUnauthorized,
	ErrInvalidFormat:    http.StatusBadRequest,
	ErrMissingTenant:    http.StatusForbidden,
	ErrTooManyViews:     http.StatusTooManyRequests,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrNoData:           http.StatusNotFound,
	ErrViewNotFound:     http.StatusNotFound,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrExternalService:  http.StatusBadGateway,
	ErrCommunication:    http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
