package domain

import (
	"errors"
	"fmt"
)

// Dataset identifica um dos conjuntos de dados lidos pela fonte de métricas
type Dataset string

const (
	DatasetMonthlySales        Dataset = "monthly_sales"
	DatasetConversationMetrics Dataset = "conversation_metrics"
	DatasetProcedureSales      Dataset = "procedure_sales"
	DatasetEvents              Dataset = "events"
	DatasetFunnelEvents        Dataset = "appointments_conversations"
)

var (
	// ErrSourceUnavailable indica falha de leitura (rede, autenticação, query ou timeout)
	ErrSourceUnavailable = errors.New("fonte de métricas indisponível")

	// ErrInvalidInput indica data de referência ou filtro malformado
	ErrInvalidInput = errors.New("entrada inválida")
)

// SourceError é uma falha de leitura com o conjunto de dados envolvido
type SourceError struct {
	Dataset Dataset
	Err     error
}

// NewSourceError cria um novo SourceError
func NewSourceError(dataset Dataset, err error) *SourceError {
	return &SourceError{
		Dataset: dataset,
		Err:     err,
	}
}

// Error implementa a interface error
func (e *SourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrSourceUnavailable.Error(), e.Dataset)
	}
	return fmt.Sprintf("%s: %s: %s", ErrSourceUnavailable.Error(), e.Dataset, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrSourceUnavailable)
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// InputError é uma entrada inválida com o campo envolvido
type InputError struct {
	Field   string
	Details string
}

// NewInputError cria um novo InputError
func NewInputError(field, details string) *InputError {
	return &InputError{
		Field:   field,
		Details: details,
	}
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput.Error(), e.Field, e.Details)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IsSourceUnavailable verifica se o erro é uma falha de leitura de fonte
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

// IsInvalidInput verifica se o erro é de entrada inválida
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
