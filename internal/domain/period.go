package domain

import (
	"fmt"
	"strings"
	"time"
)

// MonthKeyLayout é o formato da chave de mês (sempre o primeiro dia do mês)
const MonthKeyLayout = "2006-01-02"

// MonthWindow representa o mês de referência e seus limites inclusivos
type MonthWindow struct {
	MonthKey string    `json:"month_key"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// ResolveMonth calcula a janela do mês de referência. Sem referência, usa a data atual.
func ResolveMonth(reference *time.Time) MonthWindow {
	if reference == nil {
		return ResolveMonthAt(time.Now())
	}
	return ResolveMonthAt(*reference)
}

// ResolveMonthAt calcula a janela do mês que contém reference, no fuso de reference.
// End é o último instante (23:59:59.999) do último dia do mês.
func ResolveMonthAt(reference time.Time) MonthWindow {
	start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)

	return MonthWindow{
		MonthKey: start.Format(MonthKeyLayout),
		Start:    start,
		End:      end,
	}
}

// Contains indica se t está dentro da janela (limites inclusivos)
func (w MonthWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ParseMonthReference converte o parâmetro de mês (YYYY-MM ou YYYY-MM-DD) em data de referência.
// Texto vazio retorna nil, que significa "mês atual".
func ParseMonthReference(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range []string{"2006-01", MonthKeyLayout} {
		if len(value) != len(layout) {
			continue
		}
		reference, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return &reference, nil
		}
	}

	return nil, NewInputError("month", fmt.Sprintf("formato inválido %q, use YYYY-MM ou YYYY-MM-DD", value))
}
