package utils

import (
	"fmt"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

// LoadLocation carrega o fuso horário do dashboard. Nome vazio usa o padrão.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", name, err)
	}

	return loc, nil
}

// StartOfDay retorna meia-noite do dia de t, no fuso de t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
