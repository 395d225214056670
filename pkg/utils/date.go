package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos para datas vindas do CSV, do banco e da query string
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp converte uma string de data/hora para UTC.
// dateOnly indica que a entrada não tinha componente de hora (ex: 2024-01-31).
func ParseTimestamp(value string) (t time.Time, dateOnly bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, fmt.Errorf("data vazia")
	}

	if parsed, err := time.Parse(time.DateOnly, value); err == nil {
		return parsed, true, nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), false, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("formato de data inválido: %q", value)
}

// EndOfDay retorna o último instante representável do dia de t
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfDay retorna a meia-noite do dia de t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
