package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos de data aceitos na entrada, na ordem de tentativa
var acceptedDateFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02.01.2006 15:04:05",
	"2006-01-02",
}

// ParseDate tenta interpretar a data em um dos formatos aceitos.
// Retorna erro quando nenhum formato casa: melhor rejeitar do que adivinhar.
func ParseDate(dateStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, format := range acceptedDateFormats {
		if date, err := time.Parse(format, trimmed); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("data em formato não reconhecido: %s", dateStr)
}

// FirstDayOfMonth retorna o primeiro dia do mês da data informada
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// ParsePeriod interpreta um período YYYY-MM como o primeiro dia do mês
func ParsePeriod(period string) (time.Time, error) {
	date, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q: %w", period, err)
	}
	return date, nil
}
