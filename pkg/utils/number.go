package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseAmount interpreta um valor monetário vindo da origem. Aceita vírgula
// como separador decimal e espaços como separador de milhar; arredonda
// half-up para duas casas. Não valida sinal: isso é regra do cleaner.
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if cleaned == "" {
		return 0, fmt.Errorf("valor vazio")
	}

	// Vírgula decimal só quando não há ponto (formato europeu)
	if strings.Contains(cleaned, ",") && !strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("valor em formato inválido %q: %w", raw, err)
	}

	return value.Round(2).InexactFloat64(), nil
}
