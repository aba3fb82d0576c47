package cleaning

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vfg2006/finance-insights/internal/domain"
	"github.com/vfg2006/finance-insights/pkg/utils"
)

const (
	// Limite de tamanho para campos de texto livre
	maxNameLength = 100

	// Ano mínimo plausível para uma transação
	minTransactionYear = 2000

	// Tolerância para datas no futuro (relógio da origem adiantado)
	futureTolerance = 24 * time.Hour

	// Faixa etária plausível; fora dela o campo é anulado, não o registro
	minAge = 0
	maxAge = 120

	// Patrimônio acima disso é tratado como erro de digitação na origem
	maxNetWorth = 1e12

	// Sentinela usada pela origem para datas corrompidas
	invalidDateSentinel = "INVALID_DATE"
)

// violation descreve a falha de um campo contra a sua regra
type violation struct {
	reason domain.RejectReason
	field  string
	detail string
}

func (v *violation) reject(entity domain.EntityType, raw any) *domain.RejectedRecord {
	return &domain.RejectedRecord{
		Entity: entity,
		Reason: v.reason,
		Field:  v.field,
		Detail: v.detail,
		Raw:    raw,
	}
}

// checkID exige um UUID não vazio
func checkID(field, value string) (string, *violation) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || isNullLiteral(trimmed) {
		return "", &violation{reason: domain.ReasonMissingField, field: field}
	}

	if _, err := uuid.Parse(trimmed); err != nil {
		return "", &violation{
			reason: domain.ReasonUnparseable,
			field:  field,
			detail: fmt.Sprintf("identificador em formato inválido: %s", trimmed),
		}
	}

	return trimmed, nil
}

// checkDate aceita os formatos conhecidos e rejeita datas implausíveis:
// futuras além da tolerância ou anteriores a 2000
func checkDate(field, value string, now time.Time) (time.Time, *violation) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || isNullLiteral(trimmed) {
		return time.Time{}, &violation{reason: domain.ReasonMissingField, field: field}
	}

	if strings.EqualFold(trimmed, invalidDateSentinel) {
		return time.Time{}, &violation{
			reason: domain.ReasonInvalidDate,
			field:  field,
			detail: "data marcada como inválida na origem",
		}
	}

	date, err := utils.ParseDate(trimmed)
	if err != nil {
		return time.Time{}, &violation{
			reason: domain.ReasonInvalidDate,
			field:  field,
			detail: err.Error(),
		}
	}

	if date.After(now.Add(futureTolerance)) {
		return time.Time{}, &violation{
			reason: domain.ReasonOutOfRange,
			field:  field,
			detail: fmt.Sprintf("data no futuro: %s", date.Format("2006-01-02")),
		}
	}

	if date.Year() < minTransactionYear {
		return time.Time{}, &violation{
			reason: domain.ReasonOutOfRange,
			field:  field,
			detail: fmt.Sprintf("data anterior a %d: %s", minTransactionYear, date.Format("2006-01-02")),
		}
	}

	return date, nil
}

// checkAmount exige um número finito e não negativo; zero é válido
func checkAmount(field, value string) (float64, *violation) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || isNullLiteral(trimmed) {
		return 0, &violation{reason: domain.ReasonMissingField, field: field}
	}

	amount, err := utils.ParseAmount(trimmed)
	if err != nil {
		return 0, &violation{
			reason: domain.ReasonUnparseable,
			field:  field,
			detail: err.Error(),
		}
	}

	if amount < 0 {
		return 0, &violation{
			reason: domain.ReasonNegativeAmount,
			field:  field,
			detail: fmt.Sprintf("valor negativo: %v", amount),
		}
	}

	return amount, nil
}

// checkRequired exige texto não vazio
func checkRequired(field, value string) (string, *violation) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || isNullLiteral(trimmed) {
		return "", &violation{reason: domain.ReasonMissingField, field: field}
	}
	return trimmed, nil
}

// checkOptionalName aceita ausência; presente, limita o tamanho
func checkOptionalName(field, value string) (*string, *violation) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || isNullLiteral(trimmed) {
		return nil, nil
	}

	if len(trimmed) > maxNameLength {
		return nil, &violation{
			reason: domain.ReasonOutOfRange,
			field:  field,
			detail: fmt.Sprintf("texto excede %d caracteres", maxNameLength),
		}
	}

	return &trimmed, nil
}

// parseOptionalAge interpreta a idade vinda do JSON (número, texto ou
// nulo). Valores não interpretáveis ou fora da faixa plausível anulam o
// campo em vez de derrubar o registro: idade é opcional a jusante.
func parseOptionalAge(value any) *int {
	number, ok := toFloat(value)
	if !ok {
		return nil
	}

	if number != float64(int(number)) {
		return nil
	}

	age := int(number)
	if age < minAge || age > maxAge {
		return nil
	}

	return &age
}

// parseNetWorth interpreta o patrimônio. Ausente vira desconhecido;
// negativo ou implausível rejeita o registro; texto não numérico também.
func parseNetWorth(field string, value any) (*float64, *violation) {
	if value == nil {
		return nil, nil
	}

	if text, isText := value.(string); isText {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || isNullLiteral(trimmed) {
			return nil, nil
		}
	}

	number, ok := toFloat(value)
	if !ok {
		return nil, &violation{
			reason: domain.ReasonUnparseable,
			field:  field,
			detail: fmt.Sprintf("patrimônio em formato inválido: %v", value),
		}
	}

	if number < 0 {
		return nil, &violation{
			reason: domain.ReasonOutOfRange,
			field:  field,
			detail: fmt.Sprintf("patrimônio negativo: %v", number),
		}
	}

	if number > maxNetWorth {
		return nil, &violation{
			reason: domain.ReasonOutOfRange,
			field:  field,
			detail: fmt.Sprintf("patrimônio acima do limite plausível: %v", number),
		}
	}

	return &number, nil
}

// toFloat converte os tipos que o decodificador JSON pode produzir.
// Texto aceita vírgula decimal, como os valores monetários da origem.
func toFloat(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		trimmed := strings.ReplaceAll(strings.TrimSpace(typed), " ", "")
		if trimmed == "" || isNullLiteral(trimmed) {
			return 0, false
		}
		if strings.Contains(trimmed, ",") && !strings.Contains(trimmed, ".") {
			trimmed = strings.ReplaceAll(trimmed, ",", ".")
		}
		number, err := strconv.ParseFloat(strings.ToLower(trimmed), 64)
		if err != nil {
			return 0, false
		}
		return number, true
	default:
		return 0, false
	}
}

// toStringValue converte o valor bruto em texto, tolerando números
func toStringValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	default:
		return fmt.Sprintf("%v", typed)
	}
}

func isNullLiteral(value string) bool {
	lowered := strings.ToLower(value)
	return lowered == "null" || lowered == "none" || lowered == "nan"
}
