package domain

import "strings"

// Gender é o gênero do cliente mapeado para um enum fechado
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

// Os arquivos de origem trazem os rótulos em russo
var genderByName = map[string]Gender{
	"male":    GenderMale,
	"m":       GenderMale,
	"мужчина": GenderMale,
	"female":  GenderFemale,
	"f":       GenderFemale,
	"женщина": GenderFemale,
	"other":   GenderOther,
	"другой":  GenderOther,
}

// NormalizeGender mapeia o valor bruto para o enum. Valores não
// reconhecidos viram GenderUnknown, nunca rejeitam o registro.
func NormalizeGender(raw string) Gender {
	if gender, ok := genderByName[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return gender
	}
	return GenderUnknown
}

// Limites dos segmentos de patrimônio líquido
const (
	NetWorthLowCeiling    = 100_000.0
	NetWorthMediumCeiling = 1_000_000.0
)

// NetWorthSegment é a faixa de patrimônio usada na segmentação de clientes
type NetWorthSegment string

const (
	SegmentLow     NetWorthSegment = "low"     // < 100k
	SegmentMedium  NetWorthSegment = "medium"  // 100k a 1M
	SegmentHigh    NetWorthSegment = "high"    // > 1M
	SegmentUnknown NetWorthSegment = "unknown" // patrimônio não informado
)

// SegmentForNetWorth classifica o patrimônio na faixa correspondente.
// Patrimônio desconhecido forma o próprio segmento, não é descartado.
func SegmentForNetWorth(netWorth *float64) NetWorthSegment {
	if netWorth == nil {
		return SegmentUnknown
	}

	switch {
	case *netWorth < NetWorthLowCeiling:
		return SegmentLow
	case *netWorth <= NetWorthMediumCeiling:
		return SegmentMedium
	default:
		return SegmentHigh
	}
}

// RawClient é o registro do cliente como lido do arquivo JSON de origem.
// Malformed sinaliza que a linha de origem nem era um objeto JSON válido.
type RawClient struct {
	ID        any  `json:"id"`
	Age       any  `json:"age"`
	Gender    any  `json:"gender"`
	NetWorth  any  `json:"net_worth"`
	Malformed bool `json:"-"`
}

// Client é o cliente validado. Age e NetWorth são opcionais: valores
// ausentes significam "desconhecido", nunca zero.
type Client struct {
	ID       string   `json:"id"`
	Age      *int     `json:"age,omitempty"`
	Gender   Gender   `json:"gender"`
	NetWorth *float64 `json:"net_worth,omitempty"`
}

// Segment retorna o segmento de patrimônio do cliente
func (c Client) Segment() NetWorthSegment {
	return SegmentForNetWorth(c.NetWorth)
}
