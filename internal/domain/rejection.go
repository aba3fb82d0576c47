package domain

// RejectReason é o código estável que classifica por que um registro bruto
// falhou na validação
type RejectReason string

const (
	ReasonMissingField   RejectReason = "missing_field"
	ReasonInvalidDate    RejectReason = "invalid_date"
	ReasonNegativeAmount RejectReason = "negative_amount"
	ReasonOutOfRange     RejectReason = "out_of_range"
	ReasonDuplicateID    RejectReason = "duplicate_id"
	ReasonUnparseable    RejectReason = "unparseable"
)

// EntityType identifica o tipo de registro rejeitado
type EntityType string

const (
	EntityTransaction EntityType = "transaction"
	EntityClient      EntityType = "client"
)

// RejectedRecord carrega o payload original junto com o motivo da rejeição.
// Nenhum registro some em silêncio: ou vira entidade limpa ou vira isto.
type RejectedRecord struct {
	Entity EntityType   `json:"entity"`
	Reason RejectReason `json:"reason"`
	Field  string       `json:"field,omitempty"`
	Detail string       `json:"detail,omitempty"`
	Raw    any          `json:"raw,omitempty"`
}

// RejectionSummary acumula contagens de rejeição por motivo durante uma
// execução. É estado local da execução, repassado explicitamente pelos
// retornos do pipeline.
type RejectionSummary struct {
	Accepted int                  `json:"accepted"`
	Rejected int                  `json:"rejected"`
	ByReason map[RejectReason]int `json:"by_reason"`
}

func NewRejectionSummary() *RejectionSummary {
	return &RejectionSummary{ByReason: make(map[RejectReason]int)}
}

func (s *RejectionSummary) AddAccepted() {
	s.Accepted++
}

func (s *RejectionSummary) AddRejected(reason RejectReason) {
	s.Rejected++
	s.ByReason[reason]++
}

func (s *RejectionSummary) Total() int {
	return s.Accepted + s.Rejected
}
