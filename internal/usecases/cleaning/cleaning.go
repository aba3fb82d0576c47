// Package cleaning valida os registros brutos campo a campo e os
// classifica em exatamente um de dois destinos: entidade limpa ou
// rejeição com motivo estável. Os cleaners são funções puras sobre a
// entrada; quem loga e contabiliza é o chamador.
package cleaning

import (
	"github.com/vfg2006/finance-insights/internal/domain"
)

// TransactionOutcome é a classificação disjunta de um lote de transações
type TransactionOutcome struct {
	Accepted []*domain.Transaction
	Rejected []*domain.RejectedRecord
	Summary  *domain.RejectionSummary
}

// ClientOutcome é a classificação disjunta de um lote de clientes
type ClientOutcome struct {
	Accepted []*domain.Client
	Rejected []*domain.RejectedRecord
	Summary  *domain.RejectionSummary
}

type TransactionCleaner interface {
	Clean(raws []*domain.RawTransaction) *TransactionOutcome
}

type ClientCleaner interface {
	Clean(raws []*domain.RawClient) *ClientOutcome
}
