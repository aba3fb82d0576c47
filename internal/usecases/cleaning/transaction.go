package cleaning

import (
	"time"

	"github.com/vfg2006/finance-insights/internal/domain"
)

type transactionCleaner struct {
	now func() time.Time
}

func NewTransactionCleaner() TransactionCleaner {
	return &transactionCleaner{now: time.Now}
}

// Clean classifica cada linha bruta em aceita ou rejeitada. Ids
// duplicados dentro do lote: a primeira ocorrência vence, as demais
// saem com duplicate_id.
func (c *transactionCleaner) Clean(raws []*domain.RawTransaction) *TransactionOutcome {
	outcome := &TransactionOutcome{
		Accepted: make([]*domain.Transaction, 0, len(raws)),
		Rejected: make([]*domain.RejectedRecord, 0),
		Summary:  domain.NewRejectionSummary(),
	}

	seen := make(map[string]struct{}, len(raws))
	now := c.now()

	for _, raw := range raws {
		transaction, v := c.cleanOne(raw, now)
		if v != nil {
			outcome.Rejected = append(outcome.Rejected, v.reject(domain.EntityTransaction, raw))
			outcome.Summary.AddRejected(v.reason)
			continue
		}

		if _, duplicated := seen[transaction.ID]; duplicated {
			dup := &violation{
				reason: domain.ReasonDuplicateID,
				field:  "transaction_id",
				detail: "id repetido dentro do lote",
			}
			outcome.Rejected = append(outcome.Rejected, dup.reject(domain.EntityTransaction, raw))
			outcome.Summary.AddRejected(dup.reason)
			continue
		}

		seen[transaction.ID] = struct{}{}
		outcome.Accepted = append(outcome.Accepted, transaction)
		outcome.Summary.AddAccepted()
	}

	return outcome
}

// cleanOne aplica as regras campo a campo; a primeira falha classifica
// o registro inteiro
func (c *transactionCleaner) cleanOne(raw *domain.RawTransaction, now time.Time) (*domain.Transaction, *violation) {
	id, v := checkID("transaction_id", raw.ID)
	if v != nil {
		return nil, v
	}

	clientID, v := checkID("client_id", raw.ClientID)
	if v != nil {
		return nil, v
	}

	date, v := checkDate("transaction_date", raw.Date, now)
	if v != nil {
		return nil, v
	}

	amount, v := checkAmount("amount", raw.Amount)
	if v != nil {
		return nil, v
	}

	service, v := checkRequired("service", raw.Service)
	if v != nil {
		return nil, v
	}

	paymentMethod, v := checkRequired("payment_method", raw.PaymentMethod)
	if v != nil {
		return nil, v
	}

	city, v := checkOptionalName("city", raw.City)
	if v != nil {
		return nil, v
	}

	consultant, v := checkOptionalName("consultant", raw.Consultant)
	if v != nil {
		return nil, v
	}

	return &domain.Transaction{
		ID:                    id,
		ClientID:              clientID,
		Date:                  date,
		Amount:                amount,
		RawService:            service,
		ServiceCategory:       domain.NormalizeService(service),
		RawPaymentMethod:      paymentMethod,
		PaymentMethodCategory: domain.NormalizePaymentMethod(paymentMethod),
		City:                  city,
		Consultant:            consultant,
	}, nil
}
