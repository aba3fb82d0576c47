package cleaning

import (
	"github.com/vfg2006/finance-insights/internal/domain"
)

type clientCleaner struct{}

func NewClientCleaner() ClientCleaner {
	return &clientCleaner{}
}

// Clean classifica cada registro bruto de cliente. Idade fora da faixa
// plausível anula só o campo; patrimônio negativo ou não numérico
// rejeita o registro; gênero não reconhecido vira "unknown".
func (c *clientCleaner) Clean(raws []*domain.RawClient) *ClientOutcome {
	outcome := &ClientOutcome{
		Accepted: make([]*domain.Client, 0, len(raws)),
		Rejected: make([]*domain.RejectedRecord, 0),
		Summary:  domain.NewRejectionSummary(),
	}

	seen := make(map[string]struct{}, len(raws))

	for _, raw := range raws {
		client, v := c.cleanOne(raw)
		if v != nil {
			outcome.Rejected = append(outcome.Rejected, v.reject(domain.EntityClient, raw))
			outcome.Summary.AddRejected(v.reason)
			continue
		}

		if _, duplicated := seen[client.ID]; duplicated {
			dup := &violation{
				reason: domain.ReasonDuplicateID,
				field:  "id",
				detail: "id repetido dentro do lote",
			}
			outcome.Rejected = append(outcome.Rejected, dup.reject(domain.EntityClient, raw))
			outcome.Summary.AddRejected(dup.reason)
			continue
		}

		seen[client.ID] = struct{}{}
		outcome.Accepted = append(outcome.Accepted, client)
		outcome.Summary.AddAccepted()
	}

	return outcome
}

func (c *clientCleaner) cleanOne(raw *domain.RawClient) (*domain.Client, *violation) {
	if raw.Malformed {
		return nil, &violation{
			reason: domain.ReasonUnparseable,
			detail: "registro de origem não era um objeto JSON válido",
		}
	}

	id, v := checkID("id", toStringValue(raw.ID))
	if v != nil {
		return nil, v
	}

	netWorth, v := parseNetWorth("net_worth", raw.NetWorth)
	if v != nil {
		return nil, v
	}

	return &domain.Client{
		ID:       id,
		Age:      parseOptionalAge(raw.Age),
		Gender:   domain.NormalizeGender(toStringValue(raw.Gender)),
		NetWorth: netWorth,
	}, nil
}
