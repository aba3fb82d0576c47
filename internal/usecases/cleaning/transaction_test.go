package cleaning

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-insights/internal/domain"
)

const (
	validTransactionID = "11111111-1111-1111-1111-111111111111"
	otherTransactionID = "22222222-2222-2222-2222-222222222222"
	validClientID      = "33333333-3333-3333-3333-333333333333"
)

func fixedNowCleaner() *transactionCleaner {
	return &transactionCleaner{
		now: func() time.Time {
			return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func validRawTransaction() *domain.RawTransaction {
	return &domain.RawTransaction{
		ID:            validTransactionID,
		ClientID:      validClientID,
		Date:          "2024-03-10 14:30:00",
		Amount:        "1500.50",
		Service:       "Investment Advisory",
		City:          "Moscow",
		PaymentMethod: "bank transfer",
		Consultant:    "Ivanov",
		Row:           2,
	}
}

func TestTransactionCleaner_Clean(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(raw *domain.RawTransaction)
		expectedReason domain.RejectReason
		expectedField  string
	}{
		{
			name:           "id ausente rejeita com missing_field",
			mutate:         func(raw *domain.RawTransaction) { raw.ID = "" },
			expectedReason: domain.ReasonMissingField,
			expectedField:  "transaction_id",
		},
		{
			name:           "id fora do formato UUID rejeita com unparseable",
			mutate:         func(raw *domain.RawTransaction) { raw.ID = "abc-123" },
			expectedReason: domain.ReasonUnparseable,
			expectedField:  "transaction_id",
		},
		{
			name:           "client_id ausente rejeita com missing_field",
			mutate:         func(raw *domain.RawTransaction) { raw.ClientID = "null" },
			expectedReason: domain.ReasonMissingField,
			expectedField:  "client_id",
		},
		{
			name:           "data com sentinela da origem rejeita com invalid_date",
			mutate:         func(raw *domain.RawTransaction) { raw.Date = "INVALID_DATE" },
			expectedReason: domain.ReasonInvalidDate,
			expectedField:  "transaction_date",
		},
		{
			name:           "data em formato desconhecido rejeita com invalid_date",
			mutate:         func(raw *domain.RawTransaction) { raw.Date = "10/03/2024" },
			expectedReason: domain.ReasonInvalidDate,
			expectedField:  "transaction_date",
		},
		{
			name:           "data no futuro rejeita com out_of_range",
			mutate:         func(raw *domain.RawTransaction) { raw.Date = "2030-01-01 00:00:00" },
			expectedReason: domain.ReasonOutOfRange,
			expectedField:  "transaction_date",
		},
		{
			name:           "data anterior a 2000 rejeita com out_of_range",
			mutate:         func(raw *domain.RawTransaction) { raw.Date = "1999-12-31" },
			expectedReason: domain.ReasonOutOfRange,
			expectedField:  "transaction_date",
		},
		{
			name:           "valor negativo rejeita com negative_amount",
			mutate:         func(raw *domain.RawTransaction) { raw.Amount = "-10.00" },
			expectedReason: domain.ReasonNegativeAmount,
			expectedField:  "amount",
		},
		{
			name:           "valor não numérico rejeita com unparseable",
			mutate:         func(raw *domain.RawTransaction) { raw.Amount = "dez reais" },
			expectedReason: domain.ReasonUnparseable,
			expectedField:  "amount",
		},
		{
			name:           "serviço ausente rejeita com missing_field",
			mutate:         func(raw *domain.RawTransaction) { raw.Service = "  " },
			expectedReason: domain.ReasonMissingField,
			expectedField:  "service",
		},
		{
			name:           "método de pagamento ausente rejeita com missing_field",
			mutate:         func(raw *domain.RawTransaction) { raw.PaymentMethod = "" },
			expectedReason: domain.ReasonMissingField,
			expectedField:  "payment_method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRawTransaction()
			tt.mutate(raw)

			outcome := fixedNowCleaner().Clean([]*domain.RawTransaction{raw})

			assert.Empty(t, outcome.Accepted)
			require.Len(t, outcome.Rejected, 1)
			assert.Equal(t, tt.expectedReason, outcome.Rejected[0].Reason)
			assert.Equal(t, tt.expectedField, outcome.Rejected[0].Field)
			assert.Equal(t, 1, outcome.Summary.Rejected)
			assert.Equal(t, 1, outcome.Summary.ByReason[tt.expectedReason])
		})
	}
}

func TestTransactionCleaner_AcceptsValidRecord(t *testing.T) {
	outcome := fixedNowCleaner().Clean([]*domain.RawTransaction{validRawTransaction()})

	require.Len(t, outcome.Accepted, 1)
	assert.Empty(t, outcome.Rejected)

	transaction := outcome.Accepted[0]
	assert.Equal(t, validTransactionID, transaction.ID)
	assert.Equal(t, validClientID, transaction.ClientID)
	assert.Equal(t, 1500.50, transaction.Amount)
	assert.Equal(t, domain.ServiceInvestmentAdvisory, transaction.ServiceCategory)
	assert.Equal(t, domain.PaymentBankTransfer, transaction.PaymentMethodCategory)
	require.NotNil(t, transaction.City)
	assert.Equal(t, "Moscow", *transaction.City)
}

func TestTransactionCleaner_ZeroAmountIsValid(t *testing.T) {
	raw := validRawTransaction()
	raw.Amount = "0"

	outcome := fixedNowCleaner().Clean([]*domain.RawTransaction{raw})

	require.Len(t, outcome.Accepted, 1)
	assert.Equal(t, 0.0, outcome.Accepted[0].Amount)
}

func TestTransactionCleaner_CommaDecimalSeparator(t *testing.T) {
	raw := validRawTransaction()
	raw.Amount = "1234,56"

	outcome := fixedNowCleaner().Clean([]*domain.RawTransaction{raw})

	require.Len(t, outcome.Accepted, 1)
	assert.Equal(t, 1234.56, outcome.Accepted[0].Amount)
}

func TestTransactionCleaner_DuplicateIDFirstWins(t *testing.T) {
	first := validRawTransaction()
	first.Amount = "100.00"

	second := validRawTransaction()
	second.Amount = "200.00"

	third := validRawTransaction()
	third.ID = otherTransactionID

	outcome := fixedNowCleaner().Clean([]*domain.RawTransaction{first, second, third})

	require.Len(t, outcome.Accepted, 2)
	assert.Equal(t, 100.00, outcome.Accepted[0].Amount)
	assert.Equal(t, otherTransactionID, outcome.Accepted[1].ID)

	require.Len(t, outcome.Rejected, 1)
	assert.Equal(t, domain.ReasonDuplicateID, outcome.Rejected[0].Reason)
}

func TestTransactionCleaner_UnknownServiceStillAccepted(t *testing.T) {
	raw := validRawTransaction()
	raw.Service = "Horoscope Reading"

	outcome := fixedNowCleaner().Clean([]*domain.RawTransaction{raw})

	require.Len(t, outcome.Accepted, 1)
	assert.Equal(t, domain.ServiceUnknown, outcome.Accepted[0].ServiceCategory)
	assert.Equal(t, "Horoscope Reading", outcome.Accepted[0].RawService)
}

func TestTransactionCleaner_OptionalFieldsMayBeEmpty(t *testing.T) {
	raw := validRawTransaction()
	raw.City = ""
	raw.Consultant = "null"

	outcome := fixedNowCleaner().Clean([]*domain.RawTransaction{raw})

	require.Len(t, outcome.Accepted, 1)
	assert.Nil(t, outcome.Accepted[0].City)
	assert.Nil(t, outcome.Accepted[0].Consultant)
}

// Cenário ponta a ponta da classificação: 100 linhas, 5 com valor
// negativo e 3 com data inválida
func TestTransactionCleaner_BatchAccounting(t *testing.T) {
	raws := make([]*domain.RawTransaction, 0, 100)
	for i := 0; i < 100; i++ {
		raw := validRawTransaction()
		raw.ID = newSequentialUUID(i)
		raw.Row = i + 2

		if i < 5 {
			raw.Amount = "-50.00"
		} else if i < 8 {
			raw.Date = "not a date"
		}

		raws = append(raws, raw)
	}

	outcome := fixedNowCleaner().Clean(raws)

	assert.Len(t, outcome.Accepted, 92)
	assert.Len(t, outcome.Rejected, 8)
	assert.Equal(t, 92, outcome.Summary.Accepted)
	assert.Equal(t, 8, outcome.Summary.Rejected)
	assert.Equal(t, 5, outcome.Summary.ByReason[domain.ReasonNegativeAmount])
	assert.Equal(t, 3, outcome.Summary.ByReason[domain.ReasonInvalidDate])
	assert.Equal(t, 100, outcome.Summary.Total())
}

func newSequentialUUID(i int) string {
	return fmt.Sprintf("%08d-0000-0000-0000-000000000000", i)
}
