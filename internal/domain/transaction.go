package domain

import (
	"strings"
	"time"
)

// ServiceCategory é a categoria normalizada de um serviço financeiro
type ServiceCategory string

const (
	ServiceCapitalStructuring ServiceCategory = "capital_structuring"
	ServiceInvestmentAdvisory ServiceCategory = "investment_advisory"
	ServiceFinancialPlanning  ServiceCategory = "financial_planning"
	ServiceAssetManagement    ServiceCategory = "asset_management"
	ServiceTaxPlanning        ServiceCategory = "tax_planning"
	ServiceUnknown            ServiceCategory = "unknown"
)

var serviceCategoryByName = map[string]ServiceCategory{
	"capital structuring":   ServiceCapitalStructuring,
	"capital_structuring":   ServiceCapitalStructuring,
	"investment advisory":   ServiceInvestmentAdvisory,
	"investment_advisory":   ServiceInvestmentAdvisory,
	"financial planning":    ServiceFinancialPlanning,
	"financial_planning":    ServiceFinancialPlanning,
	"asset management":      ServiceAssetManagement,
	"asset_management":      ServiceAssetManagement,
	"tax planning":          ServiceTaxPlanning,
	"tax_planning":          ServiceTaxPlanning,
	"wealth management":     ServiceAssetManagement,
	"investment consulting": ServiceInvestmentAdvisory,
}

// NormalizeService mapeia o nome bruto do serviço para a categoria conhecida.
// Nomes não reconhecidos caem em ServiceUnknown, nunca em erro.
func NormalizeService(raw string) ServiceCategory {
	if category, ok := serviceCategoryByName[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return category
	}
	return ServiceUnknown
}

// PaymentMethod é o método de pagamento normalizado
type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentCash         PaymentMethod = "cash"
	PaymentCrypto       PaymentMethod = "cryptocurrency"
	PaymentUnknown      PaymentMethod = "unknown"
)

var paymentMethodByName = map[string]PaymentMethod{
	"bank transfer":  PaymentBankTransfer,
	"bank_transfer":  PaymentBankTransfer,
	"transfer":       PaymentBankTransfer,
	"wire":           PaymentBankTransfer,
	"credit card":    PaymentCreditCard,
	"credit_card":    PaymentCreditCard,
	"card":           PaymentCreditCard,
	"cash":           PaymentCash,
	"crypto":         PaymentCrypto,
	"cryptocurrency": PaymentCrypto,
}

// NormalizePaymentMethod mapeia o método bruto para o enum fechado.
// Valores não reconhecidos caem em PaymentUnknown.
func NormalizePaymentMethod(raw string) PaymentMethod {
	if method, ok := paymentMethodByName[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return method
	}
	return PaymentUnknown
}

// RawTransaction é a linha da planilha como lida da origem, sem nenhuma
// validação semântica. Todos os campos são texto livre.
type RawTransaction struct {
	ID            string `json:"transaction_id"`
	ClientID      string `json:"client_id"`
	Date          string `json:"transaction_date"`
	Amount        string `json:"amount"`
	Service       string `json:"service"`
	City          string `json:"city"`
	PaymentMethod string `json:"payment_method"`
	Consultant    string `json:"consultant"`
	Row           int    `json:"row"`
}

// Transaction é a transação validada. Só é construída pelo cleaner quando
// todos os campos obrigatórios passaram nas regras.
type Transaction struct {
	ID                    string          `json:"id"`
	ClientID              string          `json:"client_id"`
	Date                  time.Time       `json:"transaction_date"`
	Amount                float64         `json:"amount"`
	RawService            string          `json:"raw_service"`
	ServiceCategory       ServiceCategory `json:"service_category"`
	RawPaymentMethod      string          `json:"raw_payment_method"`
	PaymentMethodCategory PaymentMethod   `json:"payment_method_category"`
	City                  *string         `json:"city,omitempty"`
	Consultant            *string         `json:"consultant,omitempty"`
	ClientMissing         bool            `json:"client_missing,omitempty"`
}

// Month retorna o período da transação no formato YYYY-MM
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}
