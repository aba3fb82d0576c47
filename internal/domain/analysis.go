package domain

import "time"

// ServiceCount representa um serviço no ranking por quantidade de pedidos
type ServiceCount struct {
	Service      string  `json:"service"`
	OrderCount   int     `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DimensionRevenue é a receita agregada por um valor de dimensão
// (cidade, serviço ou método de pagamento)
type DimensionRevenue struct {
	Value            string  `json:"value"`
	TotalRevenue     float64 `json:"total_revenue"`
	TransactionCount int     `json:"transaction_count"`
}

// CityAverage é o ticket médio por cidade
type CityAverage struct {
	City             string  `json:"city"`
	AvgAmount        float64 `json:"avg_amount"`
	TransactionCount int     `json:"transaction_count"`
}

// PaymentShare é a participação percentual de um método de pagamento
type PaymentShare struct {
	Method           string  `json:"method"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
}

// ServicePerformance é a visão completa de desempenho de um serviço
type ServicePerformance struct {
	Service           string  `json:"service"`
	OrderCount        int     `json:"order_count"`
	TotalRevenue      float64 `json:"total_revenue"`
	AvgAmount         float64 `json:"avg_amount"`
	MinAmount         float64 `json:"min_amount"`
	MaxAmount         float64 `json:"max_amount"`
	RevenuePercentage float64 `json:"revenue_percentage"`
	OrderPercentage   float64 `json:"order_percentage"`
}

// ClientSegmentStats agrega transações por faixa de patrimônio dos clientes
type ClientSegmentStats struct {
	Segment             NetWorthSegment `json:"segment"`
	ClientCount         int             `json:"client_count"`
	TransactionCount    int             `json:"transaction_count"`
	TotalRevenue        float64         `json:"total_revenue"`
	AvgRevenuePerClient float64         `json:"avg_revenue_per_client"`
	AvgTransaction      float64         `json:"avg_transaction"`
}

// MonthlyRevenuePoint é um ponto da série mensal de receita.
// Period está sempre no formato YYYY-MM.
type MonthlyRevenuePoint struct {
	Period           string  `json:"period"`
	Revenue          float64 `json:"revenue"`
	TransactionCount int     `json:"transaction_count"`
}

// Trend é o rótulo de tendência da regressão
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// ForecastPoint é um mês futuro projetado
type ForecastPoint struct {
	Period           string  `json:"period"`
	Revenue          float64 `json:"revenue"`
	TransactionCount int     `json:"transaction_count"`
}

// ForecastMetrics são os sinais de confiança do ajuste sobre o histórico
type ForecastMetrics struct {
	RevenueR2  float64 `json:"revenue_r2"`
	RevenueMAE float64 `json:"revenue_mae"`
	CountR2    float64 `json:"count_r2"`
	CountMAE   float64 `json:"count_mae"`
}

// Forecast é o resultado do previsor: pontos projetados ou o resultado
// estruturado de histórico insuficiente. Nunca é um erro.
type Forecast struct {
	Available      bool             `json:"available"`
	Message        string           `json:"message,omitempty"`
	ObservedMonths int              `json:"observed_months"`
	RequiredMonths int              `json:"required_months"`
	Points         []ForecastPoint  `json:"points,omitempty"`
	RevenueTrend   Trend            `json:"revenue_trend,omitempty"`
	CountTrend     Trend            `json:"count_trend,omitempty"`
	Metrics        *ForecastMetrics `json:"metrics,omitempty"`
}

// LoadSummary resume uma carga no warehouse: contagens de aceitos e
// rejeitados por entidade e por motivo, e transações órfãs sinalizadas
type LoadSummary struct {
	Mode                string            `json:"mode"`
	Transactions        *RejectionSummary `json:"transactions"`
	Clients             *RejectionSummary `json:"clients"`
	OrphanTransactions  int               `json:"orphan_transactions"`
	TransactionsInStore int               `json:"transactions_in_store"`
	ClientsInStore      int               `json:"clients_in_store"`
}

// SnapshotInfo identifica um snapshot persistido, sem o corpo do resultado
type SnapshotInfo struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
}

// AnalysisResult reúne todas as visões analíticas de uma execução.
// É recalculado do zero a cada run e persistido apenas como snapshot
// com carimbo de tempo.
type AnalysisResult struct {
	RunID                      string                `json:"run_id"`
	GeneratedAt                time.Time             `json:"generated_at"`
	TopServices                []ServiceCount        `json:"top_services"`
	MaxRevenueService          *ServiceCount         `json:"max_revenue_service,omitempty"`
	RevenueByCity              []DimensionRevenue    `json:"revenue_by_city"`
	RevenueByService           []DimensionRevenue    `json:"revenue_by_service"`
	RevenueByPaymentMethod     []DimensionRevenue    `json:"revenue_by_payment_method"`
	AvgByCity                  []CityAverage         `json:"avg_by_city"`
	PaymentDistribution        []PaymentShare        `json:"payment_distribution"`
	LastMonthRevenue           float64               `json:"last_month_revenue"`
	ClientSegments             []ClientSegmentStats  `json:"client_segments"`
	ServicePerformance         []ServicePerformance  `json:"service_performance"`
	MonthlyRevenue             []MonthlyRevenuePoint `json:"monthly_revenue"`
	ClientsWithoutTransactions int                   `json:"clients_without_transactions"`
	Forecast                   *Forecast             `json:"forecast,omitempty"`
	Load                       *LoadSummary          `json:"load,omitempty"`
}
