package repository

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/finance-insights/infrastructure/database/sqlstore"
	"github.com/vfg2006/finance-insights/internal/domain"
	"github.com/vfg2006/finance-insights/pkg/utils"
)

const (
	transactionsTable = "transactions"

	// Datas são persistidas como texto ISO-8601; o mês sai via substr,
	// que funciona igual em sqlite e postgres
	monthExpr = "substr(transaction_date, 1, 7)"

	storedDateLayout = "2006-01-02 15:04:05"
)

type TransactionRepository interface {
	UpsertBatch(q sqlstore.Queryer, transactions []*domain.Transaction) error
	DeleteAll(q sqlstore.Queryer) error
	FlagMissingClients(q sqlstore.Queryer) (int64, error)
	Count() (int, error)
	TopServicesByCount(limit int) ([]domain.ServiceCount, error)
	ServiceWithMaxRevenue() (*domain.ServiceCount, error)
	RevenueByCity() ([]domain.DimensionRevenue, error)
	RevenueByService() ([]domain.DimensionRevenue, error)
	RevenueByPaymentMethod() ([]domain.DimensionRevenue, error)
	AvgAmountByCity() ([]domain.CityAverage, error)
	PaymentMethodDistribution() ([]domain.PaymentShare, error)
	LastMonthRevenue() (float64, error)
	MonthlyRevenue() ([]domain.MonthlyRevenuePoint, error)
	ServicePerformance() ([]domain.ServicePerformance, error)
}

type transactionRepository struct {
	conn sqlstore.Conn
}

func NewTransactionRepository(conn sqlstore.Conn) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// UpsertBatch insere as transações validadas; em conflito de id a carga
// mais recente vence. Recebe o Queryer para rodar dentro da transação
// aberta pelo serviço de carga.
func (r *transactionRepository) UpsertBatch(q sqlstore.Queryer, transactions []*domain.Transaction) error {
	for _, transaction := range transactions {
		query, args, err := r.conn.Builder().
			Insert(transactionsTable).
			Columns(
				"id", "client_id", "transaction_date", "amount",
				"raw_service", "service_category",
				"raw_payment_method", "payment_method_category",
				"city", "consultant", "client_missing",
			).
			Values(
				transaction.ID,
				transaction.ClientID,
				transaction.Date.Format(storedDateLayout),
				transaction.Amount,
				transaction.RawService,
				string(transaction.ServiceCategory),
				transaction.RawPaymentMethod,
				string(transaction.PaymentMethodCategory),
				transaction.City,
				transaction.Consultant,
				boolToInt(transaction.ClientMissing),
			).
			Suffix(`
				ON CONFLICT (id) DO UPDATE SET
					client_id = EXCLUDED.client_id,
					transaction_date = EXCLUDED.transaction_date,
					amount = EXCLUDED.amount,
					raw_service = EXCLUDED.raw_service,
					service_category = EXCLUDED.service_category,
					raw_payment_method = EXCLUDED.raw_payment_method,
					payment_method_category = EXCLUDED.payment_method_category,
					city = EXCLUDED.city,
					consultant = EXCLUDED.consultant,
					client_missing = EXCLUDED.client_missing
			`).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao gravar transação %s: %w", transaction.ID, err)
		}
	}

	return nil
}

func (r *transactionRepository) DeleteAll(q sqlstore.Queryer) error {
	query, _, err := r.conn.Builder().
		Delete(transactionsTable).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(query); err != nil {
		return fmt.Errorf("erro ao limpar transações: %w", err)
	}

	return nil
}

// FlagMissingClients marca as transações cujo client_id não existe na
// tabela de clientes. Elas permanecem no warehouse, apenas sinalizadas.
// Retorna quantas transações ficaram órfãs.
func (r *transactionRepository) FlagMissingClients(q sqlstore.Queryer) (int64, error) {
	resetQuery := `UPDATE transactions SET client_missing = 0`
	if _, err := q.Exec(resetQuery); err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	flagQuery := `
		UPDATE transactions SET client_missing = 1
		WHERE client_id NOT IN (SELECT id FROM clients)`

	result, err := q.Exec(flagQuery)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *transactionRepository) Count() (int, error) {
	query, _, err := r.conn.Builder().
		Select("COUNT(*)").
		From(transactionsTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}

	return total, nil
}

// TopServicesByCount ranqueia serviços por quantidade de pedidos.
// Desempate por receita e depois por nome, para manter o resultado
// estável entre execuções.
func (r *transactionRepository) TopServicesByCount(limit int) ([]domain.ServiceCount, error) {
	query, args, err := r.conn.Builder().
		Select(
			"raw_service",
			"COUNT(*) AS order_count",
			"SUM(amount) AS total_revenue",
		).
		From(transactionsTable).
		GroupBy("raw_service").
		OrderBy("order_count DESC", "total_revenue DESC", "raw_service ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	services := make([]domain.ServiceCount, 0)
	for rows.Next() {
		var entry domain.ServiceCount
		if err := rows.Scan(&entry.Service, &entry.OrderCount, &entry.TotalRevenue); err != nil {
			return nil, fmt.Errorf("erro ao escanear ranking de serviços: %w", err)
		}
		entry.TotalRevenue = utils.RoundWithTwoDecimalPlace(entry.TotalRevenue)
		services = append(services, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return services, nil
}

func (r *transactionRepository) ServiceWithMaxRevenue() (*domain.ServiceCount, error) {
	query, _, err := r.conn.Builder().
		Select(
			"raw_service",
			"COUNT(*) AS order_count",
			"SUM(amount) AS total_revenue",
		).
		From(transactionsTable).
		GroupBy("raw_service").
		OrderBy("total_revenue DESC", "raw_service ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var entry domain.ServiceCount
	err = r.conn.QueryRow(query).Scan(&entry.Service, &entry.OrderCount, &entry.TotalRevenue)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear serviço de maior receita: %w", err)
	}

	entry.TotalRevenue = utils.RoundWithTwoDecimalPlace(entry.TotalRevenue)

	return &entry, nil
}

func (r *transactionRepository) RevenueByCity() ([]domain.DimensionRevenue, error) {
	return r.revenueByColumn("city", true)
}

func (r *transactionRepository) RevenueByService() ([]domain.DimensionRevenue, error) {
	return r.revenueByColumn("raw_service", false)
}

func (r *transactionRepository) RevenueByPaymentMethod() ([]domain.DimensionRevenue, error) {
	return r.revenueByColumn("raw_payment_method", false)
}

func (r *transactionRepository) revenueByColumn(column string, skipNull bool) ([]domain.DimensionRevenue, error) {
	builder := r.conn.Builder().
		Select(
			column,
			"SUM(amount) AS total_revenue",
			"COUNT(*) AS transaction_count",
		).
		From(transactionsTable).
		GroupBy(column).
		OrderBy("total_revenue DESC", column+" ASC")

	if skipNull {
		builder = builder.Where(column + " IS NOT NULL")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	revenues := make([]domain.DimensionRevenue, 0)
	for rows.Next() {
		var entry domain.DimensionRevenue
		if err := rows.Scan(&entry.Value, &entry.TotalRevenue, &entry.TransactionCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita por %s: %w", column, err)
		}
		entry.TotalRevenue = utils.RoundWithTwoDecimalPlace(entry.TotalRevenue)
		revenues = append(revenues, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return revenues, nil
}

func (r *transactionRepository) AvgAmountByCity() ([]domain.CityAverage, error) {
	query, args, err := r.conn.Builder().
		Select(
			"city",
			"AVG(amount) AS avg_amount",
			"COUNT(*) AS transaction_count",
		).
		From(transactionsTable).
		Where("city IS NOT NULL").
		GroupBy("city").
		OrderBy("avg_amount DESC", "city ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	averages := make([]domain.CityAverage, 0)
	for rows.Next() {
		var entry domain.CityAverage
		if err := rows.Scan(&entry.City, &entry.AvgAmount, &entry.TransactionCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear ticket médio por cidade: %w", err)
		}
		entry.AvgAmount = utils.RoundWithTwoDecimalPlace(entry.AvgAmount)
		averages = append(averages, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return averages, nil
}

// PaymentMethodDistribution calcula a participação percentual de cada
// método de pagamento sobre o total de transações
func (r *transactionRepository) PaymentMethodDistribution() ([]domain.PaymentShare, error) {
	query, args, err := r.conn.Builder().
		Select(
			"raw_payment_method",
			"COUNT(*) AS transaction_count",
		).
		From(transactionsTable).
		GroupBy("raw_payment_method").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	shares := make([]domain.PaymentShare, 0)
	total := 0
	for rows.Next() {
		var entry domain.PaymentShare
		if err := rows.Scan(&entry.Method, &entry.TransactionCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear distribuição de pagamentos: %w", err)
		}
		total += entry.TransactionCount
		shares = append(shares, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if total > 0 {
		for i := range shares {
			shares[i].Percentage = utils.RoundWithTwoDecimalPlace(
				float64(shares[i].TransactionCount) * 100 / float64(total),
			)
		}
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].TransactionCount != shares[j].TransactionCount {
			return shares[i].TransactionCount > shares[j].TransactionCount
		}
		return shares[i].Method < shares[j].Method
	})

	return shares, nil
}

// LastMonthRevenue soma a receita do mês-calendário anterior ao mês da
// transação mais recente. O mês mais recente costuma estar incompleto,
// então o fechado anterior é a referência.
func (r *transactionRepository) LastMonthRevenue() (float64, error) {
	maxQuery, _, err := r.conn.Builder().
		Select("MAX(transaction_date)").
		From(transactionsTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var maxDate sql.NullString
	if err := r.conn.QueryRow(maxQuery).Scan(&maxDate); err != nil {
		return 0, fmt.Errorf("erro ao buscar a data mais recente: %w", err)
	}

	if !maxDate.Valid {
		return 0, nil
	}

	latest, err := time.Parse(storedDateLayout, maxDate.String)
	if err != nil {
		return 0, fmt.Errorf("erro ao converter data: %w", err)
	}

	previousMonth := utils.FirstDayOfMonth(latest).AddDate(0, -1, 0).Format("2006-01")

	query, args, err := r.conn.Builder().
		Select("COALESCE(SUM(amount), 0)").
		From(transactionsTable).
		Where(squirrel.Eq{monthExpr: previousMonth}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var revenue float64
	if err := r.conn.QueryRow(query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("erro ao somar receita do mês anterior: %w", err)
	}

	return utils.RoundWithTwoDecimalPlace(revenue), nil
}

// MonthlyRevenue agrupa receita e contagem por mês, em ordem
// cronológica. Meses sem transações não aparecem aqui; o preenchimento
// de lacunas é responsabilidade do agregador.
func (r *transactionRepository) MonthlyRevenue() ([]domain.MonthlyRevenuePoint, error) {
	query, args, err := r.conn.Builder().
		Select(
			monthExpr+" AS period",
			"SUM(amount) AS revenue",
			"COUNT(*) AS transaction_count",
		).
		From(transactionsTable).
		GroupBy(monthExpr).
		OrderBy("period ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]domain.MonthlyRevenuePoint, 0)
	for rows.Next() {
		var point domain.MonthlyRevenuePoint
		if err := rows.Scan(&point.Period, &point.Revenue, &point.TransactionCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear série mensal: %w", err)
		}
		point.Revenue = utils.RoundWithTwoDecimalPlace(point.Revenue)
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

// ServicePerformance monta a visão completa por serviço: contagens,
// receita, ticket médio, extremos e participações percentuais
func (r *transactionRepository) ServicePerformance() ([]domain.ServicePerformance, error) {
	query, args, err := r.conn.Builder().
		Select(
			"raw_service",
			"COUNT(*) AS order_count",
			"SUM(amount) AS total_revenue",
			"AVG(amount) AS avg_amount",
			"MIN(amount) AS min_amount",
			"MAX(amount) AS max_amount",
		).
		From(transactionsTable).
		GroupBy("raw_service").
		OrderBy("total_revenue DESC", "raw_service ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	performances := make([]domain.ServicePerformance, 0)
	var totalRevenue float64
	var totalOrders int
	for rows.Next() {
		var entry domain.ServicePerformance
		err := rows.Scan(
			&entry.Service,
			&entry.OrderCount,
			&entry.TotalRevenue,
			&entry.AvgAmount,
			&entry.MinAmount,
			&entry.MaxAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear desempenho de serviços: %w", err)
		}
		totalRevenue += entry.TotalRevenue
		totalOrders += entry.OrderCount
		performances = append(performances, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	for i := range performances {
		performances[i].TotalRevenue = utils.RoundWithTwoDecimalPlace(performances[i].TotalRevenue)
		performances[i].AvgAmount = utils.RoundWithTwoDecimalPlace(performances[i].AvgAmount)
		if totalRevenue > 0 {
			performances[i].RevenuePercentage = utils.RoundWithTwoDecimalPlace(
				performances[i].TotalRevenue * 100 / totalRevenue,
			)
		}
		if totalOrders > 0 {
			performances[i].OrderPercentage = utils.RoundWithTwoDecimalPlace(
				float64(performances[i].OrderCount) * 100 / float64(totalOrders),
			)
		}
	}

	return performances, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
