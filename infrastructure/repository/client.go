package repository

import (
	"fmt"

	"github.com/vfg2006/finance-insights/infrastructure/database/sqlstore"
	"github.com/vfg2006/finance-insights/internal/domain"
	"github.com/vfg2006/finance-insights/pkg/utils"
)

const clientsTable = "clients"

// segmentExpr traduz o patrimônio nas faixas de segmentação.
// Os limites espelham domain.SegmentForNetWorth.
const segmentExpr = `CASE
	WHEN c.net_worth IS NULL THEN 'unknown'
	WHEN c.net_worth < 100000 THEN 'low'
	WHEN c.net_worth <= 1000000 THEN 'medium'
	ELSE 'high'
END`

type ClientRepository interface {
	UpsertBatch(q sqlstore.Queryer, clients []*domain.Client) error
	DeleteAll(q sqlstore.Queryer) error
	Count() (int, error)
	SegmentStats() ([]domain.ClientSegmentStats, error)
	CountWithoutTransactions() (int, error)
}

type clientRepository struct {
	conn sqlstore.Conn
}

func NewClientRepository(conn sqlstore.Conn) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

// UpsertBatch insere os clientes validados; em conflito de id a carga
// mais recente vence
func (r *clientRepository) UpsertBatch(q sqlstore.Queryer, clients []*domain.Client) error {
	for _, client := range clients {
		query, args, err := r.conn.Builder().
			Insert(clientsTable).
			Columns("id", "age", "gender", "net_worth").
			Values(
				client.ID,
				client.Age,
				string(client.Gender),
				client.NetWorth,
			).
			Suffix(`
				ON CONFLICT (id) DO UPDATE SET
					age = EXCLUDED.age,
					gender = EXCLUDED.gender,
					net_worth = EXCLUDED.net_worth
			`).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao gravar cliente %s: %w", client.ID, err)
		}
	}

	return nil
}

func (r *clientRepository) DeleteAll(q sqlstore.Queryer) error {
	query, _, err := r.conn.Builder().
		Delete(clientsTable).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(query); err != nil {
		return fmt.Errorf("erro ao limpar clientes: %w", err)
	}

	return nil
}

func (r *clientRepository) Count() (int, error) {
	query, _, err := r.conn.Builder().
		Select("COUNT(*)").
		From(clientsTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return total, nil
}

// SegmentStats agrega as transações por faixa de patrimônio do cliente.
// Clientes sem patrimônio informado entram na faixa "unknown"; clientes
// sem transações ainda contam no tamanho do segmento.
func (r *clientRepository) SegmentStats() ([]domain.ClientSegmentStats, error) {
	query, args, err := r.conn.Builder().
		Select(
			segmentExpr+" AS segment",
			"COUNT(DISTINCT c.id) AS client_count",
			"COUNT(t.id) AS transaction_count",
			"COALESCE(SUM(t.amount), 0) AS total_revenue",
		).
		From(clientsTable + " c").
		LeftJoin(transactionsTable + " t ON t.client_id = c.id").
		GroupBy("segment").
		OrderBy("total_revenue DESC", "segment ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	segments := make([]domain.ClientSegmentStats, 0)
	for rows.Next() {
		var entry domain.ClientSegmentStats
		var segment string
		err := rows.Scan(
			&segment,
			&entry.ClientCount,
			&entry.TransactionCount,
			&entry.TotalRevenue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear segmentos de clientes: %w", err)
		}

		entry.Segment = domain.NetWorthSegment(segment)
		entry.TotalRevenue = utils.RoundWithTwoDecimalPlace(entry.TotalRevenue)
		if entry.ClientCount > 0 {
			entry.AvgRevenuePerClient = utils.RoundWithTwoDecimalPlace(
				entry.TotalRevenue / float64(entry.ClientCount),
			)
		}
		if entry.TransactionCount > 0 {
			entry.AvgTransaction = utils.RoundWithTwoDecimalPlace(
				entry.TotalRevenue / float64(entry.TransactionCount),
			)
		}

		segments = append(segments, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return segments, nil
}

// CountWithoutTransactions conta clientes cadastrados que nunca
// transacionaram
func (r *clientRepository) CountWithoutTransactions() (int, error) {
	query := `
		SELECT COUNT(*) FROM clients c
		WHERE NOT EXISTS (
			SELECT 1 FROM transactions t WHERE t.client_id = c.id
		)`

	var total int
	if err := r.conn.QueryRow(query).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes sem transações: %w", err)
	}

	return total, nil
}
