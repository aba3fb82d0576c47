package sqlstore

import "context"

// DDL portável entre sqlite e postgres: datas como TEXT ISO-8601
// (agrupamento por mês via substr), booleanos como INTEGER 0/1.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id VARCHAR(36) PRIMARY KEY,
		age INTEGER,
		gender VARCHAR(20) NOT NULL,
		net_worth DOUBLE PRECISION
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id VARCHAR(36) PRIMARY KEY,
		client_id VARCHAR(36) NOT NULL,
		transaction_date VARCHAR(19) NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		raw_service VARCHAR(100) NOT NULL,
		service_category VARCHAR(50) NOT NULL,
		raw_payment_method VARCHAR(50) NOT NULL,
		payment_method_category VARCHAR(50) NOT NULL,
		city VARCHAR(100),
		consultant VARCHAR(100),
		client_missing INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS analysis_snapshots (
		run_id VARCHAR(36) PRIMARY KEY,
		generated_at VARCHAR(19) NOT NULL,
		result_json TEXT NOT NULL,
		parameters_json TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS ix_transactions_client_id ON transactions (client_id)`,
	`CREATE INDEX IF NOT EXISTS ix_transactions_date ON transactions (transaction_date)`,
	`CREATE INDEX IF NOT EXISTS ix_transactions_service ON transactions (raw_service)`,
	`CREATE INDEX IF NOT EXISTS ix_clients_net_worth ON clients (net_worth)`,
	`CREATE INDEX IF NOT EXISTS ix_snapshots_generated_at ON analysis_snapshots (generated_at)`,
}

func (c *Connection) ensureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := c.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
