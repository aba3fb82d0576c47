package sqlstore

import (
	"database/sql"
)

// Queryer é satisfeito tanto por *sql.DB quanto por *sql.Tx, o que permite
// aos repositórios rodar dentro ou fora de uma transação
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
