package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/vfg2006/finance-insights/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	Builder() squirrel.StatementBuilderType
}

type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	driverName := cfg.Driver
	dsn := cfg.DSN

	if driverName == "sqlite" {
		// O driver modernc registra-se como "sqlite"; busy_timeout evita
		// SQLITE_BUSY quando pipeline e server compartilham o arquivo
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(15000)&_pragma=foreign_keys(0)", cfg.Path)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	conn := &Connection{DB: db, driver: driverName}

	if err := conn.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("erro ao criar o schema do warehouse: %w", err)
	}

	return conn, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Builder retorna o statement builder com o placeholder do driver ativo
func (c *Connection) Builder() squirrel.StatementBuilderType {
	if c.driver == "postgres" {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// RunInTransaction executa fn dentro de uma única transação. Qualquer erro
// (ou panic) desfaz tudo: a carga no warehouse é tudo-ou-nada.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if err := tx.Rollback(); err != nil {
			return err
		}
		return err
	}

	return tx.Commit()
}
