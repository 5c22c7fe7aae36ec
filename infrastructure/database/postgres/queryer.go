package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito tanto por *sql.DB quanto por *sql.Tx
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Transactor executa fn numa transação; fn recebe o *sql.Tx como Queryer
type Transactor interface {
	Queryer
	RunInTransaction(ctx context.Context, fn func(tx Queryer) error) error
}

var (
	_ Queryer    = (*sql.DB)(nil)
	_ Queryer    = (*sql.Tx)(nil)
	_ Transactor = (*Connection)(nil)
)
