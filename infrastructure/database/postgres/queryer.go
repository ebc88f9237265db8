package postgres

import (
	"context"
	"database/sql"
)

// Queryer is the context-aware subset of *sql.DB the repositories use.
type Queryer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Transactor is a Queryer that can also scope work to one transaction.
type Transactor interface {
	Queryer
	RunInTransaction(ctx context.Context, fn func(Queryer) error) error
}

// Tx adapts *sql.Tx to Queryer.
type Tx struct {
	*sql.Tx
}

func (t Tx) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return t.Tx.ExecContext(ctx, query, args...)
}

func (t Tx) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return t.Tx.QueryContext(ctx, query, args...)
}

func (t Tx) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return t.Tx.QueryRowContext(ctx, query, args...)
}
