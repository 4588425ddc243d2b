package store

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql behavior the case store needs: execute,
// query, and single-row query. Both *sql.DB and *sql.Tx satisfy it, so store
// methods run the same against a plain connection or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
