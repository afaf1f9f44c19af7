package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito tanto por *sql.DB quanto por *sql.Tx
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Transactor executa uma função dentro de uma transação
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}
