package postgres

import (
	"context"
	"database/sql"
)

// Queryer abstrai *sql.DB e *sql.Tx para que os repositórios funcionem
// igualmente dentro e fora de transação
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) *sql.Row
}
