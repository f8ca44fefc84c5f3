package storex

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Get runs a single-row query and scans the result into a T, translating
// any failure. A missing row comes back as a 404 fault. q may be a *sqlx.DB
// or a *sqlx.Tx.
func Get[T any](ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (T, error) {
	var dest T
	if err := sqlx.GetContext(ctx, q, &dest, query, args...); err != nil {
		return dest, Translate(err)
	}
	return dest, nil
}

// Select runs a multi-row query and scans the results into a []T,
// translating any failure.
func Select[T any](ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]T, error) {
	var dest []T
	if err := sqlx.SelectContext(ctx, q, &dest, query, args...); err != nil {
		return nil, Translate(err)
	}
	return dest, nil
}

// Exec runs a statement, translating any failure. Constraint violations
// surface as 409 or 422 faults through the SQLSTATE mapping.
func Exec(ctx context.Context, e sqlx.ExecerContext, query string, args ...any) (sql.Result, error) {
	result, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, Translate(err)
	}
	return result, nil
}
