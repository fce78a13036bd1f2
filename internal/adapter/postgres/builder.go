package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder is the squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select runs query and scans all rows into dst (a pointer to a slice).
func Select(ctx context.Context, q Querier, dst any, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, sql, args...)
}

// Get runs query and scans exactly one row into dst.
// Returns pgx.ErrNoRows when the query yields nothing.
func Get(ctx context.Context, q Querier, dst any, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, sql, args...)
}

// Exec runs a statement and returns the number of affected rows.
func Exec(ctx context.Context, q Querier, stmt squirrel.Sqlizer) (int64, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build statement: %w", err)
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
