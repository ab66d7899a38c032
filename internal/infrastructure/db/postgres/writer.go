package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

// InsertRow builds and executes a parameterized INSERT for a column set that
// is only known at runtime (the users table, whose shape comes from schema
// introspection). Column identifiers are quoted and interpolated; they come
// from information_schema, never from request input. Every value goes through
// parameter binding.
//
// The new row's identifier is read back through RETURNING on idColumn. When
// idColumn is empty (a table without a surrogate key) the statement executes
// without RETURNING and the returned id is zero.
func InsertRow(ctx context.Context, db PgxPool, table, idColumn string, columns []string, values []any) (int64, error) {
	if db == nil {
		return 0, domain.ErrStoreNotConfigured
	}
	if len(columns) == 0 || len(columns) != len(values) {
		return 0, fmt.Errorf("insert %s: %d columns for %d values", table, len(columns), len(values))
	}

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = pgx.Identifier{col}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)

	if idColumn == "" {
		if _, err := db.Exec(ctx, query, values...); err != nil {
			return 0, translateConstraintError(err)
		}
		return 0, nil
	}

	query += " RETURNING " + pgx.Identifier{idColumn}.Sanitize()
	var id int64
	if err := db.QueryRow(ctx, query, values...).Scan(&id); err != nil {
		return 0, translateConstraintError(err)
	}
	return id, nil
}
