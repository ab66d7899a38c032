// Package postgres contains the PostgreSQL implementations of the repository
// ports, plus the users-table schema introspection the account endpoints
// depend on.
package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

// PgxPool is the minimal pool surface repositories use. It is satisfied by
// *pgxpool.Pool and by pgxmock.PgxPoolIface, which is what the tests inject.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// New opens a connection pool for the given DSN and verifies connectivity.
func New(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// translateConstraintError converts storage-level constraint violations into
// domain errors naming the offending column, so handlers never leak raw
// Postgres error text. Errors that are not constraint violations pass through.
func translateConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return &domain.DuplicateError{Column: columnFromConstraint(pgErr)}
	case pgNotNullViolation:
		col := pgErr.ColumnName
		if col == "" {
			col = "a required column"
		}
		return &domain.MissingValueError{Column: col}
	}
	return err
}

// columnFromConstraint recovers a column name from a unique-violation error.
// Postgres reports the constraint name ("users_username_key") rather than the
// column for unique violations, so strip the table prefix and "_key" suffix.
func columnFromConstraint(pgErr *pgconn.PgError) string {
	name := pgErr.ConstraintName
	if name == "" {
		return "value"
	}
	name = strings.TrimSuffix(name, "_key")
	name = strings.TrimSuffix(name, "_idx")
	if pgErr.TableName != "" {
		name = strings.TrimPrefix(name, pgErr.TableName+"_")
	}
	return name
}
