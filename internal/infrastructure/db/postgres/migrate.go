package postgres

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/KiwiRant/Kitchen-database/internal/infrastructure/db/postgres/migrations"
)

// Migrate applies pending migrations for the clients/sales/quotes tables.
// The users table is deliberately excluded: it is bootstrapped through
// EnsureUsersTable so deployments with a pre-existing users schema keep it.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
