package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/KiwiRant/Kitchen-database/internal/api"
	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
	"github.com/KiwiRant/Kitchen-database/internal/credential"
	"github.com/KiwiRant/Kitchen-database/internal/infrastructure/config"
	"github.com/KiwiRant/Kitchen-database/internal/infrastructure/db/postgres"
	"github.com/KiwiRant/Kitchen-database/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, using development secret")
		cfg.JWTSecret = "dev-secret-change-me"
	}

	ctx := context.Background()

	pool, err := postgres.New(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	// Resolve the users-table shape once at startup; a table without a
	// usable identifier or password column is a deployment error.
	meta, err := postgres.LoadUsersMetadata(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve users schema")
	}
	log.Info().
		Str("identifier_column", meta.IdentifierColumn).
		Str("password_column", meta.PasswordColumn).
		Strs("unsupported_required", meta.UnsupportedRequired).
		Msg("users schema resolved")

	users := postgres.NewUserRepository(pool, meta)
	if err := seedAdmin(ctx, cfg, users, log); err != nil {
		log.Fatal().Err(err).Msg("seed admin account")
	}

	e := api.NewRouter(log, pool, users, cfg.JWTSecret)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// seedAdmin creates the configured bootstrap admin when the users table is
// empty, so a fresh deployment has a way in. Existing rows disable seeding.
func seedAdmin(ctx context.Context, cfg *config.Config, users *postgres.UserRepository, log zerolog.Logger) error {
	if cfg.Seed.AdminIdentifier == "" || cfg.Seed.AdminPassword == "" {
		return nil
	}

	n, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = users.Create(ctx, ports.CreateUserParams{
		Identifier:   cfg.Seed.AdminIdentifier,
		PasswordHash: credential.Hash(cfg.Seed.AdminPassword),
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return err
	}
	log.Info().Str("identifier", cfg.Seed.AdminIdentifier).Msg("seeded admin account")
	return nil
}
