// Package db opens the Postgres pool and applies schema migrations
package db

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx database/sql driver for goose
	"github.com/pressly/goose/v3"

	"github.com/KirkDiggler/general-configurator/internal/db/migrations"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

// Open connects a pgx pool and checks the server answers
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.InvalidArgument("postgres: dsn is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "postgres: failed to create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "postgres: ping failed")
	}
	return pool, nil
}

// RunMigrations applies every pending migration
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return errors.Wrap(err, "failed to open sql connection for migrations")
	}
	defer func() { _ = sqlDB.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}
	slog.InfoContext(ctx, "Migrations applied", "version", version)
	return nil
}
