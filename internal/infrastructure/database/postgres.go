package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"estimaflow/internal/logger"

	_ "github.com/lib/pq"
)

// PostgresPool tunes the connection pool. Zero values fall back to defaults.
type PostgresPool struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// ConnectPostgres opens and pings a lib/pq connection pool for dsn.
func ConnectPostgres(ctx context.Context, dsn string, pool PostgresPool) (*sql.DB, error) {
	if pool.MaxOpenConns == 0 {
		pool.MaxOpenConns = 25
	}
	if pool.MaxIdleConns == 0 {
		pool.MaxIdleConns = 10
	}
	if pool.ConnMaxLifetime == 0 {
		pool.ConnMaxLifetime = 5 * time.Minute
	}
	if pool.ConnMaxIdleTime == 0 {
		pool.ConnMaxIdleTime = 2 * time.Minute
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Global().Info().
		Int("max_open_conns", pool.MaxOpenConns).
		Int("max_idle_conns", pool.MaxIdleConns).
		Msg("postgres connection established")
	return db, nil
}

type migration struct {
	version int
	name    string
	up      string
}

var migrations = []migration{
	{
		version: 1,
		name:    "create_estimations",
		up: `CREATE TABLE IF NOT EXISTS estimations (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			customer   TEXT NOT NULL,
			date       TEXT NOT NULL,
			sections   JSONB NOT NULL DEFAULT '[]'::jsonb,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
	},
	{
		version: 2,
		name:    "create_projects",
		up: `CREATE TABLE IF NOT EXISTS projects (
			id             TEXT PRIMARY KEY,
			customer       TEXT NOT NULL,
			ref_number     TEXT NOT NULL,
			project_name   TEXT NOT NULL,
			project_number TEXT NOT NULL DEFAULT '',
			manager        TEXT NOT NULL DEFAULT '',
			area_location  TEXT NOT NULL DEFAULT '',
			address        TEXT NOT NULL DEFAULT '',
			due_date       TEXT NOT NULL DEFAULT '',
			contact        TEXT NOT NULL DEFAULT '',
			staff          TEXT NOT NULL DEFAULT '',
			status         TEXT NOT NULL,
			email          TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL,
			updated_at     TIMESTAMPTZ NOT NULL
		)`,
	},
	{
		version: 3,
		name:    "create_users",
		up: `CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			name          TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		)`,
	},
}

// MigratePostgres applies pending schema migrations in version order, each in
// its own transaction.
func MigratePostgres(ctx context.Context, db *sql.DB) error {
	log := logger.Global()

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		name       TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := applyMigration(ctx, db, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		log.Info().Int("version", m.version).Str("name", m.name).Msg("migration applied")
	}
	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.up); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.version, m.name); err != nil {
		return err
	}
	return tx.Commit()
}
