package db

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"Ember/internal/config"
	"Ember/internal/db/dialect"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Open selects the configured backend, prepares its schema, and returns the
// executor the rest of the application queries through. The choice is made
// once per process; tests Close the executor and construct a fresh one.
func Open(cfg config.Database, logger *slog.Logger, logQueries bool) (dialect.QueryExecutor, error) {
	switch cfg.Backend {
	case "postgres":
		return openPostgres(cfg, logger, logQueries)
	case "sqlite":
		return openSQLite(cfg, logger, logQueries)
	default:
		return nil, fmt.Errorf("unknown database backend %q", cfg.Backend)
	}
}

func openPostgres(cfg config.Database, logger *slog.Logger, logQueries bool) (dialect.QueryExecutor, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return dialect.NewPostgresExecutor(db, logger, logQueries), nil
}

func openSQLite(cfg config.Database, logger *slog.Logger, logQueries bool) (dialect.QueryExecutor, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return dialect.NewSQLiteExecutor(db, logger, logQueries), nil
}

// Migrate runs the embedded goose migrations against a postgres database.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
