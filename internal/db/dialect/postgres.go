package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// PostgresExecutor runs canonical queries against the networked backend.
// Placeholders and boolean parameters pass through unchanged; inserts use
// native RETURNING.
type PostgresExecutor struct {
	executor
	db *sql.DB
}

// NewPostgresExecutor wraps an open connection pool. The caller configures
// pool limits before handing the pool over.
func NewPostgresExecutor(db *sql.DB, logger *slog.Logger, logQueries bool) *PostgresExecutor {
	return &PostgresExecutor{
		executor: executor{
			run:        db,
			backend:    Postgres,
			logger:     logger,
			logQueries: logQueries,
		},
		db: db,
	}
}

func (e *PostgresExecutor) Backend() Backend { return Postgres }

func (e *PostgresExecutor) DB() *sql.DB { return e.db }

func (e *PostgresExecutor) Close() error { return e.db.Close() }

// RunInTransaction checks a connection out of the pool, issues BEGIN, runs
// work against that single connection, and commits on success. Any error
// from work or commit rolls back every write in the scope.
func (e *PostgresExecutor) RunInTransaction(ctx context.Context, work func(Executor) error) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// No-op after a successful commit.
	defer func() { _ = tx.Rollback() }()

	scoped := &executor{
		run:        tx,
		backend:    Postgres,
		logger:     e.logger,
		logQueries: e.logQueries,
	}
	if err := work(scoped); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
