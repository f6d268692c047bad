package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// SQLiteExecutor runs canonical queries against the embedded backend.
// Ordinal placeholders are rewritten to ?, boolean parameters are coerced to
// 0/1 at bind time, and insert-returning is emulated via last-insert-rowid.
type SQLiteExecutor struct {
	executor
	db *sql.DB
}

// NewSQLiteExecutor wraps an open SQLite handle. The pool is capped at a
// single connection: SQLite allows one writer process-wide, and the
// last-insert-rowid emulation relies on statement pairs sharing a connection.
func NewSQLiteExecutor(db *sql.DB, logger *slog.Logger, logQueries bool) *SQLiteExecutor {
	db.SetMaxOpenConns(1)
	return &SQLiteExecutor{
		executor: executor{
			run:        db,
			backend:    SQLite,
			logger:     logger,
			logQueries: logQueries,
		},
		db: db,
	}
}

func (e *SQLiteExecutor) Backend() Backend { return SQLite }

func (e *SQLiteExecutor) DB() *sql.DB { return e.db }

func (e *SQLiteExecutor) Close() error { return e.db.Close() }

// InsertReturning pins a connection so the follow-up rowid read observes the
// insert it belongs to, then delegates to the shared emulation path.
func (e *SQLiteExecutor) InsertReturning(ctx context.Context, table string, returning []string, query string, args []any, dest ...any) error {
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	pinned := &executor{
		run:        conn,
		backend:    SQLite,
		logger:     e.logger,
		logQueries: e.logQueries,
	}
	return pinned.InsertReturning(ctx, table, returning, query, args, dest...)
}

// RunInTransaction wraps work in BEGIN IMMEDIATE, SQLite's native exclusive
// write transaction: the write lock is taken up front, serializing the scope
// against every other writer in the process. Rollback on any error.
func (e *SQLiteExecutor) RunInTransaction(ctx context.Context, work func(Executor) error) error {
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			// Roll back even when ctx is already canceled.
			if _, rbErr := conn.ExecContext(context.Background(), "ROLLBACK"); rbErr != nil && e.logger != nil {
				e.logger.Error("rollback failed", "error", rbErr)
			}
		}
	}()

	scoped := &executor{
		run:        conn,
		backend:    SQLite,
		logger:     e.logger,
		logQueries: e.logQueries,
	}
	if err := work(scoped); err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true
	return nil
}
