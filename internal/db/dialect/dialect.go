package dialect

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
)

// Backend identifies the active storage backend.
type Backend string

const (
	// Postgres is the networked, multi-client backend.
	Postgres Backend = "postgres"
	// SQLite is the embedded, single-process backend.
	SQLite Backend = "sqlite"
)

// Executor is the uniform query surface shared by top-level executors and
// transaction scopes. Queries are written once, in PostgreSQL ordinal style
// ($1, $2, ...); each backend translates placeholders and argument types as
// needed, so callers never branch on the active backend.
type Executor interface {
	// Exec runs a statement that returns no rows.
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)

	// Query runs a statement returning rows. The caller owns rows.Close.
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)

	// QueryRow runs a statement expected to return at most one row. All
	// failures, including translation failures, surface from Scan.
	QueryRow(ctx context.Context, query string, args ...any) Row

	// InsertReturning executes an INSERT and scans the named columns of the
	// freshly inserted row into dest. On postgres this is a native RETURNING
	// clause; on sqlite the insert is executed, the last-inserted rowid is
	// captured, and the row is re-read from the named table. The table and
	// column names are trusted repository constants, never user input.
	InsertReturning(ctx context.Context, table string, returning []string, query string, args []any, dest ...any) error
}

// QueryExecutor is the process-wide handle to one backend. It is constructed
// once at startup and passed by dependency injection to every repository;
// tests construct isolated instances and Close them.
type QueryExecutor interface {
	Executor

	// Backend reports which backend this executor talks to.
	Backend() Backend

	// RunInTransaction executes work inside a transaction scope. On any
	// error returned by work (or a failed commit) every write performed in
	// the scope is rolled back before the error propagates.
	RunInTransaction(ctx context.Context, work func(Executor) error) error

	// DB exposes the underlying handle for migration tooling.
	DB() *sql.DB

	Close() error
}

// Row is the single-row result surface, satisfied by *sql.Row. A query that
// could not even be issued is returned as a Row whose Scan reports the cause.
type Row interface {
	Scan(dest ...any) error
}

// errRow carries a pre-execution failure to the Scan call site, so the
// statement that failed to translate is never sent to the database.
type errRow struct {
	err error
}

func (r errRow) Scan(dest ...any) error {
	return r.err
}

// runner is the subset of database/sql satisfied by *sql.DB, *sql.Tx and
// *sql.Conn, letting one executor implementation serve all three scopes.
type runner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// executor implements Executor over a runner with per-backend translation.
type executor struct {
	run        runner
	backend    Backend
	logger     *slog.Logger
	logQueries bool
}

func (e *executor) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	q, a, err := e.translate(query, args)
	if err != nil {
		return nil, err
	}
	res, err := e.run.ExecContext(ctx, q, a...)
	if err != nil {
		e.logQueryError(query, args, err)
		return nil, fmt.Errorf("exec failed: %w", err)
	}
	return res, nil
}

func (e *executor) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	q, a, err := e.translate(query, args)
	if err != nil {
		return nil, err
	}
	rows, err := e.run.QueryContext(ctx, q, a...)
	if err != nil {
		e.logQueryError(query, args, err)
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return rows, nil
}

func (e *executor) QueryRow(ctx context.Context, query string, args ...any) Row {
	q, a, err := e.translate(query, args)
	if err != nil {
		e.logQueryError(query, args, err)
		return errRow{err: err}
	}
	return e.run.QueryRowContext(ctx, q, a...)
}

func (e *executor) InsertReturning(ctx context.Context, table string, returning []string, query string, args []any, dest ...any) error {
	cols := strings.Join(returning, ", ")

	if e.backend == Postgres {
		row := e.run.QueryRowContext(ctx, query+" RETURNING "+cols, args...)
		if err := row.Scan(dest...); err != nil {
			e.logQueryError(query, args, err)
			return fmt.Errorf("insert returning failed: %w", err)
		}
		return nil
	}

	// SQLite has no RETURNING support in this adapter: insert, capture the
	// last-inserted rowid, and re-read the row. Requires conn affinity,
	// which the caller (transaction scope or pinned connection) guarantees.
	q, a, err := e.translate(query, args)
	if err != nil {
		return err
	}
	res, err := e.run.ExecContext(ctx, q, a...)
	if err != nil {
		e.logQueryError(query, args, err)
		return fmt.Errorf("insert failed: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read last insert id: %w", err)
	}

	sel := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", cols, table)
	if err := e.run.QueryRowContext(ctx, sel, id).Scan(dest...); err != nil {
		e.logQueryError(sel, []any{id}, err)
		return fmt.Errorf("failed to read inserted row: %w", err)
	}
	return nil
}

// translate rewrites the canonical query for the active backend.
func (e *executor) translate(query string, args []any) (string, []any, error) {
	if e.backend == Postgres {
		return query, args, nil
	}
	q, a, err := rewriteOrdinals(query, coerceBools(args))
	if err != nil {
		return "", nil, fmt.Errorf("query translation failed: %w", err)
	}
	return stripRowLocks(q), a, nil
}

// logQueryError records the full query text and parameters. Enabled only in
// non-production profiles; the error itself always propagates to the caller.
func (e *executor) logQueryError(query string, args []any, err error) {
	if !e.logQueries || e.logger == nil {
		return
	}
	e.logger.Debug("query error",
		"backend", string(e.backend),
		"query", query,
		"args", fmt.Sprintf("%v", args),
		"error", err)
}
