package dialect

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestSQLiteExecutor(t *testing.T) *SQLiteExecutor {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err, "Failed to open in-memory database")

	exec := NewSQLiteExecutor(db, slog.Default(), false)
	t.Cleanup(func() { _ = exec.Close() })

	_, err = db.Exec(`
		CREATE TABLE widgets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			enabled INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		)
	`)
	require.NoError(t, err, "Failed to create test schema")

	return exec
}

func TestSQLiteExecutor_ExecAndQueryRow(t *testing.T) {
	exec := newTestSQLiteExecutor(t)
	ctx := context.Background()

	// Canonical postgres-style placeholders, out of order.
	_, err := exec.Exec(ctx,
		"INSERT INTO widgets (created_at, name, enabled) VALUES ($3, $1, $2)",
		"anvil", true, time.Now().UTC())
	require.NoError(t, err)

	var name string
	var enabled bool
	err = exec.QueryRow(ctx, "SELECT name, enabled FROM widgets WHERE name = $1", "anvil").
		Scan(&name, &enabled)
	require.NoError(t, err)
	assert.Equal(t, "anvil", name)
	assert.True(t, enabled, "Boolean should survive the 0/1 coercion round trip")
}

func TestSQLiteExecutor_QueryRowTranslationErrorAtScan(t *testing.T) {
	exec := newTestSQLiteExecutor(t)

	var name string
	err := exec.QueryRow(context.Background(),
		"SELECT name FROM widgets WHERE id = $2", int64(1)).
		Scan(&name)
	require.Error(t, err, "Out-of-range ordinal should fail without reaching the database")
	assert.ErrorContains(t, err, "out of range")
}

func TestSQLiteExecutor_RowLockClauseStripped(t *testing.T) {
	exec := newTestSQLiteExecutor(t)
	ctx := context.Background()

	_, err := exec.Exec(ctx,
		"INSERT INTO widgets (name, enabled, created_at) VALUES ($1, $2, $3)",
		"anvil", true, time.Now().UTC())
	require.NoError(t, err)

	// FOR UPDATE is postgres-only syntax; the translator must drop it so
	// repository queries stay backend-neutral.
	var id int64
	err = exec.QueryRow(ctx,
		"SELECT id FROM widgets WHERE name = $1 FOR UPDATE", "anvil").
		Scan(&id)
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestSQLiteExecutor_InsertReturning(t *testing.T) {
	exec := newTestSQLiteExecutor(t)
	ctx := context.Background()

	var id int64
	var created time.Time
	err := exec.InsertReturning(ctx,
		"widgets",
		[]string{"id", "created_at"},
		"INSERT INTO widgets (name, enabled, created_at) VALUES ($1, $2, $3)",
		[]any{"hammer", false, time.Now().UTC()},
		&id, &created,
	)
	require.NoError(t, err)
	assert.NotZero(t, id, "ID should be populated from the inserted row")
	assert.False(t, created.IsZero())

	// Second insert gets a distinct id.
	var id2 int64
	err = exec.InsertReturning(ctx,
		"widgets",
		[]string{"id"},
		"INSERT INTO widgets (name, enabled, created_at) VALUES ($1, $2, $3)",
		[]any{"wrench", true, time.Now().UTC()},
		&id2,
	)
	require.NoError(t, err)
	assert.Greater(t, id2, id)
}

func TestSQLiteExecutor_RunInTransaction_Commit(t *testing.T) {
	exec := newTestSQLiteExecutor(t)
	ctx := context.Background()

	err := exec.RunInTransaction(ctx, func(tx Executor) error {
		_, err := tx.Exec(ctx,
			"INSERT INTO widgets (name, enabled, created_at) VALUES ($1, $2, $3)",
			"committed", false, time.Now().UTC())
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, exec.QueryRow(ctx, "SELECT COUNT(*) FROM widgets").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSQLiteExecutor_RunInTransaction_RollbackOnError(t *testing.T) {
	exec := newTestSQLiteExecutor(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := exec.RunInTransaction(ctx, func(tx Executor) error {
		if _, err := tx.Exec(ctx,
			"INSERT INTO widgets (name, enabled, created_at) VALUES ($1, $2, $3)",
			"doomed", false, time.Now().UTC()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, exec.QueryRow(ctx, "SELECT COUNT(*) FROM widgets").Scan(&count))
	assert.Equal(t, 0, count, "Failed transaction should leave no rows behind")
}

func TestSQLiteExecutor_UniqueViolation(t *testing.T) {
	exec := newTestSQLiteExecutor(t)
	ctx := context.Background()

	insert := "INSERT INTO widgets (name, enabled, created_at) VALUES ($1, $2, $3)"
	_, err := exec.Exec(ctx, insert, "dup", false, time.Now().UTC())
	require.NoError(t, err)

	_, err = exec.Exec(ctx, insert, "dup", false, time.Now().UTC())
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err), "Duplicate insert should classify as a unique violation")
}
