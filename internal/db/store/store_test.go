package store

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"Ember/internal/core/ideas"
	"Ember/internal/core/users"
	"Ember/internal/db"
	"Ember/internal/db/dialect"
)

// setupTestDB creates an isolated in-memory database with the full schema.
// Repository behavior is backend-agnostic, so the embedded backend covers the
// shared query surface; the dialect package holds the postgres parity tests.
func setupTestDB(t *testing.T) dialect.QueryExecutor {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err, "Failed to open in-memory database")

	exec := dialect.NewSQLiteExecutor(sqlDB, slog.Default(), false)
	t.Cleanup(func() { _ = exec.Close() })

	require.NoError(t, db.CreateSchema(sqlDB), "Failed to create schema")

	return exec
}

// createTestUser inserts a user and returns its ID
func createTestUser(t *testing.T, exec dialect.QueryExecutor, username string) int64 {
	t.Helper()

	repo := NewUserRepository(exec)
	now := time.Now().UTC()
	user := &users.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), user), "Failed to create test user")
	return user.ID
}

// createTestIdea inserts an idea owned by authorID and returns its ID
func createTestIdea(t *testing.T, exec dialect.QueryExecutor, authorID int64, title string) int64 {
	t.Helper()

	repo := NewIdeaRepository(exec)
	now := time.Now().UTC()
	idea := &ideas.Idea{
		Title:       title,
		Description: "test description",
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(context.Background(), idea), "Failed to create test idea")
	return idea.ID
}

// voteCountOf reads the denormalized counter straight from the ideas table
func voteCountOf(t *testing.T, exec dialect.QueryExecutor, ideaID int64) int64 {
	t.Helper()

	var count int64
	err := exec.QueryRow(context.Background(),
		"SELECT vote_count FROM ideas WHERE id = $1", ideaID).Scan(&count)
	require.NoError(t, err)
	return count
}
