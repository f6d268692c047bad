package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"Ember/internal/core/users"
	"Ember/internal/db/dialect"
)

type userRepo struct {
	exec dialect.QueryExecutor
}

// NewUserRepository creates a user repository over the active backend
func NewUserRepository(exec dialect.QueryExecutor) users.Repository {
	return &userRepo{exec: exec}
}

func (r *userRepo) Create(ctx context.Context, user *users.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	err := r.exec.InsertReturning(ctx,
		"users",
		[]string{"id", "created_at", "updated_at"},
		query,
		[]any{user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt},
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if dialect.IsUniqueViolation(err) {
			// Both backends name the offending column in the error text.
			if strings.Contains(err.Error(), "email") {
				return users.ErrEmailTaken
			}
			return users.ErrUsernameTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	return r.getBy(ctx, "username = $1", username)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.getBy(ctx, "email = $1", email)
}

func (r *userRepo) getBy(ctx context.Context, where string, arg any) (*users.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE ` + where

	var user users.User
	err := r.exec.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
