package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Ember/internal/core/comments"
	"Ember/internal/db/dialect"
)

type commentRepo struct {
	exec dialect.QueryExecutor
}

// NewCommentRepository creates a comment repository over the active backend
func NewCommentRepository(exec dialect.QueryExecutor) comments.Repository {
	return &commentRepo{exec: exec}
}

func (r *commentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (idea_id, author_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	err := r.exec.InsertReturning(ctx,
		"comments",
		[]string{"id", "created_at", "updated_at"},
		query,
		[]any{comment.IdeaID, comment.AuthorID, comment.Body, comment.CreatedAt, comment.UpdatedAt},
		&comment.ID, &comment.CreatedAt, &comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	query := `
		SELECT id, idea_id, author_id, body, created_at, updated_at
		FROM comments
		WHERE id = $1
	`

	var comment comments.Comment
	err := r.exec.QueryRow(ctx, query, id).Scan(
		&comment.ID, &comment.IdeaID, &comment.AuthorID, &comment.Body,
		&comment.CreatedAt, &comment.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

func (r *commentRepo) ListByIdea(ctx context.Context, ideaID int64, limit, offset int) ([]*comments.Comment, error) {
	query := `
		SELECT id, idea_id, author_id, body, created_at, updated_at
		FROM comments
		WHERE idea_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.exec.Query(ctx, query, ideaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*comments.Comment
	for rows.Next() {
		var comment comments.Comment
		err := rows.Scan(
			&comment.ID, &comment.IdeaID, &comment.AuthorID, &comment.Body,
			&comment.CreatedAt, &comment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return result, nil
}

func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.exec.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}
	return nil
}
