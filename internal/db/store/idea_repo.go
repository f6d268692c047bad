package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"Ember/internal/core/ideas"
	"Ember/internal/db/dialect"
)

type ideaRepo struct {
	exec dialect.QueryExecutor
}

// NewIdeaRepository creates an idea repository over the active backend
func NewIdeaRepository(exec dialect.QueryExecutor) ideas.Repository {
	return &ideaRepo{exec: exec}
}

func (r *ideaRepo) Create(ctx context.Context, idea *ideas.Idea) error {
	query := `
		INSERT INTO ideas (title, description, author_id, tags, archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	err := r.exec.InsertReturning(ctx,
		"ideas",
		[]string{"id", "vote_count", "created_at", "updated_at"},
		query,
		[]any{idea.Title, idea.Description, idea.AuthorID, ideas.JoinTags(idea.Tags), idea.Archived, idea.CreatedAt, idea.UpdatedAt},
		&idea.ID, &idea.VoteCount, &idea.CreatedAt, &idea.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert idea: %w", err)
	}
	return nil
}

func (r *ideaRepo) GetByID(ctx context.Context, id int64) (*ideas.Idea, error) {
	query := `
		SELECT id, title, description, author_id, tags, vote_count, archived, created_at, updated_at
		FROM ideas
		WHERE id = $1
	`

	idea, err := scanIdea(r.exec.QueryRow(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ideas.ErrIdeaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}
	return idea, nil
}

// List filters, sorts and paginates. Tag filtering matches substrings inside
// the serialized tag list, so one tag that is a prefix of another also
// matches; this mirrors how tags have always been stored and queried here.
func (r *ideaRepo) List(ctx context.Context, req ideas.ListRequest) ([]*ideas.Idea, error) {
	where := []string{"($1 OR NOT archived)"}
	args := []any{req.IncludeArchived}
	param := 2

	if req.Tag != "" {
		where = append(where, fmt.Sprintf("tags LIKE '%%' || $%d || '%%'", param))
		args = append(args, strings.ToLower(req.Tag))
		param++
	}

	var orderBy string
	switch req.Sort {
	case "votes":
		// Denormalized column, kept in sync by every vote mutation.
		orderBy = "vote_count DESC, id DESC"
	case "oldest":
		orderBy = "created_at ASC, id ASC"
	default:
		orderBy = "created_at DESC, id DESC"
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, author_id, tags, vote_count, archived, created_at, updated_at
		FROM ideas
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, strings.Join(where, " AND "), orderBy, param, param+1)
	args = append(args, req.Limit, req.Offset)

	rows, err := r.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*ideas.Idea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		result = append(result, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ideas: %w", err)
	}
	return result, nil
}

func (r *ideaRepo) Update(ctx context.Context, idea *ideas.Idea) error {
	query := `
		UPDATE ideas
		SET title = $2, description = $3, tags = $4, archived = $5, updated_at = $6
		WHERE id = $1
	`
	res, err := r.exec.Exec(ctx, query,
		idea.ID, idea.Title, idea.Description, ideas.JoinTags(idea.Tags), idea.Archived, idea.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update idea: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ideas.ErrIdeaNotFound
	}
	return nil
}

func (r *ideaRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.exec.Exec(ctx, `DELETE FROM ideas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ideas.ErrIdeaNotFound
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanIdea(s scanner) (*ideas.Idea, error) {
	var (
		idea ideas.Idea
		tags string
	)
	err := s.Scan(
		&idea.ID, &idea.Title, &idea.Description, &idea.AuthorID,
		&tags, &idea.VoteCount, &idea.Archived, &idea.CreatedAt, &idea.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	idea.Tags = ideas.SplitTags(tags)
	return &idea, nil
}
