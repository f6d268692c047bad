package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"Ember/internal/core/votes"
	"Ember/internal/db/dialect"
)

type voteRepo struct {
	exec dialect.QueryExecutor
}

// NewVoteRepository creates a vote repository over the active backend
func NewVoteRepository(exec dialect.QueryExecutor) votes.Repository {
	return &voteRepo{exec: exec}
}

// Cast upserts the ballot keyed on the (user_id, idea_id) uniqueness
// constraint. One atomic statement, never read-then-write: concurrent casts
// from different users cannot race, and a same-user re-cast overwrites the
// stored type and refreshes the timestamp.
func (r *voteRepo) Cast(ctx context.Context, vote *votes.Vote) error {
	return r.exec.RunInTransaction(ctx, func(tx dialect.Executor) error {
		query := `
			INSERT INTO votes (user_id, idea_id, vote_type, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, idea_id) DO UPDATE
			SET vote_type = excluded.vote_type, created_at = excluded.created_at
		`
		if _, err := tx.Exec(ctx, query, vote.UserID, vote.IdeaID, string(vote.Type), vote.CreatedAt); err != nil {
			return fmt.Errorf("failed to cast vote: %w", err)
		}
		return syncVoteCount(ctx, tx, vote.IdeaID)
	})
}

// Switch flips vote_type in a single conditional UPDATE, so a concurrent
// cast or switch can never interleave between a read and a write.
func (r *voteRepo) Switch(ctx context.Context, userID, ideaID int64) (votes.VoteType, error) {
	var newType string

	err := r.exec.RunInTransaction(ctx, func(tx dialect.Executor) error {
		flip := `
			UPDATE votes
			SET vote_type = CASE vote_type WHEN 'upvote' THEN 'downvote' ELSE 'upvote' END,
			    created_at = $3
			WHERE user_id = $1 AND idea_id = $2
		`
		res, err := tx.Exec(ctx, flip, userID, ideaID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to switch vote: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check switch result: %w", err)
		}
		if affected == 0 {
			return votes.ErrVoteNotFound
		}

		row := tx.QueryRow(ctx,
			`SELECT vote_type FROM votes WHERE user_id = $1 AND idea_id = $2`,
			userID, ideaID)
		if err := row.Scan(&newType); err != nil {
			return fmt.Errorf("failed to read switched vote: %w", err)
		}

		return syncVoteCount(ctx, tx, ideaID)
	})
	if err != nil {
		return "", err
	}
	return votes.VoteType(newType), nil
}

// Remove deletes the ballot. ErrVoteNotFound when the user never voted.
func (r *voteRepo) Remove(ctx context.Context, userID, ideaID int64) error {
	return r.exec.RunInTransaction(ctx, func(tx dialect.Executor) error {
		res, err := tx.Exec(ctx,
			`DELETE FROM votes WHERE user_id = $1 AND idea_id = $2`,
			userID, ideaID)
		if err != nil {
			return fmt.Errorf("failed to remove vote: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check remove result: %w", err)
		}
		if affected == 0 {
			return votes.ErrVoteNotFound
		}
		return syncVoteCount(ctx, tx, ideaID)
	})
}

func (r *voteRepo) GetByUserAndIdea(ctx context.Context, userID, ideaID int64) (*votes.Vote, error) {
	query := `
		SELECT id, user_id, idea_id, vote_type, created_at
		FROM votes
		WHERE user_id = $1 AND idea_id = $2
	`

	var vote votes.Vote
	err := r.exec.QueryRow(ctx, query, userID, ideaID).Scan(
		&vote.ID, &vote.UserID, &vote.IdeaID, &vote.Type, &vote.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, votes.ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return &vote, nil
}

// CountByIdea runs the conditional-count aggregate across the idea's votes.
func (r *voteRepo) CountByIdea(ctx context.Context, ideaID int64) (int64, int64, error) {
	query := `
		SELECT
			COUNT(CASE WHEN vote_type = 'upvote' THEN 1 END),
			COUNT(CASE WHEN vote_type = 'downvote' THEN 1 END)
		FROM votes
		WHERE idea_id = $1
	`

	var up, down int64
	if err := r.exec.QueryRow(ctx, query, ideaID).Scan(&up, &down); err != nil {
		return 0, 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return up, down, nil
}

func (r *voteRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*votes.Vote, error) {
	query := `
		SELECT id, user_id, idea_id, vote_type, created_at
		FROM votes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.exec.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*votes.Vote
	for rows.Next() {
		var vote votes.Vote
		if err := rows.Scan(&vote.ID, &vote.UserID, &vote.IdeaID, &vote.Type, &vote.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		result = append(result, &vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return result, nil
}

// syncVoteCount re-derives the idea's denormalized vote_count from the votes
// table inside the mutation's transaction scope. The idea row is locked
// before the recount: under read committed the recount subquery runs on its
// statement's snapshot, so the recount must not start until every concurrent
// mutation on the same idea has committed. Recounting (instead of applying a
// delta) cannot drift, whatever state the ballot was in before.
func syncVoteCount(ctx context.Context, tx dialect.Executor, ideaID int64) error {
	var locked int64
	err := tx.QueryRow(ctx, `SELECT id FROM ideas WHERE id = $1 FOR UPDATE`, ideaID).Scan(&locked)
	if err != nil {
		return fmt.Errorf("failed to lock idea row: %w", err)
	}

	query := `
		UPDATE ideas
		SET vote_count = (
			SELECT COALESCE(SUM(CASE WHEN vote_type = 'upvote' THEN 1 ELSE -1 END), 0)
			FROM votes
			WHERE idea_id = $1
		)
		WHERE id = $1
	`
	if _, err := tx.Exec(ctx, query, ideaID); err != nil {
		return fmt.Errorf("failed to sync vote count: %w", err)
	}
	return nil
}
