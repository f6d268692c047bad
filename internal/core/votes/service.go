package votes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Ember/internal/core/ideas"
)

type voteService struct {
	repo     Repository
	ideaRepo ideas.Repository
}

// NewVoteService creates a new vote service
func NewVoteService(repo Repository, ideaRepo ideas.Repository) Service {
	return &voteService{
		repo:     repo,
		ideaRepo: ideaRepo,
	}
}

// Cast records or overwrites the caller's vote.
// Storage does the heavy lifting atomically (conflict-aware upsert); this
// layer enforces the rules the ledger itself doesn't own: the idea must
// exist and authors cannot vote on their own ideas.
func (s *voteService) Cast(ctx context.Context, userID, ideaID int64, voteType VoteType) (*Stats, error) {
	if !voteType.Valid() {
		return nil, ErrInvalidVoteType
	}

	if err := s.checkVotable(ctx, userID, ideaID); err != nil {
		return nil, err
	}

	vote := &Vote{
		UserID:    userID,
		IdeaID:    ideaID,
		Type:      voteType,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Cast(ctx, vote); err != nil {
		return nil, fmt.Errorf("failed to cast vote: %w", err)
	}

	return s.StatsFor(ctx, ideaID, &userID)
}

// Switch flips the caller's existing vote to the opposite direction.
func (s *voteService) Switch(ctx context.Context, userID, ideaID int64) (*Stats, error) {
	if err := s.checkVotable(ctx, userID, ideaID); err != nil {
		return nil, err
	}

	if _, err := s.repo.Switch(ctx, userID, ideaID); err != nil {
		if errors.Is(err, ErrVoteNotFound) {
			return nil, ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to switch vote: %w", err)
	}

	return s.StatsFor(ctx, ideaID, &userID)
}

// Remove deletes the caller's vote.
func (s *voteService) Remove(ctx context.Context, userID, ideaID int64) (*Stats, error) {
	if err := s.checkIdeaExists(ctx, ideaID); err != nil {
		return nil, err
	}

	if err := s.repo.Remove(ctx, userID, ideaID); err != nil {
		if errors.Is(err, ErrVoteNotFound) {
			return nil, ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to remove vote: %w", err)
	}

	return s.StatsFor(ctx, ideaID, &userID)
}

// StatsFor recomputes the aggregate from the votes table. Never cached:
// reads and writes hit the same database, so the count is always live.
func (s *voteService) StatsFor(ctx context.Context, ideaID int64, userID *int64) (*Stats, error) {
	if err := s.checkIdeaExists(ctx, ideaID); err != nil {
		return nil, err
	}

	up, down, err := s.repo.CountByIdea(ctx, ideaID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	stats := &Stats{
		Upvotes:   up,
		Downvotes: down,
		Total:     up - down,
	}

	if userID != nil {
		vote, err := s.repo.GetByUserAndIdea(ctx, *userID, ideaID)
		switch {
		case err == nil:
			t := vote.Type
			stats.UserVote = &t
		case errors.Is(err, ErrVoteNotFound):
			// Anonymous state: UserVote stays nil.
		default:
			return nil, fmt.Errorf("failed to look up user vote: %w", err)
		}
	}

	return stats, nil
}

func (s *voteService) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*Vote, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// checkVotable fails fast when the idea is missing or owned by the caller.
func (s *voteService) checkVotable(ctx context.Context, userID, ideaID int64) error {
	idea, err := s.ideaRepo.GetByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, ideas.ErrIdeaNotFound) {
			return ErrIdeaNotFound
		}
		return fmt.Errorf("failed to load idea: %w", err)
	}
	if idea.AuthorID == userID {
		return ErrSelfVote
	}
	return nil
}

func (s *voteService) checkIdeaExists(ctx context.Context, ideaID int64) error {
	if _, err := s.ideaRepo.GetByID(ctx, ideaID); err != nil {
		if errors.Is(err, ideas.ErrIdeaNotFound) {
			return ErrIdeaNotFound
		}
		return fmt.Errorf("failed to load idea: %w", err)
	}
	return nil
}
