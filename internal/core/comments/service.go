package comments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Ember/internal/core/ideas"
)

const maxBodyLen = 10000

type commentService struct {
	repo     Repository
	ideaRepo ideas.Repository
}

// NewCommentService creates a new comment service
func NewCommentService(repo Repository, ideaRepo ideas.Repository) Service {
	return &commentService{
		repo:     repo,
		ideaRepo: ideaRepo,
	}
}

func (s *commentService) Create(ctx context.Context, authorID, ideaID int64, req CreateCommentRequest) (*Comment, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	if len(body) > maxBodyLen {
		return nil, fmt.Errorf("comment body exceeds %d characters", maxBodyLen)
	}

	// Fail fast on missing ideas rather than relying on the FK error.
	if _, err := s.ideaRepo.GetByID(ctx, ideaID); err != nil {
		if errors.Is(err, ideas.ErrIdeaNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to load idea: %w", err)
	}

	now := time.Now().UTC()
	comment := &Comment{
		IdeaID:    ideaID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) ListByIdea(ctx context.Context, ideaID int64, limit, offset int) ([]*Comment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	if _, err := s.ideaRepo.GetByID(ctx, ideaID); err != nil {
		if errors.Is(err, ideas.ErrIdeaNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to load idea: %w", err)
	}

	return s.repo.ListByIdea(ctx, ideaID, limit, offset)
}

func (s *commentService) Delete(ctx context.Context, userID, commentID int64) error {
	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		return ErrNotAuthor
	}
	return s.repo.Delete(ctx, commentID)
}
