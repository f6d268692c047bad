package ideas

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 20000
	maxTags           = 5
	maxTagLen         = 40
)

type ideaService struct {
	repo Repository
}

// NewIdeaService creates a new idea service
func NewIdeaService(repo Repository) Service {
	return &ideaService{repo: repo}
}

func (s *ideaService) Create(ctx context.Context, authorID int64, req CreateIdeaRequest) (*Idea, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, NewValidationError("title", "required")
	}
	if len(title) > maxTitleLen {
		return nil, NewValidationError("title", fmt.Sprintf("must be at most %d characters", maxTitleLen))
	}
	if len(req.Description) > maxDescriptionLen {
		return nil, NewValidationError("description", "too long")
	}
	tags, err := normalizeTags(req.Tags)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	idea := &Idea{
		Title:       title,
		Description: req.Description,
		AuthorID:    authorID,
		Tags:        tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}

	idea.DescriptionHTML = renderDescription(idea.Description)
	return idea, nil
}

func (s *ideaService) Get(ctx context.Context, id int64) (*Idea, error) {
	idea, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	idea.DescriptionHTML = renderDescription(idea.Description)
	return idea, nil
}

func (s *ideaService) List(ctx context.Context, req ListRequest) ([]*Idea, error) {
	switch req.Sort {
	case "", "newest", "oldest", "votes":
	default:
		return nil, ErrInvalidSort
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 25
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	list, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	for _, idea := range list {
		idea.DescriptionHTML = renderDescription(idea.Description)
	}
	return list, nil
}

func (s *ideaService) Update(ctx context.Context, userID, id int64, req UpdateIdeaRequest) (*Idea, error) {
	idea, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if idea.AuthorID != userID {
		return nil, ErrNotAuthor
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, NewValidationError("title", "required")
		}
		if len(title) > maxTitleLen {
			return nil, NewValidationError("title", fmt.Sprintf("must be at most %d characters", maxTitleLen))
		}
		idea.Title = title
	}
	if req.Description != nil {
		if len(*req.Description) > maxDescriptionLen {
			return nil, NewValidationError("description", "too long")
		}
		idea.Description = *req.Description
	}
	if req.Tags != nil {
		tags, err := normalizeTags(*req.Tags)
		if err != nil {
			return nil, err
		}
		idea.Tags = tags
	}
	if req.Archived != nil {
		idea.Archived = *req.Archived
	}
	idea.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}

	idea.DescriptionHTML = renderDescription(idea.Description)
	return idea, nil
}

func (s *ideaService) Delete(ctx context.Context, userID, id int64) error {
	idea, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if idea.AuthorID != userID {
		return ErrNotAuthor
	}
	return s.repo.Delete(ctx, id)
}

func normalizeTags(tags []string) ([]string, error) {
	if len(tags) > maxTags {
		return nil, NewValidationError("tags", fmt.Sprintf("at most %d tags allowed", maxTags))
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if len(t) > maxTagLen {
			return nil, NewValidationError("tags", "tag too long")
		}
		if strings.Contains(t, ",") {
			// Commas would corrupt the serialized tag list.
			return nil, NewValidationError("tags", "tags may not contain commas")
		}
		out = append(out, t)
	}
	return out, nil
}

// ValidationError reports a rejected request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
