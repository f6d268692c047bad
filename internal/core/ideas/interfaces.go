package ideas

import "context"

// Service defines the business logic interface for ideas
type Service interface {
	Create(ctx context.Context, authorID int64, req CreateIdeaRequest) (*Idea, error)
	Get(ctx context.Context, id int64) (*Idea, error)
	List(ctx context.Context, req ListRequest) ([]*Idea, error)
	Update(ctx context.Context, userID, id int64, req UpdateIdeaRequest) (*Idea, error)
	Delete(ctx context.Context, userID, id int64) error
}

// Repository defines the data access interface for ideas
type Repository interface {
	Create(ctx context.Context, idea *Idea) error
	GetByID(ctx context.Context, id int64) (*Idea, error)
	List(ctx context.Context, req ListRequest) ([]*Idea, error)
	Update(ctx context.Context, idea *Idea) error
	Delete(ctx context.Context, id int64) error
}
