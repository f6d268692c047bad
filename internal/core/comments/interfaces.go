package comments

import "context"

// Service defines the business logic interface for comments
type Service interface {
	Create(ctx context.Context, authorID, ideaID int64, req CreateCommentRequest) (*Comment, error)
	ListByIdea(ctx context.Context, ideaID int64, limit, offset int) ([]*Comment, error)
	Delete(ctx context.Context, userID, commentID int64) error
}

// Repository defines the data access interface for comments
type Repository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	ListByIdea(ctx context.Context, ideaID int64, limit, offset int) ([]*Comment, error)
	Delete(ctx context.Context, id int64) error
}
