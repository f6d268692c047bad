package comments

import "time"

// Comment is a reply attached to an idea. Rows cascade away with their idea
// or author.
type Comment struct {
	ID        int64     `json:"id"`
	IdeaID    int64     `json:"ideaId"`
	AuthorID  int64     `json:"authorId"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCommentRequest carries validated handler input into the service.
type CreateCommentRequest struct {
	Body string `json:"body"`
}
