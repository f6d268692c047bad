package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrIdeaNotFound indicates the idea being commented on doesn't exist
	ErrIdeaNotFound = errors.New("idea not found")

	// ErrNotAuthor indicates a delete attempted by someone other than the comment's author
	ErrNotAuthor = errors.New("only the author can delete this comment")

	// ErrEmptyBody indicates a comment with no content
	ErrEmptyBody = errors.New("comment body is required")
)
