package ideas

import "errors"

var (
	// ErrIdeaNotFound indicates the requested idea doesn't exist
	ErrIdeaNotFound = errors.New("idea not found")

	// ErrNotAuthor indicates a mutation attempted by someone other than the idea's author
	ErrNotAuthor = errors.New("only the author can modify this idea")

	// ErrInvalidSort indicates an unrecognized sort key
	ErrInvalidSort = errors.New("invalid sort: must be 'votes', 'newest' or 'oldest'")
)
