package comment

import (
	"errors"
	"log"
	"net/http"

	"Ember/internal/api/handlers"
	"Ember/internal/core/comments"
)

// handleServiceError converts comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, comments.ErrCommentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case errors.Is(err, comments.ErrIdeaNotFound):
		handlers.WriteError(w, http.StatusNotFound, "IdeaNotFound", "Idea not found")
	case errors.Is(err, comments.ErrEmptyBody):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment body is required")
	case errors.Is(err, comments.ErrNotAuthor):
		handlers.WriteError(w, http.StatusForbidden, "NotAuthor", "Only the author can delete this comment")
	default:
		log.Printf("Comment handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
