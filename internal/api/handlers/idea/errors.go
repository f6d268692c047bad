package idea

import (
	"errors"
	"log"
	"net/http"

	"Ember/internal/api/handlers"
	"Ember/internal/core/ideas"
	"Ember/internal/core/votes"
)

// handleServiceError converts idea service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *ideas.ValidationError
	switch {
	case errors.As(err, &validationErr):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", validationErr.Error())
	case errors.Is(err, ideas.ErrIdeaNotFound), errors.Is(err, votes.ErrIdeaNotFound):
		handlers.WriteError(w, http.StatusNotFound, "IdeaNotFound", "Idea not found")
	case errors.Is(err, ideas.ErrNotAuthor):
		handlers.WriteError(w, http.StatusForbidden, "NotAuthor", "Only the author can modify this idea")
	case errors.Is(err, ideas.ErrInvalidSort):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "sort must be 'votes', 'newest' or 'oldest'")
	default:
		log.Printf("Idea handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
