package vote

import (
	"errors"
	"log"
	"net/http"

	"Ember/internal/api/handlers"
	"Ember/internal/core/votes"
)

// handleServiceError converts vote service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, votes.ErrVoteNotFound):
		handlers.WriteError(w, http.StatusNotFound, "VoteNotFound", "No vote found for this idea")
	case errors.Is(err, votes.ErrIdeaNotFound):
		handlers.WriteError(w, http.StatusNotFound, "IdeaNotFound", "Idea not found")
	case errors.Is(err, votes.ErrInvalidVoteType):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "voteType must be 'upvote' or 'downvote'")
	case errors.Is(err, votes.ErrSelfVote):
		handlers.WriteError(w, http.StatusForbidden, "SelfVote", "Authors cannot vote on their own ideas")
	default:
		log.Printf("Vote handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
