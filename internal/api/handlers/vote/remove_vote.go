package vote

import (
	"net/http"
	"strconv"

	"Ember/internal/api/handlers"
	"Ember/internal/api/middleware"
	"Ember/internal/core/votes"

	"github.com/go-chi/chi/v5"
)

// RemoveVoteHandler handles vote removal
type RemoveVoteHandler struct {
	service votes.Service
}

// NewRemoveVoteHandler creates a new remove vote handler
func NewRemoveVoteHandler(service votes.Service) *RemoveVoteHandler {
	return &RemoveVoteHandler{
		service: service,
	}
}

// HandleRemoveVote deletes the caller's vote from an idea.
// DELETE /api/ideas/{ideaID}/vote
func (h *RemoveVoteHandler) HandleRemoveVote(w http.ResponseWriter, r *http.Request) {
	ideaID, err := strconv.ParseInt(chi.URLParam(r, "ideaID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid idea ID")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	stats, err := h.service.Remove(r.Context(), userID, ideaID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, stats)
}
