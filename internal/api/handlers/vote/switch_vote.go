package vote

import (
	"net/http"
	"strconv"

	"Ember/internal/api/handlers"
	"Ember/internal/api/middleware"
	"Ember/internal/core/votes"

	"github.com/go-chi/chi/v5"
)

// SwitchVoteHandler handles vote direction reversal
type SwitchVoteHandler struct {
	service votes.Service
}

// NewSwitchVoteHandler creates a new switch vote handler
func NewSwitchVoteHandler(service votes.Service) *SwitchVoteHandler {
	return &SwitchVoteHandler{
		service: service,
	}
}

// HandleSwitchVote flips the caller's existing vote to the opposite
// direction. Returns 404 when the caller has no vote on the idea.
// POST /api/ideas/{ideaID}/vote/switch
func (h *SwitchVoteHandler) HandleSwitchVote(w http.ResponseWriter, r *http.Request) {
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

	stats, err := h.service.Switch(r.Context(), userID, ideaID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, stats)
}
