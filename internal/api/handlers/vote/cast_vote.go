package vote

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Ember/internal/api/handlers"
	"Ember/internal/api/middleware"
	"Ember/internal/core/votes"

	"github.com/go-chi/chi/v5"
)

// CastVoteHandler handles vote casting
type CastVoteHandler struct {
	service votes.Service
}

// NewCastVoteHandler creates a new cast vote handler
func NewCastVoteHandler(service votes.Service) *CastVoteHandler {
	return &CastVoteHandler{
		service: service,
	}
}

// HandleCastVote records or overwrites the caller's vote on an idea.
// Casting is idempotent: re-sending the same direction leaves one ballot.
// PUT /api/ideas/{ideaID}/vote
//
// Request body: { "voteType": "upvote" | "downvote" }
func (h *CastVoteHandler) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	ideaID, err := strconv.ParseInt(chi.URLParam(r, "ideaID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid idea ID")
		return
	}

	var req struct {
		VoteType votes.VoteType `json:"voteType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if !req.VoteType.Valid() {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "voteType must be 'upvote' or 'downvote'")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	stats, err := h.service.Cast(r.Context(), userID, ideaID, req.VoteType)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, stats)
}
