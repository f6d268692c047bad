package vote

import (
	"net/http"
	"strconv"

	"Ember/internal/api/handlers"
	"Ember/internal/api/middleware"
	"Ember/internal/core/votes"

	"github.com/go-chi/chi/v5"
)

// StatsHandler serves the live vote aggregate for an idea
type StatsHandler struct {
	service votes.Service
}

// NewStatsHandler creates a new vote stats handler
func NewStatsHandler(service votes.Service) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// HandleStats computes upvotes, downvotes, total and the caller's own vote.
// Counts are always computed from the votes table, never cached.
// GET /api/ideas/{ideaID}/vote
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ideaID, err := strconv.ParseInt(chi.URLParam(r, "ideaID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid idea ID")
		return
	}

	// Anonymous callers get stats without the userVote field.
	var userID *int64
	if id := middleware.GetUserID(r); id != 0 {
		userID = &id
	}

	stats, err := h.service.StatsFor(r.Context(), ideaID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, stats)
}
