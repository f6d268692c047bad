package idea

import (
	"net/http"
	"strconv"

	"Ember/internal/api/handlers"
	"Ember/internal/api/middleware"
	"Ember/internal/core/ideas"
	"Ember/internal/core/votes"

	"github.com/go-chi/chi/v5"
)

// GetIdeaHandler serves a single idea with its live vote aggregate
type GetIdeaHandler struct {
	service     ideas.Service
	voteService votes.Service
}

// NewGetIdeaHandler creates a new get idea handler
func NewGetIdeaHandler(service ideas.Service, voteService votes.Service) *GetIdeaHandler {
	return &GetIdeaHandler{
		service:     service,
		voteService: voteService,
	}
}

// HandleGetIdea returns one idea by ID together with its vote stats. When the
// caller presents a valid token the stats include their own vote.
// GET /api/ideas/{ideaID}
func (h *GetIdeaHandler) HandleGetIdea(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "ideaID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid idea ID")
		return
	}

	idea, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var userID *int64
	if uid := middleware.GetUserID(r); uid != 0 {
		userID = &uid
	}
	stats, err := h.voteService.StatsFor(r.Context(), id, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"idea":  idea,
		"stats": stats,
	})
}
