package idea

import (
	"net/http"
	"strconv"

	"Ember/internal/api/handlers"
	"Ember/internal/api/middleware"
	"Ember/internal/core/ideas"

	"github.com/go-chi/chi/v5"
)

// DeleteIdeaHandler handles idea deletion
type DeleteIdeaHandler struct {
	service ideas.Service
}

// NewDeleteIdeaHandler creates a new delete idea handler
func NewDeleteIdeaHandler(service ideas.Service) *DeleteIdeaHandler {
	return &DeleteIdeaHandler{
		service: service,
	}
}

// HandleDeleteIdea deletes an idea. Only the author may delete; votes and
// comments cascade away with the row.
// DELETE /api/ideas/{ideaID}
func (h *DeleteIdeaHandler) HandleDeleteIdea(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "ideaID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid idea ID")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
