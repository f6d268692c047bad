package idea

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Ember/internal/api/handlers"
	"Ember/internal/api/middleware"
	"Ember/internal/core/ideas"

	"github.com/go-chi/chi/v5"
)

// UpdateIdeaHandler handles partial idea updates
type UpdateIdeaHandler struct {
	service ideas.Service
}

// NewUpdateIdeaHandler creates a new update idea handler
func NewUpdateIdeaHandler(service ideas.Service) *UpdateIdeaHandler {
	return &UpdateIdeaHandler{
		service: service,
	}
}

// HandleUpdateIdea updates the provided fields of an idea. Only the author
// may update; omitted fields are left untouched.
// PUT /api/ideas/{ideaID}
//
// Request body: any subset of { "title", "description", "tags", "archived" }
func (h *UpdateIdeaHandler) HandleUpdateIdea(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "ideaID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid idea ID")
		return
	}

	var req ideas.UpdateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	idea, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, idea)
}
