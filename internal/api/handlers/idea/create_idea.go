package idea

import (
	"encoding/json"
	"net/http"

	"Ember/internal/api/handlers"
	"Ember/internal/api/middleware"
	"Ember/internal/core/ideas"
)

// CreateIdeaHandler handles idea creation
type CreateIdeaHandler struct {
	service ideas.Service
}

// NewCreateIdeaHandler creates a new create idea handler
func NewCreateIdeaHandler(service ideas.Service) *CreateIdeaHandler {
	return &CreateIdeaHandler{
		service: service,
	}
}

// HandleCreateIdea creates a new idea
// POST /api/ideas
//
// Request body: { "title": "...", "description": "...", "tags": ["..."] }
func (h *CreateIdeaHandler) HandleCreateIdea(w http.ResponseWriter, r *http.Request) {
	var req ideas.CreateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	idea, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, idea)
}
