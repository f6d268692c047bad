package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Ember/internal/api/handlers"
	"Ember/internal/api/middleware"
	"Ember/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// CreateCommentHandler handles comment creation
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new create comment handler
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{
		service: service,
	}
}

// HandleCreateComment attaches a comment to an idea
// POST /api/ideas/{ideaID}/comments
//
// Request body: { "body": "..." }
func (h *CreateCommentHandler) HandleCreateComment(w http.ResponseWriter, r *http.Request) {
	ideaID, err := strconv.ParseInt(chi.URLParam(r, "ideaID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid idea ID")
		return
	}

	var req comments.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	comment, err := h.service.Create(r.Context(), userID, ideaID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, comment)
}
