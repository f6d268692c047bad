package user

import (
	"net/http"

	"Ember/internal/api/handlers"
	"Ember/internal/api/middleware"
	"Ember/internal/core/users"
)

// MeHandler returns the authenticated user's profile
type MeHandler struct {
	service users.Service
}

// NewMeHandler creates a new me handler
func NewMeHandler(service users.Service) *MeHandler {
	return &MeHandler{
		service: service,
	}
}

// HandleMe returns the caller's own profile
// GET /api/users/me
func (h *MeHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, user)
}
