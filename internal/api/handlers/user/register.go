package user

import (
	"encoding/json"
	"net/http"

	"Ember/internal/api/handlers"
	"Ember/internal/core/users"
)

// RegisterHandler handles account creation
type RegisterHandler struct {
	service users.Service
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(service users.Service) *RegisterHandler {
	return &RegisterHandler{
		service: service,
	}
}

// HandleRegister creates a new account
// POST /api/auth/register
//
// Request body: { "username": "...", "email": "...", "password": "..." }
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, user)
}
