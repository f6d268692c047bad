package vote

import (
	"net/http"
	"strconv"

	"Ember/internal/api/handlers"
	"Ember/internal/api/middleware"
	"Ember/internal/core/votes"
)

// ListVotesHandler serves the caller's voting history
type ListVotesHandler struct {
	service votes.Service
}

// NewListVotesHandler creates a new list votes handler
func NewListVotesHandler(service votes.Service) *ListVotesHandler {
	return &ListVotesHandler{
		service: service,
	}
}

// HandleListVotes returns the caller's votes, newest first
// GET /api/users/me/votes?limit=50&offset=0
func (h *ListVotesHandler) HandleListVotes(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.service.ListByUser(r.Context(), userID, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if list == nil {
		list = []*votes.Vote{}
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"votes": list,
	})
}
