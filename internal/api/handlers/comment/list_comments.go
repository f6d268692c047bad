package comment

import (
	"net/http"
	"strconv"

	"Ember/internal/api/handlers"
	"Ember/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// ListCommentsHandler serves an idea's comment thread
type ListCommentsHandler struct {
	service comments.Service
}

// NewListCommentsHandler creates a new list comments handler
func NewListCommentsHandler(service comments.Service) *ListCommentsHandler {
	return &ListCommentsHandler{
		service: service,
	}
}

// HandleListComments returns an idea's comments, oldest first
// GET /api/ideas/{ideaID}/comments?limit=50&offset=0
func (h *ListCommentsHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	ideaID, err := strconv.ParseInt(chi.URLParam(r, "ideaID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid idea ID")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.service.ListByIdea(r.Context(), ideaID, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if list == nil {
		list = []*comments.Comment{}
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"comments": list,
	})
}
