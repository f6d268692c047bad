package idea

import (
	"net/http"
	"strconv"

	"Ember/internal/api/handlers"
	"Ember/internal/core/ideas"
)

// ListIdeasHandler serves the filtered, sorted idea listing
type ListIdeasHandler struct {
	service ideas.Service
}

// NewListIdeasHandler creates a new list ideas handler
func NewListIdeasHandler(service ideas.Service) *ListIdeasHandler {
	return &ListIdeasHandler{
		service: service,
	}
}

// HandleListIdeas returns ideas filtered by tag and sorted by the requested
// order. Archived ideas are hidden unless includeArchived=true.
// GET /api/ideas?tag=...&sort=votes&limit=25&offset=0&includeArchived=false
func (h *ListIdeasHandler) HandleListIdeas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	includeArchived, _ := strconv.ParseBool(q.Get("includeArchived"))

	req := ideas.ListRequest{
		Tag:             q.Get("tag"),
		Sort:            q.Get("sort"),
		IncludeArchived: includeArchived,
		Limit:           limit,
		Offset:          offset,
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if list == nil {
		list = []*ideas.Idea{}
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ideas": list,
	})
}
