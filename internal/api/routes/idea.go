package routes

import (
	"Ember/internal/api/handlers/idea"
	"Ember/internal/api/middleware"
	"Ember/internal/core/ideas"
	"Ember/internal/core/votes"

	"github.com/go-chi/chi/v5"
)

// RegisterIdeaRoutes registers idea CRUD endpoints on the router.
// The single-idea read carries vote stats, so it takes the vote service and
// optional auth to resolve the caller's own vote.
func RegisterIdeaRoutes(r chi.Router, service ideas.Service, voteService votes.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := idea.NewCreateIdeaHandler(service)
	getHandler := idea.NewGetIdeaHandler(service, voteService)
	listHandler := idea.NewListIdeasHandler(service)
	updateHandler := idea.NewUpdateIdeaHandler(service)
	deleteHandler := idea.NewDeleteIdeaHandler(service)

	// Public read endpoints
	r.Get("/api/ideas", listHandler.HandleListIdeas)
	r.With(authMiddleware.OptionalAuth).Get("/api/ideas/{ideaID}", getHandler.HandleGetIdea)

	// Authenticated write endpoints
	r.With(authMiddleware.RequireAuth).Post("/api/ideas", createHandler.HandleCreateIdea)
	r.With(authMiddleware.RequireAuth).Put("/api/ideas/{ideaID}", updateHandler.HandleUpdateIdea)
	r.With(authMiddleware.RequireAuth).Delete("/api/ideas/{ideaID}", deleteHandler.HandleDeleteIdea)
}
