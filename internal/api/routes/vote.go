package routes

import (
	"Ember/internal/api/handlers/vote"
	"Ember/internal/api/middleware"
	"Ember/internal/core/votes"

	"github.com/go-chi/chi/v5"
)

// RegisterVoteRoutes registers voting endpoints on the router.
// Stats reads are public but enrich the response with the caller's own vote
// when a valid token is presented.
func RegisterVoteRoutes(r chi.Router, service votes.Service, authMiddleware *middleware.AuthMiddleware) {
	castHandler := vote.NewCastVoteHandler(service)
	switchHandler := vote.NewSwitchVoteHandler(service)
	removeHandler := vote.NewRemoveVoteHandler(service)
	statsHandler := vote.NewStatsHandler(service)

	r.With(authMiddleware.OptionalAuth).Get("/api/ideas/{ideaID}/vote", statsHandler.HandleStats)

	r.With(authMiddleware.RequireAuth).Put("/api/ideas/{ideaID}/vote", castHandler.HandleCastVote)
	r.With(authMiddleware.RequireAuth).Post("/api/ideas/{ideaID}/vote/switch", switchHandler.HandleSwitchVote)
	r.With(authMiddleware.RequireAuth).Delete("/api/ideas/{ideaID}/vote", removeHandler.HandleRemoveVote)
}
