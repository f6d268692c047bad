package routes

import (
	"Ember/internal/api/handlers/user"
	"Ember/internal/api/handlers/vote"
	"Ember/internal/api/middleware"
	"Ember/internal/core/users"
	"Ember/internal/core/votes"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers account and profile endpoints on the router
func RegisterUserRoutes(r chi.Router, userService users.Service, voteService votes.Service, authMiddleware *middleware.AuthMiddleware) {
	registerHandler := user.NewRegisterHandler(userService)
	loginHandler := user.NewLoginHandler(userService)
	meHandler := user.NewMeHandler(userService)
	listVotesHandler := vote.NewListVotesHandler(voteService)

	// Public endpoints
	r.Post("/api/auth/register", registerHandler.HandleRegister)
	r.Post("/api/auth/login", loginHandler.HandleLogin)

	// Authenticated endpoints
	r.With(authMiddleware.RequireAuth).Get("/api/users/me", meHandler.HandleMe)
	r.With(authMiddleware.RequireAuth).Get("/api/users/me/votes", listVotesHandler.HandleListVotes)
}
