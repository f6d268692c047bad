package routes

import (
	"Ember/internal/api/handlers/comment"
	"Ember/internal/api/middleware"
	"Ember/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment endpoints on the router
func RegisterCommentRoutes(r chi.Router, service comments.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := comment.NewCreateCommentHandler(service)
	listHandler := comment.NewListCommentsHandler(service)
	deleteHandler := comment.NewDeleteCommentHandler(service)

	r.Get("/api/ideas/{ideaID}/comments", listHandler.HandleListComments)

	r.With(authMiddleware.RequireAuth).Post("/api/ideas/{ideaID}/comments", createHandler.HandleCreateComment)
	r.With(authMiddleware.RequireAuth).Delete("/api/comments/{commentID}", deleteHandler.HandleDeleteComment)
}
