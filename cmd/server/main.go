package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"Ember/internal/api/middleware"
	"Ember/internal/api/routes"
	"Ember/internal/config"
	"Ember/internal/core/comments"
	"Ember/internal/core/ideas"
	"Ember/internal/core/users"
	"Ember/internal/core/votes"
	"Ember/internal/db"
	"Ember/internal/db/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Query-level logging is too noisy for production.
	exec, err := db.Open(cfg.Database, logger, !cfg.IsProduction())
	if err != nil {
		logger.Error("failed to open database", "backend", cfg.Database.Backend, "error", err)
		os.Exit(1)
	}
	defer func() { _ = exec.Close() }()

	logger.Info("database ready", "backend", cfg.Database.Backend)

	// Repositories and services
	userRepo := store.NewUserRepository(exec)
	ideaRepo := store.NewIdeaRepository(exec)
	voteRepo := store.NewVoteRepository(exec)
	commentRepo := store.NewCommentRepository(exec)

	userService := users.NewUserService(userRepo, []byte(cfg.Auth.Secret), cfg.Auth.TokenTTL)
	ideaService := ideas.NewIdeaService(ideaRepo)
	voteService := votes.NewVoteService(voteRepo, ideaRepo)
	commentService := comments.NewCommentService(commentRepo, ideaRepo)

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Auth.Secret), logger)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(rateLimiter.Middleware)

	routes.RegisterUserRoutes(r, userService, voteService, authMiddleware)
	routes.RegisterIdeaRoutes(r, ideaService, voteService, authMiddleware)
	routes.RegisterVoteRoutes(r, voteService, authMiddleware)
	routes.RegisterCommentRoutes(r, commentService, authMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// newLogger builds the process logger: human-readable text in development,
// JSON in production.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	if cfg.IsProduction() {
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}
