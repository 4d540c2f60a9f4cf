package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/worstfriend/overseerr/config"
	"github.com/worstfriend/overseerr/database"
	"github.com/worstfriend/overseerr/handlers"
	"github.com/worstfriend/overseerr/logger"
	"github.com/worstfriend/overseerr/middleware"
	"github.com/worstfriend/overseerr/permissions"
	"github.com/worstfriend/overseerr/services"

	"github.com/go-chi/chi/v5"
)

func buildRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging)

	// Static files
	fs := http.FileServer(http.Dir("static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	// Public routes
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	r.HandleFunc("/login", handlers.LoginHandler)
	r.HandleFunc("/register", handlers.RegisterHandler)
	r.HandleFunc("/logout", handlers.LogoutHandler)

	// Protected pages
	r.With(middleware.RequireAuth).Get("/issues", handlers.IssuesPageHandler)
	r.With(middleware.RequireAuth).Get("/issues/details", handlers.IssueDetailsPageHandler)

	// JSON API
	anyIssuePerm := middleware.RequirePermission([]permissions.Permission{
		permissions.ManageIssues,
		permissions.ViewIssues,
		permissions.CreateIssues,
	}, permissions.CheckOr)
	createIssuePerm := middleware.RequirePermission([]permissions.Permission{
		permissions.ManageIssues,
		permissions.CreateIssues,
	}, permissions.CheckOr)
	manageIssuePerm := middleware.RequirePermission([]permissions.Permission{
		permissions.ManageIssues,
	}, permissions.CheckOr)
	anyUserPerm := middleware.RequirePermission(nil, permissions.CheckOr)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/issue", func(r chi.Router) {
			r.With(anyIssuePerm).Get("/", handlers.ListIssuesHandler)
			r.With(createIssuePerm).Post("/", handlers.CreateIssueHandler)
			r.With(anyIssuePerm).Get("/{issueId}", handlers.GetIssueHandler)
			r.With(createIssuePerm).Post("/{issueId}/comment", handlers.CreateIssueCommentHandler)
			r.With(manageIssuePerm).Post("/{issueId}/{status}", handlers.UpdateIssueStatusHandler)
		})
		r.With(createIssuePerm).Put("/issueComment/{commentId}", handlers.UpdateIssueCommentHandler)
		r.With(anyUserPerm).Get("/movie/{tmdbId}", handlers.MovieDetailsHandler)
		r.With(anyUserPerm).Get("/tv/{tmdbId}", handlers.TvDetailsHandler)
	})

	// Root redirect
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/issues", http.StatusSeeOther)
	})

	return r
}

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(cfg.Environment, cfg.Debug)

	slog.Info("Initializing Overseerr components...")

	// Initialize session store
	services.InitSessionStore(cfg)
	handlers.InitConfig(cfg)

	// Parse page templates
	if err := handlers.InitTemplates(); err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Seed admin user
	if err := database.SeedAdminUser(cfg); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	// Seed starter media
	if err := database.SeedDefaultMedia(); err != nil {
		log.Fatal("Failed to seed media:", err)
	}

	addr := ":" + cfg.ServerPort
	slog.Info("Overseerr is starting", "addr", addr, "env", cfg.Environment, "debug", cfg.Debug)

	if err := http.ListenAndServe(addr, buildRouter()); err != nil {
		log.Fatalf("FATAL: Server failed to start: %v", err)
	}
}
