// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/mianiela22/Quote-Jar-Final/cliparse"
	"github.com/mianiela22/Quote-Jar-Final/handlers"
	"github.com/mianiela22/Quote-Jar-Final/middleware"
	"github.com/mianiela22/Quote-Jar-Final/session"
	"github.com/mianiela22/Quote-Jar-Final/views"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sessions *session.Manager, renderer *views.Renderer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg, sessions, renderer)
	quoteHandler := handlers.NewQuoteHandler(db, cfg, renderer)
	insightsHandler := handlers.NewInsightsHandler(db, cfg, renderer)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public pages
	// "/{$}" matches the root alone; without it every unknown path
	// would fall through to the landing page instead of a 404.
	mux.HandleFunc("GET /{$}", middleware.WithLogging(authHandler.Landing))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /logout", middleware.WithLogging(authHandler.Logout))

	// Quote pages (session required)
	mux.HandleFunc("GET /home", middleware.WithLogging(middleware.RequireSession(sessions, quoteHandler.Home)))
	mux.HandleFunc("GET /add-quote", middleware.WithLogging(middleware.RequireSession(sessions, quoteHandler.AddQuoteForm)))
	mux.HandleFunc("POST /add-quote", middleware.WithLogging(middleware.RequireSession(sessions, quoteHandler.AddQuote)))
	mux.HandleFunc("GET /quotes/{id}/edit", middleware.WithLogging(middleware.RequireSession(sessions, quoteHandler.EditQuoteForm)))
	mux.HandleFunc("POST /quotes/{id}/edit", middleware.WithLogging(middleware.RequireSession(sessions, quoteHandler.EditQuote)))
	mux.HandleFunc("POST /quotes/{id}/delete", middleware.WithLogging(middleware.RequireSession(sessions, quoteHandler.DeleteQuote)))

	// Insights pages (session required)
	mux.HandleFunc("GET /stats", middleware.WithLogging(middleware.RequireSession(sessions, insightsHandler.Stats)))
	mux.HandleFunc("GET /game", middleware.WithLogging(middleware.RequireSession(sessions, insightsHandler.Game)))

	return mux
}
