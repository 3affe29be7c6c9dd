// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for Quote Jar.

# Route Registration

NewRouter creates a configured http.ServeMux with all pages wired up:

	mux := router.NewRouter(db, cfg, sessions, renderer)

# Endpoints

Health:

	GET /health

Public pages:

	GET  /{$}    - Landing/login page (redirects to /home when logged in)
	POST /login  - Claim a username and start a session
	GET  /logout - End the session

Quote pages (session required, otherwise 302 to /):

	GET  /home                - List the caller's quotes, newest first
	GET  /add-quote           - Creation form
	POST /add-quote           - Create quote
	GET  /quotes/{id}/edit    - Edit form (404 if not the caller's)
	POST /quotes/{id}/edit    - Update quote (no-op if not the caller's)
	POST /quotes/{id}/delete  - Delete quote (no-op if not the caller's)

Insights pages (session required):

	GET /stats - Quote statistics
	GET /game  - Who-said-it quiz

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(db, cfg, sessions, renderer)
	quoteHandler := handlers.NewQuoteHandler(db, cfg, renderer)
	insightsHandler := handlers.NewInsightsHandler(db, cfg, renderer)

Guarded routes are wrapped in middleware.RequireSession, which resolves
the session cookie before the handler runs.
*/
package router
