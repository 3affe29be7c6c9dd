// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Session Guard

Keep a page behind login:

	mux.HandleFunc("GET /home", middleware.WithLogging(
		middleware.RequireSession(sessions, quoteHandler.Home)))

RequireSession resolves the session cookie and hands the session to the
wrapped SessionHandler. Requests without a valid session get a 302 to
the login page - these are browser pages, so a redirect beats a 401.
*/
package middleware
