// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mianiela22/Quote-Jar-Final/session"
)

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Log request
		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		// Call the next handler
		next(w, r)

		// Log completion
		duration := time.Since(start)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// SessionHandler is a handler that additionally receives the resolved
// login session.
type SessionHandler func(w http.ResponseWriter, r *http.Request, sess session.Session)

// RequireSession guards a page behind a valid session. Requests without
// one are redirected to the login page rather than answered with 401;
// every guarded route here is a browser-facing HTML page.
func RequireSession(sessions *session.Manager, next SessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessions.FromRequest(r)
		if !ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next(w, r, sess)
	}
}
