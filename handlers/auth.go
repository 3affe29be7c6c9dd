// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mianiela22/Quote-Jar-Final/cliparse"
	"github.com/mianiela22/Quote-Jar-Final/models"
	"github.com/mianiela22/Quote-Jar-Final/session"
	"github.com/mianiela22/Quote-Jar-Final/views"
)

// AuthHandler handles login, logout, and the landing page.
type AuthHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *session.Manager
	views    *views.Renderer
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *sql.DB, cfg cliparse.Config, sessions *session.Manager, renderer *views.Renderer) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, sessions: sessions, views: renderer}
}

// Landing handles GET /
// Already logged-in visitors go straight to their jar.
func (h *AuthHandler) Landing(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.FromRequest(r); ok {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}
	h.views.Landing(w)
}

// Login handles POST /login
// Finds or creates the user for the submitted username, then starts a
// session. No password: whoever types a username owns it.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	if username == "" {
		// Nothing to claim; bounce back to the login form.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	user, err := h.findOrCreateUser(username)
	if err != nil {
		slog.Error("failed to find or create user", "username", username, "error", err)
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	if _, err := h.sessions.Start(w, user.ID, user.Username); err != nil {
		slog.Error("failed to start session", "user_id", user.ID, "error", err)
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// Logout handles GET /logout
// Tolerates visitors with no session; either way they end up on the
// landing page with no usable cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

// findOrCreateUser looks a user up by exact username and creates one on
// first sight.
func (h *AuthHandler) findOrCreateUser(username string) (models.User, error) {
	var user models.User
	err := h.db.QueryRow(
		"SELECT id, username, created_at FROM users WHERE username = $1",
		username,
	).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.User{}, err
	}

	user = models.User{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: time.Now(),
	}
	_, err = h.db.Exec(
		"INSERT INTO users (id, username, created_at) VALUES ($1, $2, $3)",
		user.ID, user.Username, user.CreatedAt,
	)
	if err == nil {
		return user, nil
	}

	// A concurrent login may have claimed the username first; the unique
	// constraint makes this insert lose, so take the winner's row.
	retryErr := h.db.QueryRow(
		"SELECT id, username, created_at FROM users WHERE username = $1",
		username,
	).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if retryErr != nil {
		return models.User{}, err
	}
	return user, nil
}
