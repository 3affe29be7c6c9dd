// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mianiela22/Quote-Jar-Final/cliparse"
	"github.com/mianiela22/Quote-Jar-Final/models"
	"github.com/mianiela22/Quote-Jar-Final/session"
	"github.com/mianiela22/Quote-Jar-Final/views"
)

// InsightsHandler serves the stats and game pages. Both hand the user's
// full quote set to the browser and let client-side code do the rest.
type InsightsHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	views *views.Renderer
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(db *sql.DB, cfg cliparse.Config, renderer *views.Renderer) *InsightsHandler {
	return &InsightsHandler{db: db, cfg: cfg, views: renderer}
}

// Stats handles GET /stats
func (h *InsightsHandler) Stats(w http.ResponseWriter, r *http.Request, sess session.Session) {
	quotes, err := listQuotes(h.db, sess.UserID)
	if err != nil {
		slog.Error("failed to list quotes", "user_id", sess.UserID, "error", err)
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	payload, err := json.Marshal(quotes)
	if err != nil {
		slog.Error("failed to marshal quotes", "user_id", sess.UserID, "error", err)
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	h.views.Stats(w, models.StatsPage{
		Username:   sess.Username,
		QuoteCount: len(quotes),
		QuotesJSON: template.JS(payload),
	})
}

// Game handles GET /game
// The quiz needs at least two quotes to have a wrong answer to offer;
// below that the page renders an insufficiency notice instead.
func (h *InsightsHandler) Game(w http.ResponseWriter, r *http.Request, sess session.Session) {
	quotes, err := listQuotes(h.db, sess.UserID)
	if err != nil {
		slog.Error("failed to list quotes", "user_id", sess.UserID, "error", err)
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	page := models.GamePage{
		Username:   sess.Username,
		QuoteCount: len(quotes),
		Ready:      len(quotes) >= 2,
	}
	if page.Ready {
		payload, err := json.Marshal(quotes)
		if err != nil {
			slog.Error("failed to marshal quotes", "user_id", sess.UserID, "error", err)
			h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
			return
		}
		page.QuotesJSON = template.JS(payload)
	}

	h.views.Game(w, page)
}
