// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mianiela22/Quote-Jar-Final/cliparse"
	"github.com/mianiela22/Quote-Jar-Final/models"
	"github.com/mianiela22/Quote-Jar-Final/session"
	"github.com/mianiela22/Quote-Jar-Final/views"
)

// genericErrorMessage is what callers see for any validation or
// infrastructure failure; details stay in the server log.
const genericErrorMessage = "Something went wrong. Please try again."

// QuoteHandler handles the quote listing and all quote mutations.
type QuoteHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	views *views.Renderer
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(db *sql.DB, cfg cliparse.Config, renderer *views.Renderer) *QuoteHandler {
	return &QuoteHandler{db: db, cfg: cfg, views: renderer}
}

// Home handles GET /home
func (h *QuoteHandler) Home(w http.ResponseWriter, r *http.Request, sess session.Session) {
	quotes, err := listQuotes(h.db, sess.UserID)
	if err != nil {
		slog.Error("failed to list quotes", "user_id", sess.UserID, "error", err)
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	h.views.Home(w, models.HomePage{
		Username: sess.Username,
		Quotes:   quotes,
	})
}

// AddQuoteForm handles GET /add-quote
func (h *QuoteHandler) AddQuoteForm(w http.ResponseWriter, r *http.Request, sess session.Session) {
	h.views.QuoteForm(w, models.QuoteFormPage{Username: sess.Username})
}

// AddQuote handles POST /add-quote
// Required fields are enforced by the store's CHECK constraints; a
// violation surfaces as the generic error page, not field-level detail.
func (h *QuoteHandler) AddQuote(w http.ResponseWriter, r *http.Request, sess session.Session) {
	if err := r.ParseForm(); err != nil {
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	quote := models.Quote{
		ID:         uuid.NewString(),
		OwnerID:    sess.UserID,
		QuoteText:  r.FormValue("quoteText"),
		PersonName: r.FormValue("personName"),
		Location:   optional(r.FormValue("location")),
		Date:       optional(r.FormValue("date")),
		CreatedAt:  time.Now(),
	}

	_, err := h.db.Exec(
		`INSERT INTO quotes (id, owner_id, quote_text, person_name, location, quote_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		quote.ID, quote.OwnerID, quote.QuoteText, quote.PersonName, quote.Location, quote.Date, quote.CreatedAt,
	)
	if err != nil {
		slog.Error("failed to insert quote", "user_id", sess.UserID, "error", err)
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	slog.Info("quote added", "quote_id", quote.ID, "user_id", sess.UserID)
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// EditQuoteForm handles GET /quotes/{id}/edit
// The owner filter makes another user's quote indistinguishable from a
// missing one: both 404.
func (h *QuoteHandler) EditQuoteForm(w http.ResponseWriter, r *http.Request, sess session.Session) {
	quoteID := r.PathValue("id")

	var quote models.Quote
	err := h.db.QueryRow(
		`SELECT id, owner_id, quote_text, person_name, location, quote_date, created_at
		 FROM quotes WHERE id = $1 AND owner_id = $2`,
		quoteID, sess.UserID,
	).Scan(&quote.ID, &quote.OwnerID, &quote.QuoteText, &quote.PersonName, &quote.Location, &quote.Date, &quote.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		h.views.Error(w, http.StatusNotFound, "That quote doesn't exist.")
		return
	}
	if err != nil {
		slog.Error("failed to fetch quote", "quote_id", quoteID, "error", err)
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	h.views.QuoteForm(w, models.QuoteFormPage{
		Username: sess.Username,
		Editing:  true,
		Quote:    quote,
	})
}

// EditQuote handles POST /quotes/{id}/edit
// Replaces every content field wholesale. A foreign or missing id
// matches zero rows and redirects anyway; the row is left untouched.
func (h *QuoteHandler) EditQuote(w http.ResponseWriter, r *http.Request, sess session.Session) {
	if err := r.ParseForm(); err != nil {
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	quoteID := r.PathValue("id")
	_, err := h.db.Exec(
		`UPDATE quotes SET quote_text = $1, person_name = $2, location = $3, quote_date = $4
		 WHERE id = $5 AND owner_id = $6`,
		r.FormValue("quoteText"), r.FormValue("personName"),
		optional(r.FormValue("location")), optional(r.FormValue("date")),
		quoteID, sess.UserID,
	)
	if err != nil {
		slog.Error("failed to update quote", "quote_id", quoteID, "user_id", sess.UserID, "error", err)
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// DeleteQuote handles POST /quotes/{id}/delete
// Same silent no-op as EditQuote when the id isn't the caller's.
func (h *QuoteHandler) DeleteQuote(w http.ResponseWriter, r *http.Request, sess session.Session) {
	quoteID := r.PathValue("id")

	_, err := h.db.Exec(
		"DELETE FROM quotes WHERE id = $1 AND owner_id = $2",
		quoteID, sess.UserID,
	)
	if err != nil {
		slog.Error("failed to delete quote", "quote_id", quoteID, "user_id", sess.UserID, "error", err)
		h.views.Error(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// listQuotes fetches every quote owned by ownerID, newest first.
func listQuotes(db *sql.DB, ownerID string) ([]models.Quote, error) {
	rows, err := db.Query(
		`SELECT id, owner_id, quote_text, person_name, location, quote_date, created_at
		 FROM quotes WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := []models.Quote{}
	for rows.Next() {
		var q models.Quote
		if err := rows.Scan(&q.ID, &q.OwnerID, &q.QuoteText, &q.PersonName, &q.Location, &q.Date, &q.CreatedAt); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// optional maps an empty form value to NULL instead of empty string.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
