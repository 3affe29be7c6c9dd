// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mianiela22/Quote-Jar-Final/models"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	renderer, err := New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return renderer
}

func strptr(s string) *string {
	return &s
}

func TestNew(t *testing.T) {
	if _, err := New(); err != nil {
		t.Fatalf("Expected templates to parse, got: %v", err)
	}
}

func TestLanding(t *testing.T) {
	renderer := newTestRenderer(t)

	w := httptest.NewRecorder()
	renderer.Landing(w)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Expected HTML content type, got '%s'", ct)
	}

	body := w.Body.String()
	if !strings.Contains(body, `action="/login"`) {
		t.Error("Expected landing page to contain the login form")
	}
	if !strings.Contains(body, `name="username"`) {
		t.Error("Expected landing page to contain the username field")
	}
}

func TestHome(t *testing.T) {
	renderer := newTestRenderer(t)

	data := models.HomePage{
		Username: "alice",
		Quotes: []models.Quote{
			{
				ID:         "q1",
				QuoteText:  "I never said half the things I said",
				PersonName: "Yogi",
				Location:   strptr("the dugout"),
				Date:       strptr("1998"),
				CreatedAt:  time.Now().Add(-time.Hour),
			},
			{
				ID:         "q2",
				QuoteText:  "Just ship it",
				PersonName: "Dana",
				CreatedAt:  time.Now(),
			},
		},
	}

	w := httptest.NewRecorder()
	renderer.Home(w, data)

	body := w.Body.String()
	if !strings.Contains(body, "alice") {
		t.Error("Expected username on page")
	}
	if !strings.Contains(body, "I never said half the things I said") {
		t.Error("Expected quote text on page")
	}
	if !strings.Contains(body, "the dugout") {
		t.Error("Expected location on page")
	}
	if !strings.Contains(body, "(1998)") {
		t.Error("Expected date on page")
	}
	if !strings.Contains(body, "/quotes/q1/edit") {
		t.Error("Expected edit link for the quote")
	}
	if !strings.Contains(body, "/quotes/q2/delete") {
		t.Error("Expected delete form for the quote")
	}
	if !strings.Contains(body, "hour ago") {
		t.Error("Expected relative timestamp on page")
	}
}

func TestHome_OptionalFieldsOmitted(t *testing.T) {
	renderer := newTestRenderer(t)

	data := models.HomePage{
		Username: "alice",
		Quotes: []models.Quote{
			{ID: "q1", QuoteText: "Just ship it", PersonName: "Dana", CreatedAt: time.Now()},
		},
	}

	w := httptest.NewRecorder()
	renderer.Home(w, data)

	body := w.Body.String()
	// A nil location must not render a dangling comma after the name.
	if strings.Contains(body, "Dana,") {
		t.Error("Expected no location separator for a quote without one")
	}
	if strings.Contains(body, "()") {
		t.Error("Expected no empty parentheses for a quote without a date")
	}
}

func TestHome_EmptyJar(t *testing.T) {
	renderer := newTestRenderer(t)

	w := httptest.NewRecorder()
	renderer.Home(w, models.HomePage{Username: "alice", Quotes: []models.Quote{}})

	if !strings.Contains(w.Body.String(), "Your jar is empty") {
		t.Error("Expected empty state message")
	}
}

func TestHome_EscapesQuoteText(t *testing.T) {
	renderer := newTestRenderer(t)

	data := models.HomePage{
		Username: "alice",
		Quotes: []models.Quote{
			{ID: "q1", QuoteText: "<script>alert(1)</script>", PersonName: "Mallory", CreatedAt: time.Now()},
		},
	}

	w := httptest.NewRecorder()
	renderer.Home(w, data)

	if strings.Contains(w.Body.String(), "<script>alert(1)</script>") {
		t.Error("Expected quote text to be HTML-escaped")
	}
}

func TestQuoteForm_Add(t *testing.T) {
	renderer := newTestRenderer(t)

	w := httptest.NewRecorder()
	renderer.QuoteForm(w, models.QuoteFormPage{Username: "alice"})

	body := w.Body.String()
	if !strings.Contains(body, `action="/add-quote"`) {
		t.Error("Expected add form to post to /add-quote")
	}
	if !strings.Contains(body, "Add a quote") {
		t.Error("Expected add heading")
	}
}

func TestQuoteForm_Edit(t *testing.T) {
	renderer := newTestRenderer(t)

	data := models.QuoteFormPage{
		Username: "alice",
		Editing:  true,
		Quote: models.Quote{
			ID:         "q42",
			QuoteText:  "Measure twice",
			PersonName: "Pat",
			Location:   strptr("the shop"),
		},
	}

	w := httptest.NewRecorder()
	renderer.QuoteForm(w, data)

	body := w.Body.String()
	if !strings.Contains(body, `action="/quotes/q42/edit"`) {
		t.Error("Expected edit form to post to the quote's edit route")
	}
	if !strings.Contains(body, "Measure twice") {
		t.Error("Expected existing quote text to prefill")
	}
	if !strings.Contains(body, `value="Pat"`) {
		t.Error("Expected existing person name to prefill")
	}
	if !strings.Contains(body, `value="the shop"`) {
		t.Error("Expected existing location to prefill")
	}
	if !strings.Contains(body, "Edit quote") {
		t.Error("Expected edit heading")
	}
}

func TestStats(t *testing.T) {
	renderer := newTestRenderer(t)

	data := models.StatsPage{
		Username:   "alice",
		QuoteCount: 2,
		QuotesJSON: `[{"person_name":"Yogi"},{"person_name":"Dana"}]`,
	}

	w := httptest.NewRecorder()
	renderer.Stats(w, data)

	body := w.Body.String()
	// The JSON payload must land in the script unescaped.
	if !strings.Contains(body, `[{"person_name":"Yogi"},{"person_name":"Dana"}]`) {
		t.Error("Expected raw JSON payload in the stats page")
	}
	if !strings.Contains(body, "alice") {
		t.Error("Expected username on stats page")
	}
}

func TestGame_Ready(t *testing.T) {
	renderer := newTestRenderer(t)

	data := models.GamePage{
		Username:   "alice",
		QuoteCount: 2,
		Ready:      true,
		QuotesJSON: `[{"quote_text":"a","person_name":"A"},{"quote_text":"b","person_name":"B"}]`,
	}

	w := httptest.NewRecorder()
	renderer.Game(w, data)

	body := w.Body.String()
	if !strings.Contains(body, `"quote_text":"a"`) {
		t.Error("Expected quote data in the game page")
	}
	if strings.Contains(body, "Not enough quotes yet") {
		t.Error("Expected no insufficiency notice when ready")
	}
}

func TestGame_NotEnoughQuotes(t *testing.T) {
	renderer := newTestRenderer(t)

	w := httptest.NewRecorder()
	renderer.Game(w, models.GamePage{Username: "alice", QuoteCount: 1})

	body := w.Body.String()
	if !strings.Contains(body, "Not enough quotes yet") {
		t.Error("Expected insufficiency notice")
	}
	if strings.Contains(body, "const quotes") {
		t.Error("Expected no game script without enough quotes")
	}
}

func TestError(t *testing.T) {
	renderer := newTestRenderer(t)

	w := httptest.NewRecorder()
	renderer.Error(w, http.StatusNotFound, "That quote doesn't exist.")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "404 Not Found") {
		t.Error("Expected status line on error page")
	}
	if !strings.Contains(body, "That quote doesn") {
		t.Error("Expected message on error page")
	}
}
