// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mianiela22/Quote-Jar-Final/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates. Each page is a
// standalone HTML document keyed by its file name.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"timeago": func(t time.Time) string {
			return humanize.Time(t)
		},
	}
	tmpl, err := template.New("views").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// render writes one page. Execution errors are logged rather than
// surfaced; by the time ExecuteTemplate fails mid-write the status
// line has already gone out.
func (v *Renderer) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := v.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// Landing renders the login page.
func (v *Renderer) Landing(w http.ResponseWriter) {
	v.render(w, http.StatusOK, "landing.html", nil)
}

// Home renders the quote list page.
func (v *Renderer) Home(w http.ResponseWriter, data models.HomePage) {
	v.render(w, http.StatusOK, "home.html", data)
}

// QuoteForm renders the add/edit quote form.
func (v *Renderer) QuoteForm(w http.ResponseWriter, data models.QuoteFormPage) {
	v.render(w, http.StatusOK, "quote_form.html", data)
}

// Stats renders the statistics page.
func (v *Renderer) Stats(w http.ResponseWriter, data models.StatsPage) {
	v.render(w, http.StatusOK, "stats.html", data)
}

// Game renders the guessing game page.
func (v *Renderer) Game(w http.ResponseWriter, data models.GamePage) {
	v.render(w, http.StatusOK, "game.html", data)
}

// Error renders the error page with the given status code and message.
func (v *Renderer) Error(w http.ResponseWriter, status int, message string) {
	v.render(w, status, "error.html", models.ErrorPage{
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
	})
}
