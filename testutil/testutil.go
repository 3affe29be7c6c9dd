// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mianiela22/Quote-Jar-Final/cliparse"
	"github.com/mianiela22/Quote-Jar-Final/db"
	"github.com/mianiela22/Quote-Jar-Final/models"
	"github.com/mianiela22/Quote-Jar-Final/session"
	"github.com/mianiela22/Quote-Jar-Final/views"
)

var testDBCounter atomic.Int64

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call gets its own named database, so tests never see each
// other's rows; the single pooled connection keeps it alive until the
// test closes it.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:testdb%d?mode=memory&cache=shared&_time_format=sqlite&_pragma=foreign_keys(1)",
		testDBCounter.Add(1),
	)
	conn, err := db.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:quote_jar_test?mode=memory",
		DatabaseType: "sqlite",
		SessionTTL:   time.Hour,
	}
}

// NewTestSessionManager returns a session manager backed by a fresh
// in-memory store.
func NewTestSessionManager() *session.Manager {
	return session.NewManager(session.NewMemoryStore(), time.Hour)
}

// NewTestRenderer parses the embedded templates or fails the test.
func NewTestRenderer(t *testing.T) *views.Renderer {
	t.Helper()

	renderer, err := views.New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return renderer
}

// CreateTestUser inserts a user row and returns it
func CreateTestUser(t *testing.T, db *sql.DB, username string) models.User {
	t.Helper()

	user := models.User{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: time.Now(),
	}
	_, err := db.Exec(
		"INSERT INTO users (id, username, created_at) VALUES ($1, $2, $3)",
		user.ID, user.Username, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateTestQuote inserts a quote row with no location or date. The
// caller picks createdAt so listing order is under test control.
func CreateTestQuote(t *testing.T, db *sql.DB, ownerID, quoteText, personName string, createdAt time.Time) models.Quote {
	t.Helper()

	quote := models.Quote{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		QuoteText:  quoteText,
		PersonName: personName,
		CreatedAt:  createdAt,
	}
	_, err := db.Exec(
		`INSERT INTO quotes (id, owner_id, quote_text, person_name, location, quote_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		quote.ID, quote.OwnerID, quote.QuoteText, quote.PersonName, nil, nil, quote.CreatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create test quote: %v", err)
	}
	return quote
}

// StartTestSession logs user in against the manager and returns the
// session cookie a browser would hold, plus the session itself.
func StartTestSession(t *testing.T, sessions *session.Manager, user models.User) (*http.Cookie, session.Session) {
	t.Helper()

	w := httptest.NewRecorder()
	sess, err := sessions.Start(w, user.ID, user.Username)
	if err != nil {
		t.Fatalf("Failed to start test session: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 session cookie, got %d", len(cookies))
	}
	return cookies[0], sess
}

// MakeFormRequest creates an HTTP test request carrying a form body
// and, optionally, a session cookie.
func MakeFormRequest(method, path string, form url.Values, cookie *http.Cookie) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks the response status and Location header
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedLocation string) {
	t.Helper()
	AssertStatus(t, w, expectedStatus)
	if loc := w.Header().Get("Location"); loc != expectedLocation {
		t.Errorf("Expected redirect to %s, got '%s'", expectedLocation, loc)
	}
}
