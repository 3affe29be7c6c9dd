// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mianiela22/Quote-Jar-Final/session"
)

func TestWithLogging(t *testing.T) {
	// Create a simple handler that returns OK
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	// Wrap with logging middleware
	wrappedHandler := WithLogging(testHandler)

	// Create test request and recorder
	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	// Execute
	wrappedHandler(w, req)

	// Verify handler was called
	if !handlerCalled {
		t.Error("Expected handler to be called")
	}

	// Verify response was written correctly
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	// Test that logging doesn't interfere with various response codes
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"SeeOther", http.StatusSeeOther, ""},
		{"Found", http.StatusFound, ""},
		{"NotFound", http.StatusNotFound, "not found"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/add-quote", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestRequireSession_RedirectsWithoutSession(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore(), time.Hour)

	handlerCalled := false
	guarded := RequireSession(mgr, func(w http.ResponseWriter, r *http.Request, sess session.Session) {
		handlerCalled = true
	})

	req := httptest.NewRequest("GET", "/home", nil)
	w := httptest.NewRecorder()

	guarded(w, req)

	if handlerCalled {
		t.Error("Expected handler not to be called without a session")
	}
	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Expected redirect to /, got '%s'", loc)
	}
}

func TestRequireSession_RedirectsWithBogusCookie(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore(), time.Hour)

	guarded := RequireSession(mgr, func(w http.ResponseWriter, r *http.Request, sess session.Session) {
		t.Error("Expected handler not to be called with an unknown token")
	})

	req := httptest.NewRequest("GET", "/home", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-real-token"})
	w := httptest.NewRecorder()

	guarded(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}
}

func TestRequireSession_PassesSessionThrough(t *testing.T) {
	mgr := session.NewManager(session.NewMemoryStore(), time.Hour)

	// Start a session and capture its cookie
	setup := httptest.NewRecorder()
	started, err := mgr.Start(setup, "user-1", "alice")
	if err != nil {
		t.Fatalf("Failed to start session: %v", err)
	}
	cookie := setup.Result().Cookies()[0]

	var got session.Session
	guarded := RequireSession(mgr, func(w http.ResponseWriter, r *http.Request, sess session.Session) {
		got = sess
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/home", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()

	guarded(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if got.UserID != "user-1" {
		t.Errorf("Expected session UserID user-1, got '%s'", got.UserID)
	}
	if got.Username != "alice" {
		t.Errorf("Expected session Username alice, got '%s'", got.Username)
	}
	if got.Token != started.Token {
		t.Error("Expected the handler to receive the started session")
	}
}
