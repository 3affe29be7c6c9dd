// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// CookieName is the name of the browser cookie that carries the session token.
const CookieName = "quote_jar_session"

// DefaultTTL is the session lifetime used when no explicit TTL is configured.
const DefaultTTL = 24 * time.Hour

// Session is one logged-in browser. The expiry is fixed when the session is
// created; it is never extended by activity.
type Session struct {
	Token     string
	UserID    string
	Username  string
	ExpiresAt time.Time
}

// GenerateToken creates a cryptographically random session token.
func GenerateToken() (string, error) {
	// 24 bytes = 192 bits of entropy
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// Store holds active sessions keyed by token.
type Store interface {
	Put(s Session)
	Get(token string) (Session, bool)
	Delete(token string)
}

// MemoryStore is an in-process Store. Sessions do not survive a restart,
// which is acceptable here: logging in again is a one-field form.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (s *MemoryStore) Put(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
}

// Get returns the session for token. Expired sessions are evicted lazily
// here rather than by a background sweeper.
func (s *MemoryStore) Get(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if time.Now().After(sess.ExpiresAt) {
		s.Delete(token)
		return Session{}, false
	}
	return sess, true
}

func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Manager creates, resolves, and destroys sessions, and owns the cookie
// handling on both sides.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager creates a Manager over store. A non-positive ttl falls back
// to DefaultTTL.
func NewManager(store Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{store: store, ttl: ttl}
}

// Start creates a session for the given user and sets the session cookie
// on the response.
func (m *Manager) Start(w http.ResponseWriter, userID, username string) (Session, error) {
	token, err := GenerateToken()
	if err != nil {
		return Session{}, err
	}

	sess := Session{
		Token:     token,
		UserID:    userID,
		Username:  username,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	m.store.Put(sess)

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// FromRequest resolves the session carried by the request cookie, if any.
// The expiry is fixed at login; reading a session never extends it.
func (m *Manager) FromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, false
	}
	return m.store.Get(cookie.Value)
}

// Destroy removes the request's session from the store and clears the
// cookie. Safe to call without a live session.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil {
		m.store.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
