// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements cookie-backed login sessions.

# Model

A session ties a random token to a user for a fixed window (DefaultTTL,
24 hours, unless configured otherwise). The window is measured from
login: activity does not slide the expiry, so a session started at 9am
with the default TTL ends at 9am the next day no matter how busy it was.

# Tokens

Tokens are 24 random bytes, URL-safe base64 without padding - the same
shape used for any bearer credential in this codebase. They are opaque;
all meaning lives in the server-side store.

# Store

Store is the token -> Session lookup. MemoryStore is the only
implementation: a mutex-guarded map with lazy eviction (expired entries
are removed when read, not by a background sweeper). Sessions therefore
die with the process, which suits a no-password login where
re-authenticating costs one form submit.

# Manager

Manager is what handlers talk to:

	sessions := session.NewManager(session.NewMemoryStore(), cfg.SessionTTL)

	sess, err := sessions.Start(w, user.ID, user.Username)  // login
	sess, ok := sessions.FromRequest(r)                     // each request
	sessions.Destroy(w, r)                                  // logout

Start sets the cookie (HttpOnly, SameSite=Lax, Path=/) alongside the
store entry; Destroy clears both sides and tolerates requests that
carry no cookie at all.
*/
package session
