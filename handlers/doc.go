// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for Quote Jar.

# Handler Types

Each handler is a struct with its dependencies injected at construction:

  - AuthHandler: landing page, login, logout
  - QuoteHandler: quote listing and create/edit/delete
  - InsightsHandler: stats and the who-said-it game

	authHandler := handlers.NewAuthHandler(db, cfg, sessions, renderer)
	quoteHandler := handlers.NewQuoteHandler(db, cfg, renderer)

# Login Flow

Login is a bare username claim:

	POST /login → find-or-create the user, start a session, 303 /home

No password exists. A username seen for the first time creates the user;
a known one logs into it. Two simultaneous first logins race on the
unique constraint and the loser adopts the winner's row.

# Ownership

Every query that touches quotes carries WHERE owner_id = <session user>.
That single filter is the whole authorization story:

  - listings, stats, and game data only ever see the caller's rows
  - the edit form 404s on a foreign or missing id
  - edit and delete mutations on a foreign or missing id match zero
    rows and redirect as if they had worked

# Mutations

Form POSTs answer 303 See Other back to /home on success. Required
fields (quote text, person name) are enforced by the store's CHECK
constraints; any failure renders the generic error page and logs the
cause server-side.
*/
package handlers
