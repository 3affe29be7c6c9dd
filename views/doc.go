// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the server-side HTML pages.

# Templates

Each page is a standalone HTML document under templates/, embedded into
the binary and keyed by file name:

  - landing.html: the login form
  - home.html: the quote listing
  - quote_form.html: add and edit share one form
  - stats.html: counts rendered client-side from embedded JSON
  - game.html: the who-said-it quiz, or an insufficiency notice
  - error.html: generic error page

# Rendering

New parses everything once at startup; a malformed template fails the
boot rather than the first request:

	renderer, err := views.New()

Handlers call one typed method per page:

	renderer.Home(w, models.HomePage{Username: sess.Username, Quotes: quotes})
	renderer.Error(w, http.StatusNotFound, "That quote doesn't exist.")

# Template Functions

timeago formats a timestamp as a relative phrase ("3 days ago") via
go-humanize.

# Client-Side Data

The stats and game pages do their work in the browser. Handlers marshal
the quote set to JSON and pass it as template.JS, which the templates
drop into a script tag verbatim:

	const quotes = {{.QuotesJSON}};

template.JS skips contextual escaping, so only server-marshaled JSON
goes through it, never raw user input.
*/
package views
