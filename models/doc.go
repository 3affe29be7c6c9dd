// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and page data types for Quote Jar.

# Domain Types

Rows as they live in the database:

  - User: a claimed username with its surrogate ID
  - Quote: one quote with text, attribution, optional location/date

Quote.Location and Quote.Date are *string so a blank form field maps to
SQL NULL and back. JSON tags are snake_case; the stats and game pages
embed marshaled Quote records directly.

# Page Data Types

One struct per rendered template:

  - HomePage: username plus the owner's quotes, newest first
  - QuoteFormPage: add/edit form state (Editing selects the mode)
  - StatsPage: quote count plus the full set as pre-marshaled JSON
  - GamePage: like StatsPage, plus Ready (needs at least two quotes)
  - ErrorPage: status code, status text, and a generic message

StatsPage.QuotesJSON and GamePage.QuotesJSON are template.JS so the
marshaled records land in the page script unescaped.
*/
package models
