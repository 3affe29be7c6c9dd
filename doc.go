// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quote Jar server.

Quote Jar is a small multi-user web app for collecting quotes: things
people around you said, attributed and dated, stored per user. Users log
in with just a username, keep a private jar of quotes, browse stats, and
play a who-said-it guessing game against their own collection.

# Starting the Server

The server requires a database URL via environment or CLI flag:

	DATABASE_URL="file:quotes.db?_time_format=sqlite&_pragma=foreign_keys(1)" go run .

Or with flags:

	go run . -p 3000 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SESSION_TTL (-session-ttl): Session lifetime from login (default: 24h)

A .env file in the working directory is loaded at startup if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, quotes, insights)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request logging and the session guard
  - session: Cookie-backed login sessions
  - views: Server-rendered HTML pages
  - models: Domain and page data types
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
