// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open picks the driver from the configured database type, tunes the pool,
and pings before returning:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types:

  - sqlite: file-based via modernc.org/sqlite (no cgo). Recommended DSN
    options: file:quotes.db?_time_format=sqlite&_pragma=foreign_keys(1)
  - postgres: networked via lib/pq, e.g. postgres://user:pw@host/dbname

sqlite connections are limited to one pooled connection; sqlite has a
single writer, and in-memory databases live only as long as a connection
does.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - users: claimed usernames (unique, non-empty)
  - quotes: one row per saved quote, owned by a user

quotes.owner_id references users(id) with ON DELETE CASCADE. Required
text columns carry CHECK constraints, so an empty quote_text, person_name,
or username is rejected by the store itself rather than by handler code.

The DDL is restricted to syntax both drivers accept: TEXT primary keys,
TIMESTAMP with CURRENT_TIMESTAMP defaults, ordinary CHECK constraints.

# Indexes

	idx_quotes_owner_created ON quotes(owner_id, created_at)

Every quote query filters by owner and orders by creation time, so the
one composite index covers them all.
*/
package db
