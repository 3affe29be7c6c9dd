// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// driverName maps a configured database type to its registered driver.
func driverName(databaseType string) (string, error) {
	switch databaseType {
	case "sqlite":
		return "sqlite", nil
	case "postgres":
		return "postgres", nil
	}
	return "", fmt.Errorf("unsupported database type %q", databaseType)
}

// Open connects to the configured database, tunes the connection pool,
// and verifies the connection with a ping before returning.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	name, err := driverName(databaseType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(name, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if name == "sqlite" {
		// sqlite allows a single writer, and an in-memory database
		// vanishes when its last connection closes. One pooled
		// connection with no lifetime limit avoids both problems.
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}
