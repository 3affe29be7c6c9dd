// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "file:quotes.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected default session TTL 24h, got %v", cfg.SessionTTL)
	}
}

func TestParseFlags_MissingDatabaseURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when no database URL is given")
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-d", "file:quotes.db", "-t", "mongodb"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_SessionTTL(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "file:quotes.db", "-session-ttl", "1h"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SessionTTL != time.Hour {
		t.Errorf("expected session TTL 1h, got %v", cfg.SessionTTL)
	}
}

func TestParseFlags_SessionTTLFromEnv(t *testing.T) {
	os.Setenv("DATABASE_URL", "file:quotes.db")
	os.Setenv("SESSION_TTL", "30m")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected session TTL 30m, got %v", cfg.SessionTTL)
	}
}

func TestParseFlags_InvalidSessionTTL(t *testing.T) {
	os.Setenv("DATABASE_URL", "file:quotes.db")
	os.Setenv("SESSION_TTL", "soon")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for unparseable SESSION_TTL")
	}
}

func TestParseFlags_NegativeSessionTTL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-d", "file:quotes.db", "-session-ttl", "-5m"}); err == nil {
		t.Error("expected error for negative session TTL")
	}
}
