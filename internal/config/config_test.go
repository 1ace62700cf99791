package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"ENV", "PORT", "DB_HOST", "DB_NAME", "DB_QUERY_TIMEOUT", "CORS_ALLOW_ORIGIN", "SHUTDOWN_TIMEOUT"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Env != "development" || cfg.Port != "8080" {
			t.Errorf("unexpected server defaults: %+v", cfg)
		}
		if cfg.DBHost != "localhost" || cfg.DBName != "expenses" {
			t.Errorf("unexpected database defaults: %+v", cfg)
		}
		if cfg.DBQueryTimeout != 5*time.Second || cfg.ShutdownTimeout != 10*time.Second {
			t.Errorf("unexpected timeouts: query=%s shutdown=%s", cfg.DBQueryTimeout, cfg.ShutdownTimeout)
		}
		if cfg.CORSAllowOrigin != "*" {
			t.Errorf("expected *, got %q", cfg.CORSAllowOrigin)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("PORT", "9090")
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_QUERY_TIMEOUT", "750ms")
		t.Setenv("CORS_ALLOW_ORIGIN", "https://app.example.com")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Env != "production" || cfg.Port != "9090" || cfg.DBHost != "db" {
			t.Errorf("overrides not applied: %+v", cfg)
		}
		if cfg.DBQueryTimeout != 750*time.Millisecond {
			t.Errorf("expected 750ms, got %s", cfg.DBQueryTimeout)
		}
		if cfg.CORSAllowOrigin != "https://app.example.com" {
			t.Errorf("unexpected origin %q", cfg.CORSAllowOrigin)
		}
	})

	t.Run("invalid duration falls back", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.ShutdownTimeout != 10*time.Second {
			t.Errorf("expected fallback to 10s, got %s", cfg.ShutdownTimeout)
		}
	})
}
