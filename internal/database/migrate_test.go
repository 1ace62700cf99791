package database

import (
	"io"
	"strings"
	"testing"
)

func TestMigrationSource(t *testing.T) {
	src, err := MigrationSource()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer src.Close()

	first, err := src.First()
	if err != nil {
		t.Fatalf("expected at least one migration: %v", err)
	}
	if first != 1 {
		t.Errorf("expected first version 1, got %d", first)
	}

	up, _, err := src.ReadUp(first)
	if err != nil {
		t.Fatalf("failed to read up migration: %v", err)
	}
	defer up.Close()

	body, err := io.ReadAll(up)
	if err != nil {
		t.Fatalf("failed to read migration body: %v", err)
	}
	sql := string(body)
	for _, want := range []string{"CREATE TABLE IF NOT EXISTS expenses", "NUMERIC(10, 2)", "expense_category", "SERIAL PRIMARY KEY"} {
		if !strings.Contains(sql, want) {
			t.Errorf("expected up migration to contain %q", want)
		}
	}

	down, _, err := src.ReadDown(first)
	if err != nil {
		t.Fatalf("failed to read down migration: %v", err)
	}
	down.Close()
}

func TestConfigURL(t *testing.T) {
	cfg := &Config{Host: "db", Port: "5432", User: "app", Password: "p@ss word", DBName: "expenses", SSLMode: "disable"}

	got := cfg.URL()
	want := "postgres://app:p%40ss%20word@db:5432/expenses?sslmode=disable"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	dsn := cfg.DSN()
	if !strings.Contains(dsn, "host=db") || !strings.Contains(dsn, "dbname=expenses") {
		t.Errorf("unexpected DSN: %s", dsn)
	}
}
