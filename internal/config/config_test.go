package config

import (
	"testing"
)

func TestParse_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("LOG_FILE", "/tmp/eventvote.log")
	t.Setenv("GIN_DEBUG", "yes")

	cfg, err := parse([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.Store != StoreMongo {
		t.Errorf("expected default store %q, got %q", StoreMongo, cfg.Store)
	}
	if cfg.MongoDatabase != "voting_app" {
		t.Errorf("expected default database voting_app, got %q", cfg.MongoDatabase)
	}
	if cfg.LogFile != "/tmp/eventvote.log" {
		t.Errorf("expected log file from LOG_FILE, got %q", cfg.LogFile)
	}
	if cfg.GinMode != "debug" {
		t.Errorf("expected debug gin mode from GIN_DEBUG, got %q", cfg.GinMode)
	}
}

func TestParse_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE", "mongo")
	t.Setenv("ADMIN_PASSWORD", "secret")

	cfg, err := parse([]string{"-p", "8081", "-store", "memory"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8081 {
		t.Errorf("CLI should override env: expected 8081, got %d", cfg.Port)
	}
	if cfg.Store != StoreMemory {
		t.Errorf("CLI should override env: expected memory, got %q", cfg.Store)
	}
}

func TestParse_Required(t *testing.T) {
	t.Run("Test admin password", func(t *testing.T) {
		t.Setenv("ADMIN_PASSWORD", "")
		if _, err := parse([]string{"-store", "memory"}); err == nil {
			t.Error("expected an error without ADMIN_PASSWORD")
		}
	})

	t.Run("Test mongo uri", func(t *testing.T) {
		t.Setenv("ADMIN_PASSWORD", "secret")
		t.Setenv("MONGODB_URI", "")
		if _, err := parse([]string{"-store", "mongo"}); err == nil {
			t.Error("expected an error without MONGODB_URI")
		}
	})

	t.Run("Test unknown store", func(t *testing.T) {
		t.Setenv("ADMIN_PASSWORD", "secret")
		if _, err := parse([]string{"-store", "redis"}); err == nil {
			t.Error("expected an error for an unknown store")
		}
	})

	t.Run("Test bad port", func(t *testing.T) {
		t.Setenv("ADMIN_PASSWORD", "secret")
		t.Setenv("PORT", "eighty")
		if _, err := parse([]string{"-store", "memory"}); err == nil {
			t.Error("expected an error for a non-numeric PORT")
		}
	})
}
