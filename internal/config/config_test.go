package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dompet/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.JWT.Algorithm != "HS256" {
			t.Errorf("expected HS256, got %s", cfg.JWT.Algorithm)
		}
		if cfg.JWT.ExpiresIn != 24*time.Hour {
			t.Errorf("expected 24h expiry, got %s", cfg.JWT.ExpiresIn)
		}
		if cfg.StatusCodes {
			t.Error("expected envelope mode by default")
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("JWT_ISSUER", "dompet-test")
		t.Setenv("JWT_ALGORITHM", "HS512")
		t.Setenv("JWT_EXPIRES_IN", "0s")
		t.Setenv("API_STATUS_CODES", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "9090" {
			t.Errorf("expected port 9090, got %s", cfg.Port)
		}
		if cfg.Database.Host != "db.internal" {
			t.Errorf("expected db.internal, got %s", cfg.Database.Host)
		}
		if cfg.JWT.Issuer != "dompet-test" || cfg.JWT.Algorithm != "HS512" {
			t.Errorf("unexpected jwt config: %+v", cfg.JWT)
		}
		if cfg.JWT.ExpiresIn != 0 {
			t.Errorf("expected no expiry, got %s", cfg.JWT.ExpiresIn)
		}
		if !cfg.StatusCodes {
			t.Error("expected status code mode")
		}
	})

	t.Run("rejects unsupported algorithm", func(t *testing.T) {
		t.Setenv("JWT_ALGORITHM", "RS256")

		if _, err := Load(); err == nil {
			t.Fatal("expected validation error for RS256")
		}
	})

	t.Run("rejects short secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "short")

		if _, err := Load(); err == nil {
			t.Fatal("expected validation error for short secret")
		}
	})

	t.Run("reads config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dompet.yaml")
		content := "port: \"7070\"\njwt_issuer: from-file\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		t.Setenv("CONFIG_FILE", path)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "7070" {
			t.Errorf("expected port 7070, got %s", cfg.Port)
		}
		if cfg.JWT.Issuer != "from-file" {
			t.Errorf("expected issuer from-file, got %s", cfg.JWT.Issuer)
		}
	})
}

func TestDatabaseConfig(t *testing.T) {
	db := DatabaseConfig{Host: "h", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	if got, want := db.DSN(), "host=h port=5432 user=u password=p dbname=n sslmode=disable"; got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
	if got, want := db.URL(), "postgres://u:p@h:5432/n?sslmode=disable"; got != want {
		t.Errorf("URL = %q, want %q", got, want)
	}
}
