package config

import (
	"testing"
	"time"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadDevelopmentSecretFallback(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/ironmanage")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTAccessSecret == "" {
		t.Error("expected a development fallback secret")
	}
}

func TestLoadRejectsMissingSecretInProduction(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/ironmanage")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_ACCESS_SECRET is missing in production")
	}
}

func TestLoadParsesDurationsAndLists(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/ironmanage")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Errorf("TTL = %v, want 30m", cfg.AccessTokenTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://app.example.com" {
		t.Errorf("CORS origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/ironmanage")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("ACCESS_TOKEN_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "development" {
		t.Errorf("env = %q, want development", cfg.Env)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("addr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.AccessTokenTTL != time.Hour {
		t.Errorf("TTL = %v, want 1h", cfg.AccessTokenTTL)
	}
}
