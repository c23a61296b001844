package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("default port = %q", cfg.App.Port)
	}
	if cfg.Auth.TokenTTLMinutes != 60 {
		t.Fatalf("default token TTL = %d", cfg.Auth.TokenTTLMinutes)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("default bcrypt cost = %d", cfg.Auth.BcryptCost)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_TOKEN_TTL_MINUTES", "15")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("port override = %q", cfg.App.Port)
	}
	if cfg.Auth.TokenTTLMinutes != 15 {
		t.Fatalf("ttl override = %d", cfg.Auth.TokenTTLMinutes)
	}
	if cfg.Redis.DB != 3 {
		t.Fatalf("redis db override = %d", cfg.Redis.DB)
	}
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid REDIS_DB")
	}
}

func TestAddrAndTimeout(t *testing.T) {
	app := AppConfig{Host: "127.0.0.1", Port: "8081", RequestTimeoutSeconds: 5}
	if app.Addr() != "127.0.0.1:8081" {
		t.Fatalf("Addr = %q", app.Addr())
	}
	if app.RequestTimeout() != 5*time.Second {
		t.Fatalf("RequestTimeout = %v", app.RequestTimeout())
	}

	app.RequestTimeoutSeconds = 0
	if app.RequestTimeout() != 0 {
		t.Fatalf("zero timeout should disable, got %v", app.RequestTimeout())
	}
}
