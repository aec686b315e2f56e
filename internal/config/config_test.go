package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		Port:          "8081",
		SQLiteDBPath:  t.TempDir() + "/financeiro.db",
		DataBackend:   "sqlite",
		ChartCacheTTL: 5 * time.Minute,
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("expected default port 8081, got %s", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("expected default backend sqlite, got %s", cfg.DataBackend)
	}
	if cfg.ChartCacheTTL != 5*time.Minute {
		t.Fatalf("expected default chart cache TTL 5m, got %v", cfg.ChartCacheTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("CHART_CACHE_TTL", "30s")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.DataBackend != "memory" {
		t.Fatalf("expected backend memory, got %s", cfg.DataBackend)
	}
	if cfg.ChartCacheTTL != 30*time.Second {
		t.Fatalf("expected TTL 30s, got %v", cfg.ChartCacheTTL)
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig(t).Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"bad port", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"bad backend", func(c *Config) { c.DataBackend = "redis" }, "invalid data backend"},
		{"empty db path", func(c *Config) { c.SQLiteDBPath = "" }, "database path"},
		{"short ttl", func(c *Config) { c.ChartCacheTTL = time.Millisecond }, "chart cache TTL"},
		{"long ttl", func(c *Config) { c.ChartCacheTTL = 48 * time.Hour }, "chart cache TTL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig(t)
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected message containing %q, got %v", tc.wantMsg, err)
			}
		})
	}
}

func TestValidateMemoryBackendIgnoresDBPath(t *testing.T) {
	cfg := validConfig(t)
	cfg.DataBackend = "memory"
	cfg.SQLiteDBPath = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("memory backend should not require a db path, got %v", err)
	}
}
