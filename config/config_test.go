package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"API_HOST", "API_BASE_PATH", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL",
		"CACHE_BACKEND", "CACHE_TTL", "CACHE_MAX_ENTRIES", "REDIS_ADDR", "REDIS_PASSWORD",
		"REDIS_DB", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.Server.Port)
	}
	if cfg.Cache.Backend != CacheMemory {
		t.Errorf("expected memory cache, got %s", cfg.Cache.Backend)
	}
	if cfg.RateLimit.Refill.Duration != time.Minute {
		t.Errorf("expected 1m refill, got %v", cfg.RateLimit.Refill.Duration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = "8080"
read_timeout = "5s"
api_host = "calc.example.com"

[cache]
backend = "redis"
ttl = "1h"
redis_addr = "redis:6379"
redis_db = 3

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TTL", "30m")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("env should override file port, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("expected 5s read timeout, got %v", cfg.Server.ReadTimeout.Duration)
	}
	if cfg.Server.WriteTimeout.Duration != 15*time.Second {
		t.Errorf("expected default write timeout, got %v", cfg.Server.WriteTimeout.Duration)
	}
	if cfg.Server.APIHost != "calc.example.com" {
		t.Errorf("unexpected api host %s", cfg.Server.APIHost)
	}
	if cfg.Cache.Backend != CacheRedis || cfg.Cache.RedisAddr != "redis:6379" || cfg.Cache.RedisDB != 3 {
		t.Errorf("unexpected cache config %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 30*time.Minute {
		t.Errorf("env should override ttl, got %v", cfg.Cache.TTL.Duration)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug, got %s", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	_ = os.WriteFile(path, []byte("[server]\nread_timeout = \"soon\"\n"), 0o600)
	if _, err := Load(path); err == nil {
		t.Errorf("expected error for bad duration")
	}
}

func TestValidate_CollectsErrors(t *testing.T) {

	cfg := Default()
	cfg.Server.Port = "70000"
	cfg.RateLimit.Capacity = 0
	cfg.Cache.Backend = "memcached"
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}

	for _, want := range []string{
		"invalid port 70000",
		"invalid rate limit capacity 0",
		"invalid cache backend 'memcached'",
		`unknown log level "loud"`,
		"invalid log format 'xml'",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestValidate_Redis(t *testing.T) {

	cfg := Default()
	cfg.Cache.Backend = CacheRedis
	cfg.Cache.RedisAddr = ""

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "redis address cannot be empty") {
		t.Errorf("expected redis address error, got %v", err)
	}
}
