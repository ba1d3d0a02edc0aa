package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"retirement-calc/logger"
)

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Cache     CacheConfig     `toml:"cache"`
	Log       LogConfig       `toml:"log"`
}

type ServerConfig struct {
	Port            string   `toml:"port"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`

	// Publicados en el documento Swagger
	APIHost     string `toml:"api_host"`
	APIBasePath string `toml:"api_base_path"`
}

type RateLimitConfig struct {
	Capacity int      `toml:"capacity"`
	Refill   Duration `toml:"refill"`
}

type CacheConfig struct {
	Backend       string   `toml:"backend"`
	TTL           Duration `toml:"ttl"`
	MaxEntries    int      `toml:"max_entries"`
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Duration lets TOML files use strings such as "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "3000",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
			APIHost:         "localhost:3000",
		},
		RateLimit: RateLimitConfig{
			Capacity: 60,
			Refill:   Duration{time.Minute},
		},
		Cache: CacheConfig{
			Backend:    CacheMemory,
			TTL:        Duration{24 * time.Hour},
			MaxEntries: 10000,
			RedisAddr:  "localhost:6379",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, then the TOML file at path
// (skipped when path is empty), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.ReadTimeout.Duration = getEnvDuration("READ_TIMEOUT", c.Server.ReadTimeout.Duration)
	c.Server.WriteTimeout.Duration = getEnvDuration("WRITE_TIMEOUT", c.Server.WriteTimeout.Duration)
	c.Server.IdleTimeout.Duration = getEnvDuration("IDLE_TIMEOUT", c.Server.IdleTimeout.Duration)
	c.Server.ShutdownTimeout.Duration = getEnvDuration("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout.Duration)
	c.Server.APIHost = getEnv("API_HOST", c.Server.APIHost)
	c.Server.APIBasePath = getEnv("API_BASE_PATH", c.Server.APIBasePath)

	c.RateLimit.Capacity = getEnvInt("RATE_LIMIT_CAPACITY", c.RateLimit.Capacity)
	c.RateLimit.Refill.Duration = getEnvDuration("RATE_LIMIT_REFILL", c.RateLimit.Refill.Duration)

	c.Cache.Backend = getEnv("CACHE_BACKEND", c.Cache.Backend)
	c.Cache.TTL.Duration = getEnvDuration("CACHE_TTL", c.Cache.TTL.Duration)
	c.Cache.MaxEntries = getEnvInt("CACHE_MAX_ENTRIES", c.Cache.MaxEntries)
	c.Cache.RedisAddr = getEnv("REDIS_ADDR", c.Cache.RedisAddr)
	c.Cache.RedisPassword = getEnv("REDIS_PASSWORD", c.Cache.RedisPassword)
	c.Cache.RedisDB = getEnvInt("REDIS_DB", c.Cache.RedisDB)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	timeouts := []struct {
		name string
		d    time.Duration
	}{
		{"read timeout", c.Server.ReadTimeout.Duration},
		{"write timeout", c.Server.WriteTimeout.Duration},
		{"idle timeout", c.Server.IdleTimeout.Duration},
		{"shutdown timeout", c.Server.ShutdownTimeout.Duration},
	}
	for _, t := range timeouts {
		if t.d <= 0 {
			errors = append(errors, fmt.Sprintf("invalid %s %v: must be positive", t.name, t.d))
		}
	}

	if c.RateLimit.Capacity < 1 {
		errors = append(errors, fmt.Sprintf("invalid rate limit capacity %d: must be at least 1", c.RateLimit.Capacity))
	}
	if c.RateLimit.Refill.Duration < time.Second {
		errors = append(errors, fmt.Sprintf("invalid rate limit refill %v: must be at least 1 second", c.RateLimit.Refill.Duration))
	}

	switch c.Cache.Backend {
	case CacheNone:
	case CacheMemory:
		if c.Cache.MaxEntries < 1 {
			errors = append(errors, fmt.Sprintf("invalid cache max entries %d: must be at least 1", c.Cache.MaxEntries))
		}
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			errors = append(errors, "redis address cannot be empty when using redis cache")
		}
		if c.Cache.RedisDB < 0 {
			errors = append(errors, fmt.Sprintf("invalid redis db %d: must not be negative", c.Cache.RedisDB))
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid cache backend '%s': must be one of [%s %s %s]",
			c.Cache.Backend, CacheMemory, CacheRedis, CacheNone))
	}
	if c.Cache.TTL.Duration < 0 {
		errors = append(errors, fmt.Sprintf("invalid cache ttl %v: must not be negative", c.Cache.TTL.Duration))
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errors = append(errors, err.Error())
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.Log.Format))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
