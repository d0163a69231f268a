// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Storage backends accepted by DATA_BACKEND.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

var validBackends = []string{BackendMemory, BackendSQLite, BackendRedis}

type Config struct {
	// HTTP server
	Port string

	// Storage
	DataBackend string
	DBPath      string
	RedisAddr   string
	RedisPrefix string

	// Calendar and formatting
	TimeZone string
	Location *time.Location // Calendar days are taken in this location
	Locale   string
	Language language.Tag // Name collation and number formatting

	// Observability
	LogLevel  string
	Env       string // dev|prod
	SentryDSN string
}

// Load reads configuration from the environment. Variables in a .env file in
// the working directory are loaded first without overriding the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		DataBackend: strings.ToLower(getEnv("DATA_BACKEND", BackendSQLite)),
		DBPath:      getEnv("DB_PATH", "./data/prorata.db"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPrefix: getEnv("REDIS_PREFIX", "prorata:"),

		TimeZone: getEnv("TZ", "America/Sao_Paulo"),
		Locale:   getEnv("LOCALE", "pt-BR"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Env:       getEnv("ENV", "dev"),
		SentryDSN: os.Getenv("SENTRY_DSN"),
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve parses the time zone and locale names.
func (c *Config) resolve() error {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid TZ %q: %w", c.TimeZone, err)
	}
	c.Location = loc

	tag, err := language.Parse(c.Locale)
	if err != nil {
		return fmt.Errorf("invalid LOCALE %q: %w", c.Locale, err)
	}
	c.Language = tag
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case BackendSQLite:
		if c.DBPath == "" {
			errs = append(errs, "database path cannot be empty when using sqlite backend")
		} else if filepath.Ext(c.DBPath) == "" {
			errs = append(errs, fmt.Sprintf("database path '%s' must name a file", c.DBPath))
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			errs = append(errs, "redis address cannot be empty when using redis backend")
		}
	}

	if c.Env != "dev" && c.Env != "prod" {
		errs = append(errs, fmt.Sprintf("invalid env '%s': must be dev or prod", c.Env))
	}

	if c.Location == nil {
		errs = append(errs, "location is not set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
