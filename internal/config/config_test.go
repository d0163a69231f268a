package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func validConfig() Config {
	return Config{
		Port:        "8080",
		DataBackend: BackendSQLite,
		DBPath:      "./data/test.db",
		RedisAddr:   "localhost:6379",
		Env:         "dev",
		Location:    time.UTC,
		Language:    language.BrazilianPortuguese,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(c *Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid sqlite config",
			modify: func(c *Config) {},
		},
		{
			name:   "valid memory config without db path",
			modify: func(c *Config) { c.DataBackend = BackendMemory; c.DBPath = "" },
		},
		{
			name:        "invalid port - non-numeric",
			modify:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			modify:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid data backend",
			modify:      func(c *Config) { c.DataBackend = "postgres" },
			wantErr:     true,
			errorString: "invalid data backend 'postgres'",
		},
		{
			name:        "sqlite backend missing database path",
			modify:      func(c *Config) { c.DBPath = "" },
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
		{
			name:        "sqlite path is a directory",
			modify:      func(c *Config) { c.DBPath = "./data/" },
			wantErr:     true,
			errorString: "must name a file",
		},
		{
			name:        "redis backend missing address",
			modify:      func(c *Config) { c.DataBackend = BackendRedis; c.RedisAddr = "" },
			wantErr:     true,
			errorString: "redis address cannot be empty",
		},
		{
			name:        "invalid env",
			modify:      func(c *Config) { c.Env = "staging" },
			wantErr:     true,
			errorString: "invalid env 'staging'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %q, want to contain %q", err.Error(), tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "0"
	cfg.DataBackend = "mongo"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"invalid port 0", "invalid data backend 'mongo'"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err.Error(), want)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "DATA_BACKEND", "DB_PATH", "LOCALE", "LOG_LEVEL", "ENV", "SENTRY_DSN"} {
		t.Setenv(key, "")
	}
	t.Setenv("TZ", "UTC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.DataBackend != BackendSQLite {
		t.Errorf("DataBackend = %s, want sqlite", cfg.DataBackend)
	}
	if cfg.Location.String() != "UTC" {
		t.Errorf("Location = %s, want UTC", cfg.Location)
	}
	if cfg.Language != language.BrazilianPortuguese {
		t.Errorf("Language = %s, want pt-BR", cfg.Language)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %s, want :8080", cfg.Addr())
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("TZ", "UTC")
	t.Setenv("PORT", "9090")
	// godotenv never overrides a variable that exists, even when empty.
	t.Setenv("DATA_BACKEND", "")
	os.Unsetenv("DATA_BACKEND")

	content := "DATA_BACKEND=memory\nPORT=7070\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DataBackend != BackendMemory {
		t.Errorf("DataBackend = %s, want memory from .env", cfg.DataBackend)
	}
	// The environment wins over .env.
	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
}

func TestLoad_InvalidTimeZone(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TZ", "Mars/Olympus_Mons")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "invalid TZ") {
		t.Errorf("Load() error = %v, want invalid TZ", err)
	}
}
