package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration. Loading order: built-in defaults,
// then an optional YAML config file, then environment variables prefixed
// with FITSTORE_ (e.g. FITSTORE_DATABASE_PATH). Immutable after Load.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr      string `koanf:"addr"`
	RateLimit int    `koanf:"rate_limit"` // requests per minute per IP; 0 disables
}

// DatabaseConfig holds datastore settings. The datastore is an already
// ingested SQLite file; this service only reads it (plus its own quartile
// cache table).
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// AuthConfig enables bearer-JWT authentication on the API when Secret is
// set.
type AuthConfig struct {
	Secret string `koanf:"secret"`
	Issuer string `koanf:"issuer"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level string `koanf:"level"`
}

func defaults() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080", RateLimit: 600},
		Database: DatabaseConfig{Path: "./data/fitstore.db"},
		Auth:     AuthConfig{Issuer: "fitstore"},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from defaults, an optional config file and the
// environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider("FITSTORE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "FITSTORE_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database path must not be empty")
	}

	return &cfg, nil
}
