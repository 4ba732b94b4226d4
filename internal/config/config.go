// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env`
// file when present), loads them over built-in defaults into
// structured Go types, and validates them so the app fails fast
// on bad config.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate values so the app fails fast on bad config.
//   - Provide sane defaults so the service runs with no env at all.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into
	// the process env before anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// ServiceName identifies this service in health responses, logs and APM.
const ServiceName = "qrgen"

// EnvPrefix is the prefix every config env var carries.
//
// A double underscore separates nesting levels:
//
//	QRGEN_SERVER__PORT                    -> server.port
//	QRGEN_OBSERVABILITY__LOGGING__LEVEL   -> observability.logging.level
const EnvPrefix = "QRGEN_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"gte=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"gte=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"gte=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// BodyLimit caps POST bodies, in Echo's size notation ("100K", "1M").
	BodyLimit string `koanf:"body_limit" validate:"required"`
}

// DefaultConfig returns the configuration used when no env is set.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			BodyLimit:          "100K",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables over
// DefaultConfig, validates it, and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix QRGEN_
//   - Converts env keys into koanf keys ("__" -> ".")
//   - Unmarshals into Config; keys that are not set keep their defaults
//   - Falls back to plain PORT for the listen port
//   - Validates tags, then observability rules
func LoadConfig() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	// Unmarshal only touches fields present in koanf, so defaults survive.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	// Standard process networking: PORT is honoured unless the prefixed key is set.
	if !k.Exists("server.port") {
		if port := os.Getenv("PORT"); port != "" {
			mainConfig.Server.Port = port
		}
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are not configurable on their own:
	// tracing/logging must see consistent naming.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// envKey maps QRGEN_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}
