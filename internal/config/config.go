package config // package config loads application configuration from environment variables

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// CacheDescriptorEnv is the variable the orchestrator injects with the
// address of the shared cache.
const CacheDescriptorEnv = "ConnectionStrings__shared-cache"

// Config holds all runtime configuration values. Every field is optional:
// a process started with an empty environment still serves all routes.
type Config struct {
	Port            string `env:"PORT" envDefault:"5000"`              // HTTP port to listen on
	CacheDescriptor string `env:"ConnectionStrings__shared-cache"`     // [scheme://]host:port of the cache
	CounterKey      string `env:"COUNTER_KEY" envDefault:"go-counter"` // redis key holding the counter
	RabbitURL       string `env:"RABBITMQ_URL"`                        // broker for counter events
	AMQPURL         string `env:"AMQP_URL"`                            // fallback name for RabbitURL
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`         // debug, info, warn or error
	LogFile         string `env:"LOG_FILE"`                            // optional JSON log sink
	CounterLogDir   string `env:"COUNTER_LOG_DIR" envDefault:"logs"`   // consumer output directory
}

// Load reads a .env file when one exists and then parses the environment.
// Variables already set in the process take precedence over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BrokerURL returns the RabbitMQ URL, preferring RABBITMQ_URL over AMQP_URL.
// An empty result means counter events are disabled.
func (c Config) BrokerURL() string {
	if c.RabbitURL != "" {
		return c.RabbitURL
	}
	return c.AMQPURL
}

// SlogLevel maps LogLevel onto a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
