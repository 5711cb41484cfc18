package config

import (
	"os"
	"strconv"

	"gomonte/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Simulation SimulationConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds database connection settings. URL may be empty, in
// which case run records are kept in memory only.
type DatabaseConfig struct {
	URL string
}

// SimulationConfig holds simulation defaults and limits
type SimulationConfig struct {
	DefaultSeed    int64
	DefaultSamples int
	MaxSamples     int
	Workers        int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Simulation: SimulationConfig{
			DefaultSeed:    getEnvInt64("SIM_DEFAULT_SEED", 1000),
			DefaultSamples: getEnvInt("SIM_DEFAULT_SAMPLES", 20000),
			MaxSamples:     getEnvInt("SIM_MAX_SAMPLES", 10_000_000),
			Workers:        getEnvInt("SIM_WORKERS", 4),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if c.Simulation.DefaultSamples < 1 {
		return errors.ConfigInvalid("SIM_DEFAULT_SAMPLES must be positive")
	}
	if c.Simulation.MaxSamples < c.Simulation.DefaultSamples {
		return errors.ConfigInvalid("SIM_MAX_SAMPLES must be >= SIM_DEFAULT_SAMPLES")
	}
	if c.Simulation.Workers < 1 {
		return errors.ConfigInvalid("SIM_WORKERS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
