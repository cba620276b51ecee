package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application settings loaded from environment variables.
type Config struct {
	Port            string
	LogLevel        string
	LogFormat       string
	LogFile         string
	ShutdownTimeout time.Duration
	SeedSampleData  bool
}

// Load reads configuration from the environment (and a .env file when
// present) and returns it, or an error if values are invalid.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	seed, err := parseBool("SEED_SAMPLE_DATA", true)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            envOrDefault("PORT", "8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		LogFile:         envOrDefault("LOG_FILE", ""),
		ShutdownTimeout: shutdownTimeout,
		SeedSampleData:  seed,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseShutdownTimeout() (time.Duration, error) {
	raw := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", raw)
	}
	return d, nil
}

func parseBool(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
