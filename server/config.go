package server

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"flock/searcher"
)

// Config holds the server settings loaded from environment variables.
type Config struct {
	Host        string
	Port        string
	SearchDepth int
}

// LoadConfig reads configuration from the environment, falling back to
// defaults suitable for local play.
func LoadConfig() *Config {
	return &Config{
		Host:        getEnv("FLOCK_SERVER_HOST", "127.0.0.1"),
		Port:        getEnv("FLOCK_SERVER_PORT", "3000"),
		SearchDepth: getEnvInt("FLOCK_SEARCH_DEPTH", searcher.DefaultDepth),
	}
}

// Address returns the host:port listen address.
func (c *Config) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns the integer environment variable or logs a fatal error
// if it is set but not a positive integer.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		log.Fatal().Str("key", key).Str("value", value).Msg("environment variable must be a positive integer")
	}
	return n
}
