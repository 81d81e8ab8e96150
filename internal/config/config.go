// Package config loads application configuration from the environment,
// with an optional .env file.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	DataDir     string
	LogDir      string
}

// Load reads configuration from environment variables, falling back to an
// .env file if one exists, then to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("DIETMAN_ENV", "development"),
		DataDir:     getEnv("DIETMAN_DATA_DIR", "data"),
		LogDir:      getEnv("DIETMAN_LOG_DIR", "logs"),
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
