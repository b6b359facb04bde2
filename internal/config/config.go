package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Alias1177/heartform/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Defaults used when the environment does not override them
const (
	DefaultPageOrigin           = "null"
	DefaultBackendURL           = "http://127.0.0.1:5000/predict"
	DefaultRequestTimeout       = 30
	DefaultRequestsPerSec       = 5
	DefaultValidationClearDelay = 2000 * time.Millisecond
	DefaultBackendWaitTimeout   = 30
)

// Load initializes configuration from environment variables
func Load() (*models.Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg models.Config

	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.LogFile = getEnvWithDefault("LOG_FILE", "heartform.log")
	cfg.PageOrigin = getEnvWithDefault("PAGE_ORIGIN", DefaultPageOrigin)
	cfg.BackendURL = getEnvWithDefault("BACKEND_URL", DefaultBackendURL)
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", DefaultRequestTimeout)
	cfg.RequestsPerSec = getEnvIntWithDefault("REQUESTS_PER_SEC", DefaultRequestsPerSec)
	cfg.ValidationClearDelay = getEnvMillisWithDefault("VALIDATION_CLEAR_DELAY_MS", DefaultValidationClearDelay)
	cfg.BackendWaitTimeout = getEnvIntWithDefault("BACKEND_WAIT_TIMEOUT", DefaultBackendWaitTimeout)

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvMillisWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if ms, err := strconv.Atoi(value); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}
