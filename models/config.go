package models

import "time"

// Config is filled by internal/config from the environment
type Config struct {
	LogLevel             string
	LogFile              string
	PageOrigin           string
	BackendURL           string
	RequestTimeout       int // seconds
	RequestsPerSec       int
	ValidationClearDelay time.Duration // VALIDATION_CLEAR_DELAY_MS
	BackendWaitTimeout   int           // seconds
}
