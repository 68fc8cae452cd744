package config

import (
	"os"
	"time"
)

// Timeouts holds configurable timeout values.
type Timeouts struct {
	// Request bounds each API call. Zero leaves the HTTP client without a
	// timeout, matching the transport default.
	Request time.Duration
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - TGPROV_TIMEOUT_REQUEST (default: 0, no timeout)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Request: parseDuration("TGPROV_TIMEOUT_REQUEST", 0),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set, fails to parse or is negative, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return defaultVal
	}

	return d
}
