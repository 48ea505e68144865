package config

import (
	"os"
	"time"
)

// Timeouts holds the per-request deadlines applied by the provider client.
// These values can be customized via environment variables.
type Timeouts struct {
	List         time.Duration // Timeout for listing servers
	ServerCreate time.Duration // Timeout for creating a server, including its create action
	Delete       time.Duration // Timeout for deleting a server, including its delete action
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - HCLOUD_TIMEOUT_LIST (default: 1m)
//   - HCLOUD_TIMEOUT_SERVER_CREATE (default: 10m)
//   - HCLOUD_TIMEOUT_DELETE (default: 5m)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		List:         parseDuration("HCLOUD_TIMEOUT_LIST", 1*time.Minute),
		ServerCreate: parseDuration("HCLOUD_TIMEOUT_SERVER_CREATE", 10*time.Minute),
		Delete:       parseDuration("HCLOUD_TIMEOUT_DELETE", 5*time.Minute),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}

	return d
}
