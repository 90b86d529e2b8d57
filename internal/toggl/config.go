package toggl

import (
	"os"
	"strconv"
)

// Config holds connection settings for the Toggl Track API.
type Config struct {
	Token      string
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults. The token is empty
// and must come from the environment, a .env file, a flag, or the prompt.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://api.track.toggl.com/api/v9",
		TimeoutMs:  15000,
		MaxRetries: 1,
	}
}

// LoadConfig reads Toggl configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TOGGL_API_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("TOGGL_API_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("OVERTIME_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("OVERTIME_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("OVERTIME_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
