package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings read from the environment. Formula
// calibration is fixed and deliberately absent here.
type Config struct {
	// LogEvents writes one structured record per use case to stderr.
	LogEvents bool
}

func DefaultConfig() Config {
	return Config{LogEvents: false}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for unset or unparsable values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("VELOCITY_LOG_EVENTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogEvents = b
		}
	}

	return cfg
}
