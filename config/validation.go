package config

import (
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the loaded configuration for values the server
// cannot start with.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "PORT", Message: "must not be empty"}
	}
	switch cfg.StorageBackend {
	case BackendFile:
		if cfg.DataDir == "" {
			return ValidationError{Field: "DATA_DIR", Message: "required for the file backend"}
		}
	case BackendRedis:
		if cfg.RedisAddr == "" {
			return ValidationError{Field: "REDIS_ADDR", Message: "required for the redis backend"}
		}
	default:
		return ValidationError{
			Field:   "STORAGE_BACKEND",
			Message: fmt.Sprintf("unknown backend %q (want %s or %s)", cfg.StorageBackend, BackendFile, BackendRedis),
		}
	}
	if cfg.StorageLatency < 0 {
		return ValidationError{Field: "STORAGE_LATENCY", Message: "must not be negative"}
	}
	return nil
}
