package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// apiKeyEnvVars is the credential lookup order: the canonical name first,
// then the names older deployments exported. First non-empty value wins.
var apiKeyEnvVars = []string{"GEMINI_API_KEY", "API_KEY", "VITE_GEMINI_API_KEY"}

// Config holds all configuration for the application. It is loaded once at
// startup; nothing re-reads the environment afterwards.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Storage configuration
	StorageBackend string
	DataDir        string
	StorageLatency time.Duration

	// Redis configuration (only used with the redis backend)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Generation API configuration. APIKey empty means "not configured";
	// the AI gateway fails fast on it instead of attempting a call.
	GeminiAPIKey string
	GeminiAPIURL string
	GeminiModel  string
}

// LoadConfig builds a Config from environment variables, applying
// development defaults for anything unset.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:     getEnv("PORT", "8080"),
		ServerHost:     getEnv("HOST", "0.0.0.0"),
		StorageBackend: getEnv("STORAGE_BACKEND", BackendFile),
		DataDir:        getEnv("DATA_DIR", "./data"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		GeminiAPIKey:   resolveAPIKey(),
		GeminiAPIURL:   getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = db
	}

	if v := os.Getenv("STORAGE_LATENCY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: invalid STORAGE_LATENCY %q: %w", v, err)
		}
		cfg.StorageLatency = d
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// HasAPIKey reports whether a generation credential was resolved at startup.
func (c *Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}

// resolveAPIKey walks the known credential variable names in priority order.
func resolveAPIKey() string {
	for _, name := range apiKeyEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
