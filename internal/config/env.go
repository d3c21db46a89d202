package config

import (
	"fmt"
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("KANBAN_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("KANBAN_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("KANBAN_KEY"); v != "" {
		cfg.Key = v
	}
	if v := os.Getenv("KANBAN_DATE_LOCALE"); v != "" {
		cfg.DateLocale = v
	}

	// Redis
	if v := os.Getenv("KANBAN_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("KANBAN_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("KANBAN_REDIS_DB"); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
			cfg.Redis.DB = i
		}
	}
	if v := os.Getenv("KANBAN_REDIS_PREFIX"); v != "" {
		cfg.Redis.Prefix = v
	}

	// Logging configuration
	if v := os.Getenv("KANBAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KANBAN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("KANBAN_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
	if v := os.Getenv("KANBAN_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
	}
	if v := os.Getenv("KANBAN_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
