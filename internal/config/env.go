package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from TASKER_* environment variables and
// records them as SourceEnv.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setString := func(env, field string, target *string) {
		if v := os.Getenv(env); v != "" {
			*target = v
			sources[field] = SourceEnv
		}
	}
	setBool := func(env, field string, target *bool) {
		if v := os.Getenv(env); v != "" {
			*target = boolFromString(v)
			sources[field] = SourceEnv
		}
	}

	setString("TASKER_SNAPSHOT", "snapshot_file", &cfg.SnapshotFile)
	setString("TASKER_LOG_LEVEL", "log_level", &cfg.LogLevel)
	setString("TASKER_LOG_FORMAT", "log_format", &cfg.LogFormat)
	setBool("TASKER_LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps)
	setBool("TASKER_LOG_CALLER", "log_caller", &cfg.LogCaller)
	setString("TASKER_LOG_DIR", "log_dir", &cfg.LogDir)
	setBool("TASKER_LOG_TO_FILE", "log_to_file", &cfg.LogToFile)
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
