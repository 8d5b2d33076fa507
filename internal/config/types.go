package config

import "strconv"

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, in load order.
	Files []string
}

// Default values.
const (
	DefaultSnapshotFile = "tasks.json"
	DefaultLogDir       = "~/.tasker"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// Config holds the full configuration for tasker.
type Config struct {
	// Snapshot file used when a save/load prompt is answered with an empty line
	SnapshotFile string `toml:"snapshot_file" yaml:"snapshot_file"`

	// Logging configuration
	LogLevel      string `toml:"log_level" yaml:"log_level"`
	LogFormat     string `toml:"log_format" yaml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps" yaml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller" yaml:"log_caller"`

	// Session log files
	LogDir    string `toml:"log_dir" yaml:"log_dir"`
	LogToFile bool   `toml:"log_to_file" yaml:"log_to_file"`

	// Working directory (computed)
	ProjectRoot string `toml:"-" yaml:"-"`
}

// configFields returns the configurable field names used for source tracking.
func configFields() []string {
	return []string{
		"snapshot_file",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"log_dir",
		"log_to_file",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.SnapshotFile = DefaultSnapshotFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
	cfg.LogDir = DefaultLogDir
	cfg.LogToFile = false
}

// Entry is one effective configuration value and where it came from.
type Entry struct {
	Name   string
	Value  string
	Source ConfigSource
}

// Entries returns the effective values in a stable order.
func (cws *ConfigWithSources) Entries() []Entry {
	cfg := cws.Config
	values := map[string]string{
		"snapshot_file":  cfg.SnapshotFile,
		"log_level":      cfg.LogLevel,
		"log_format":     cfg.LogFormat,
		"log_timestamps": strconv.FormatBool(cfg.LogTimestamps),
		"log_caller":     strconv.FormatBool(cfg.LogCaller),
		"log_dir":        cfg.LogDir,
		"log_to_file":    strconv.FormatBool(cfg.LogToFile),
	}
	entries := make([]Entry, 0, len(values))
	for _, field := range configFields() {
		entries = append(entries, Entry{Name: field, Value: values[field], Source: cws.Sources[field]})
	}
	return entries
}
