package config

import (
	"flag"
)

// flagFields maps flag names to config field names for source tracking.
var flagFields = map[string]string{
	"snapshot":       "snapshot_file",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
	"log-dir":        "log_dir",
	"log-to-file":    "log_to_file",
}

// parseFlags defines the config flags on fs, parses args, and records
// explicitly set flags as SourceFlag.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet(appName, flag.ContinueOnError)
	}

	fs.StringVar(&cfg.SnapshotFile, "snapshot", cfg.SnapshotFile, "Default snapshot file for save/load prompts")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Session log directory")
	fs.BoolVar(&cfg.LogToFile, "log-to-file", cfg.LogToFile, "Also write a JSON session log under the log directory")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if field, ok := flagFields[f.Name]; ok {
			sources[field] = SourceFlag
		}
	})
	return nil
}
