package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasker configuration file
# Values can be overridden by TASKER_* environment variables or CLI flags

# Snapshot file used when a save/load prompt is left empty
# (relative to the working directory, supports ~ expansion)
snapshot_file = "tasks.json"

# Log level: debug, info, warn, error
log_level = "info"

# Log format: text, json, logfmt
log_format = "text"

# Show timestamps and caller location in log lines
log_timestamps = false
log_caller = false

# Write a JSON log file per session under log_dir
log_to_file = false
log_dir = "~/.tasker"
`
}
