// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.tasker/tasker.toml or OS-specific config directory)
// 3. Project config file (tasker.toml or .tasker.toml in the working directory)
// 4. Environment variables (TASKER_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
// Config files may be TOML (tasker.toml) or YAML (tasker.yaml, tasker.yml);
// TOML is picked when both exist in the same directory. Unknown keys are
// an error in either format.
//
// User-level config locations:
// - ~/.tasker/tasker.toml (preferred)
// - Windows: %APPDATA%\tasker\tasker.toml
// - macOS: ~/Library/Application Support/tasker/tasker.toml
// - Linux/BSD: $XDG_CONFIG_HOME/tasker/tasker.toml or ~/.config/tasker/tasker.toml
//
// Project-level config locations (overrides user config):
// - ./tasker.toml (preferred)
// - ./.tasker.toml
package config
