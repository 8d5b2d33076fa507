package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const appName = "tasker"

// configFileNames lists accepted config file names in lookup order.
var configFileNames = []string{"tasker.toml", "tasker.yaml", "tasker.yml"}

// findProjectConfigFile looks for a config file in the current directory.
// Plain names win over dotted ones, TOML over YAML.
func findProjectConfigFile() string {
	for _, name := range configFileNames {
		for _, candidate := range []string{name, "." + name} {
			if isFile(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// findUserConfigFile looks for a user-level config file.
// Checks ~/.tasker/ first, then the OS-specific config directory.
func findUserConfigFile() string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "."+appName))
	}
	if cfgDir := osUserConfigDir(); cfgDir != "" {
		dirs = append(dirs, filepath.Join(cfgDir, appName))
	}

	for _, dir := range dirs {
		for _, name := range configFileNames {
			if p := filepath.Join(dir, name); isFile(p) {
				return p
			}
		}
	}
	return ""
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// osUserConfigDir returns the OS-specific user config directory,
// or "" if it cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return os.Getenv("APPDATA")
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "linux", "openbsd", "freebsd", "netbsd":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// expandPath expands environment variables and a leading ~ in p.
// On Windows %VAR% references and ~\ prefixes are expanded too.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		expanded = expandWindowsEnv(expanded)
	}

	if expanded == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return expanded
	}
	if strings.HasPrefix(expanded, "~/") || (runtime.GOOS == "windows" && strings.HasPrefix(expanded, `~\`)) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, expanded[2:])
		}
	}
	return expanded
}

// expandWindowsEnv replaces %VAR% with its value. Unknown variables are left as-is.
func expandWindowsEnv(p string) string {
	if !strings.Contains(p, "%") {
		return p
	}
	var b strings.Builder
	for i := 0; i < len(p); {
		if p[i] != '%' {
			b.WriteByte(p[i])
			i++
			continue
		}
		end := strings.IndexByte(p[i+1:], '%')
		if end < 0 {
			b.WriteString(p[i:])
			break
		}
		key := p[i+1 : i+1+end]
		if val, ok := os.LookupEnv(key); ok && key != "" {
			b.WriteString(val)
		} else {
			b.WriteString(p[i : i+end+2])
		}
		i += end + 2
	}
	return b.String()
}
