// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "QUICKMATHS_CONFIG"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "quickmaths", "config.toml")
}

// ResolvePath picks the config path: an explicit path first, then
// $QUICKMATHS_CONFIG, then the XDG default.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(EnvConfigPath); v != "" {
		return v
	}
	return DefaultConfigPath()
}
