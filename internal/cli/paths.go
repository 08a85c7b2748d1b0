package cli

import (
	"os"
	"path/filepath"
)

// appName is the application name used for config and cache directories.
const appName = "jsoncanvas"

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/jsoncanvas by default).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the config file location using the XDG standard
// (~/.config/jsoncanvas/config.toml by default).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
