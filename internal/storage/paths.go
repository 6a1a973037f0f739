package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "livespiff"

// ConfigDir returns the per-user configuration directory,
// e.g. ~/.config/livespiff.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// DataDir returns the per-user data directory,
// e.g. ~/.local/share/livespiff.
func DataDir() (string, error) {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}

// RunsDir returns the directory holding run documents,
// e.g. ~/.local/share/livespiff/runs.
func RunsDir() (string, error) {
	data, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(data, "runs"), nil
}

// DefaultRunPath returns the location of the default run document.
func DefaultRunPath() (string, error) {
	runs, err := RunsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runs, "default.json"), nil
}

// SettingsPath returns the location of the front-end settings file.
func SettingsPath() (string, error) {
	config, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(config, settingsFileName), nil
}
