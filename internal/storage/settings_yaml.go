package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"livespiff/internal/frontend"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "ui.yaml"

type yamlSettings struct {
	AlwaysOnTop bool `yaml:"always_on_top"`
	RefreshMs   int  `yaml:"refresh_ms"`

	WindowID    string `yaml:"window_id,omitempty"`
	ClassName   string `yaml:"classname,omitempty"`
	WindowTitle string `yaml:"title,omitempty"`
	PID         int    `yaml:"pid"`
}

// LoadSettings reads front-end preferences from YAML.
// If the settings file does not exist, default settings are returned.
func LoadSettings(path string) (frontend.Settings, error) {
	settings := frontend.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes front-end preferences to YAML.
func SaveSettings(path string, settings frontend.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		AlwaysOnTop: settings.AlwaysOnTop,
		RefreshMs:   int(settings.RefreshInterval / time.Millisecond),
		WindowID:    settings.PickedWindowID,
		ClassName:   settings.PickedClassName,
		WindowTitle: settings.PickedWindowTitle,
		PID:         settings.PickedPID,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *frontend.Settings, fileData yamlSettings) {
	settings.AlwaysOnTop = fileData.AlwaysOnTop
	if fileData.RefreshMs > 0 {
		settings.RefreshInterval = time.Duration(fileData.RefreshMs) * time.Millisecond
	}
	settings.ClampRefresh()

	settings.PickedWindowID = fileData.WindowID
	settings.PickedClassName = fileData.ClassName
	settings.PickedWindowTitle = fileData.WindowTitle
	if fileData.PID != 0 {
		settings.PickedPID = fileData.PID
	}
}
