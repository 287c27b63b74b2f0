package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"justmeditation/internal/core/model"
	"justmeditation/internal/platform"
	"justmeditation/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	DurationMinutes     int     `yaml:"duration_minutes"`
	BellIntervalMinutes float64 `yaml:"bell_interval_minutes"`
	Ambient             string  `yaml:"ambient"`
	SoundsDir           string  `yaml:"sounds_dir,omitempty"`
	Player              string  `yaml:"player,omitempty"`
	Verbose             bool    `yaml:"verbose,omitempty"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// LoadSettingsFile reads preferences from an explicit path.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
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
	return settings.Normalized(), nil
}

// SaveSettingsFile writes preferences to an explicit path.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := MarshalSettings(settings)
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// MarshalSettings renders preferences in the settings file format.
func MarshalSettings(settings preferences.Settings) ([]byte, error) {
	settings = settings.Normalized()
	fileData := yamlSettings{
		DurationMinutes:     settings.DurationMinutes,
		BellIntervalMinutes: settings.BellIntervalMinutes,
		Ambient:             string(settings.Ambient),
		SoundsDir:           settings.SoundsDir,
		Player:              settings.Player,
		Verbose:             settings.Verbose,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return serialized, nil
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := ConfigDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, settingsFileName), nil
}

// ConfigDir returns the per-user configuration directory for appName.
func ConfigDir(appName string) (string, error) {
	return platform.ConfigDir(appName)
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.DurationMinutes > 0 {
		settings.DurationMinutes = fileData.DurationMinutes
	}
	if fileData.BellIntervalMinutes > 0 {
		settings.BellIntervalMinutes = fileData.BellIntervalMinutes
	}
	if fileData.Ambient != "" {
		settings.Ambient = model.ParseAmbient(fileData.Ambient)
	}

	settings.SoundsDir = fileData.SoundsDir
	settings.Player = fileData.Player
	settings.Verbose = fileData.Verbose
}
