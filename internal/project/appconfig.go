// Package project persists application-wide configuration and saved
// packing jobs as JSON files under a dot-directory in the user's home.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/cargostow/internal/model"
)

// maxRecentJobs bounds the RecentJobs list.
const maxRecentJobs = 10

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.cargostow/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cargostow")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path, applying it to
// the running process: a positive ToleranceOverride is pushed into
// internal/geometry immediately, so every caller that loads the config
// before packing gets the configured tolerance for free. If the file
// does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentJobs == nil {
		config.RecentJobs = []string{}
	}
	if config.Theme != "light" && config.Theme != "dark" && config.Theme != "system" {
		config.Theme = "system"
	}
	config.Engine.ApplyTolerance()
	return config, nil
}

// RecordRecentJob loads the config at path, pushes name to the front of
// RecentJobs (de-duplicating and capping the list at maxRecentJobs), and
// saves it back. Called after a job is packed or saved so "recent jobs"
// reflects actual stowage activity rather than being dead bookkeeping.
func RecordRecentJob(path, name string) error {
	config, err := LoadAppConfig(path)
	if err != nil {
		return fmt.Errorf("loading app config: %w", err)
	}
	recent := make([]string, 0, maxRecentJobs)
	recent = append(recent, name)
	for _, existing := range config.RecentJobs {
		if existing == name {
			continue
		}
		recent = append(recent, existing)
	}
	if len(recent) > maxRecentJobs {
		recent = recent[:maxRecentJobs]
	}
	config.RecentJobs = recent
	return SaveAppConfig(path, config)
}
