package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/cargostow/internal/model"
)

// backupVersion is bumped whenever the backup file's schema changes.
const backupVersion = "1.0.0"

// BackupData bundles the app config and every saved job into a single
// file, for moving a workstation's stowage state between machines.
type BackupData struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Config    model.AppConfig `json:"config"`
	Jobs      []*model.Job    `json:"jobs"`
}

// ExportAllData writes the app config and every job saved under
// DefaultJobsDir to a single JSON file at exportPath.
func ExportAllData(exportPath string, config model.AppConfig) error {
	names, err := ListJobs()
	if err != nil {
		return fmt.Errorf("listing jobs for backup: %w", err)
	}

	backup := BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
	}
	for _, name := range names {
		job, err := LoadJob(name)
		if err != nil {
			return fmt.Errorf("reading job %q for backup: %w", name, err)
		}
		backup.Jobs = append(backup.Jobs, job)
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(exportPath), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file and restores it: the config is
// written to configPath and every bundled job is saved back under
// DefaultJobsDir, overwriting jobs with the same name. The restored
// BackupData is returned for reporting.
func ImportAllData(importPath, configPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if backup.Config.RecentJobs == nil {
		backup.Config.RecentJobs = []string{}
	}

	if err := SaveAppConfig(configPath, backup.Config); err != nil {
		return BackupData{}, fmt.Errorf("restoring app config: %w", err)
	}
	for _, job := range backup.Jobs {
		if err := SaveJob(job); err != nil {
			return BackupData{}, fmt.Errorf("restoring job %q: %w", job.Name, err)
		}
	}
	return backup, nil
}
