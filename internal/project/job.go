package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/cargostow/internal/model"
)

// DefaultJobsDir returns the directory saved jobs are kept in:
// ~/.cargostow/jobs/
func DefaultJobsDir() string {
	return filepath.Join(DefaultConfigDir(), "jobs")
}

// JobPath returns the path a job with the given name would be saved
// under.
func JobPath(name string) string {
	return filepath.Join(DefaultJobsDir(), name+".json")
}

// SaveJob persists a Job as indented JSON under DefaultJobsDir,
// creating the directory if needed.
func SaveJob(job *model.Job) error {
	if job.Name == "" {
		return fmt.Errorf("job has no name")
	}
	if err := os.MkdirAll(DefaultJobsDir(), 0755); err != nil {
		return fmt.Errorf("failed to create jobs directory: %w", err)
	}
	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	if err := os.WriteFile(JobPath(job.Name), data, 0644); err != nil {
		return fmt.Errorf("failed to write job file: %w", err)
	}
	return nil
}

// LoadJob reads a previously saved job by name.
func LoadJob(name string) (*model.Job, error) {
	data, err := os.ReadFile(JobPath(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read job %q: %w", name, err)
	}
	var job model.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job %q: %w", name, err)
	}
	return &job, nil
}

// ListJobs returns the names of every job saved under DefaultJobsDir.
func ListJobs() ([]string, error) {
	entries, err := os.ReadDir(DefaultJobsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list jobs directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".json" {
			continue
		}
		names = append(names, e.Name()[:len(e.Name())-len(ext)])
	}
	return names, nil
}

// DeleteJob removes a saved job by name. Deleting a job that does not
// exist is not an error.
func DeleteJob(name string) error {
	if err := os.Remove(JobPath(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete job %q: %w", name, err)
	}
	return nil
}
