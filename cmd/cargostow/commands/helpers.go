package commands

import (
	"fmt"
	"os"

	"github.com/piwi3910/cargostow/internal/importer"
	"github.com/piwi3910/cargostow/internal/model"
	"github.com/piwi3910/cargostow/internal/project"
	"github.com/piwi3910/cargostow/internal/stowage"
)

// loadItemsCSV reads and parses an items CSV file, returning an error
// that names the file on a read failure or that joins every row error
// the importer collected.
func loadItemsCSV(path string) ([]stowage.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading items CSV %s: %w", path, err)
	}
	result := importer.ImportItems(data)
	if len(result.Errors) > 0 {
		return result.Items, fmt.Errorf("items CSV %s had %d invalid row(s): %v", path, len(result.Errors), result.Errors)
	}
	return result.Items, nil
}

// loadContainersCSV reads and parses a containers CSV file.
func loadContainersCSV(path string) ([]*stowage.Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading containers CSV %s: %w", path, err)
	}
	result := importer.ImportContainers(data)
	if len(result.Errors) > 0 {
		return result.Containers, fmt.Errorf("containers CSV %s had %d invalid row(s): %v", path, len(result.Errors), result.Errors)
	}
	return result.Containers, nil
}

// buildJob assembles a Job from items/containers CSV paths, naming it
// jobName. An empty jobName yields an unsaved, throwaway job. The
// process-wide AppConfig is loaded and applied: a configured tolerance
// override takes effect in internal/geometry, and a configured default
// preferred zone fills in any item that omitted one.
func buildJob(jobName, itemsPath, containersPath string) (*model.Job, error) {
	items, err := loadItemsCSV(itemsPath)
	if err != nil {
		return nil, err
	}
	containers, err := loadContainersCSV(containersPath)
	if err != nil {
		return nil, err
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("loading app config: %w", err)
	}

	job := model.NewJob(jobName)
	job.Settings = cfg.Engine
	job.Items = cfg.Engine.ApplyDefaultZone(items)
	job.Containers = containers
	return job, nil
}
