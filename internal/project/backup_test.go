package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cargostow/internal/model"
	"github.com/piwi3910/cargostow/internal/stowage"
)

func TestExportAndImportAllDataRoundTripsJobs(t *testing.T) {
	withTempHome(t)
	backupPath := filepath.Join(t.TempDir(), "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.Engine.DefaultPreferredZone = "Airlock"

	job := model.NewJob("habitat-b")
	job.Items = []stowage.Item{
		{ID: "i1", Name: "O2 Filter", Width: 20, Depth: 20, Height: 20, Mass: 4, Priority: 9, PreferredZone: "Airlock"},
	}
	job.Containers = []*stowage.Container{
		stowage.NewContainer("c1", "Airlock", 100, 100, 100),
	}
	if err := SaveJob(job); err != nil {
		t.Fatalf("SaveJob failed: %v", err)
	}

	if err := ExportAllData(backupPath, cfg); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	// Restore into a fresh home to prove the backup is self-contained.
	withTempHome(t)
	backup, err := ImportAllData(backupPath, DefaultConfigPath())
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.Config.Engine.DefaultPreferredZone != "Airlock" {
		t.Errorf("config did not round-trip: %+v", backup.Config)
	}
	if len(backup.Jobs) != 1 {
		t.Fatalf("expected 1 job in backup, got %d", len(backup.Jobs))
	}

	restored, err := LoadJob("habitat-b")
	if err != nil {
		t.Fatalf("restored job not loadable: %v", err)
	}
	if len(restored.Items) != 1 || restored.Items[0].ID != "i1" {
		t.Errorf("job items did not survive restore: %+v", restored.Items)
	}
	if len(restored.Containers) != 1 || restored.Containers[0].Zone != "Airlock" {
		t.Errorf("job containers did not survive restore: %+v", restored.Containers)
	}

	loadedCfg, err := LoadAppConfig(DefaultConfigPath())
	if err != nil {
		t.Fatalf("restored config not loadable: %v", err)
	}
	if loadedCfg.Engine.DefaultPreferredZone != "Airlock" {
		t.Errorf("restored config lost engine settings: %+v", loadedCfg.Engine)
	}
}

func TestExportAllDataWithNoSavedJobs(t *testing.T) {
	withTempHome(t)
	backupPath := filepath.Join(t.TempDir(), "backup.json")

	if err := ExportAllData(backupPath, model.DefaultAppConfig()); err != nil {
		t.Fatalf("ExportAllData with no jobs failed: %v", err)
	}

	backup, err := ImportAllData(backupPath, DefaultConfigPath())
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if len(backup.Jobs) != 0 {
		t.Errorf("expected no jobs, got %d", len(backup.Jobs))
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	withTempHome(t)
	_, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json"), DefaultConfigPath())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	withTempHome(t)
	path := filepath.Join(t.TempDir(), "noversion.json")
	if err := os.WriteFile(path, []byte(`{"config":{"theme":"dark"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportAllData(path, DefaultConfigPath()); err == nil {
		t.Fatal("expected error for missing version")
	}
}
