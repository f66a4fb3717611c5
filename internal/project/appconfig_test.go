package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cargostow/internal/geometry"
	"github.com/piwi3910/cargostow/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.Engine.DefaultPreferredZone = "Storage_Bay"
	cfg.Theme = "dark"
	cfg.RecentJobs = []string{"resupply-7", "habitat-a"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if loaded.Engine.DefaultPreferredZone != "Storage_Bay" {
		t.Errorf("expected DefaultPreferredZone=Storage_Bay, got %s", loaded.Engine.DefaultPreferredZone)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if len(loaded.RecentJobs) != 2 || loaded.RecentJobs[0] != "resupply-7" {
		t.Errorf("recent jobs did not round-trip: %v", loaded.RecentJobs)
	}
}

func TestLoadAppConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "nonexistent", "config.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
	if cfg.RecentJobs == nil {
		t.Error("RecentJobs should never be nil")
	}
}

func TestLoadAppConfigAppliesToleranceOverride(t *testing.T) {
	defer geometry.ResetTolerance()
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.Engine.ToleranceOverride = 1e-4
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	if _, err := LoadAppConfig(path); err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if geometry.TOL != 1e-4 {
		t.Errorf("expected tolerance override applied, got %g", geometry.TOL)
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestRecordRecentJobDeduplicatesAndCaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	for i := 0; i < maxRecentJobs+3; i++ {
		name := string(rune('a' + i))
		if err := RecordRecentJob(path, name); err != nil {
			t.Fatalf("RecordRecentJob failed: %v", err)
		}
	}
	if err := RecordRecentJob(path, "a"); err != nil {
		t.Fatalf("RecordRecentJob failed: %v", err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if len(cfg.RecentJobs) > maxRecentJobs {
		t.Errorf("recent jobs exceed cap: %d", len(cfg.RecentJobs))
	}
	if cfg.RecentJobs[0] != "a" {
		t.Errorf("most recent job should be first, got %v", cfg.RecentJobs)
	}
	seen := map[string]bool{}
	for _, n := range cfg.RecentJobs {
		if seen[n] {
			t.Errorf("duplicate recent job %q", n)
		}
		seen[n] = true
	}
}
