package model

import "testing"

func TestDefaultAppConfigDefaults(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.RecentJobs == nil {
		t.Error("RecentJobs should not be nil")
	}
	if cfg.Engine.DefaultPreferredZone != "" {
		t.Errorf("expected empty default preferred zone, got %q", cfg.Engine.DefaultPreferredZone)
	}
	if cfg.Engine.ToleranceOverride != 0 {
		t.Errorf("expected zero tolerance override, got %f", cfg.Engine.ToleranceOverride)
	}
}

func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultEngineConfig()
	if cfg.ToleranceOverride != 0 {
		t.Errorf("expected zero tolerance override, got %f", cfg.ToleranceOverride)
	}
}
