// Package model holds process-wide configuration that the core packing
// engine never imports: engine defaults and user preferences persisted
// by internal/project.
package model

import (
	"github.com/piwi3910/cargostow/internal/geometry"
	"github.com/piwi3910/cargostow/internal/stowage"
)

// EngineConfig holds default settings applied to new packing jobs.
type EngineConfig struct {
	DefaultPreferredZone string  `json:"default_preferred_zone"` // used when an item omits one
	ToleranceOverride    float64 `json:"tolerance_override"`     // 0 = use the engine default TOL
}

// ApplyTolerance pushes a configured override into internal/geometry's
// process-wide comparison tolerance. A non-positive ToleranceOverride
// is a no-op, leaving geometry.TOL at its default.
func (c EngineConfig) ApplyTolerance() {
	if c.ToleranceOverride > 0 {
		geometry.SetTolerance(c.ToleranceOverride)
	}
}

// ApplyDefaultZone returns a copy of items with DefaultPreferredZone
// filled in on any item that didn't specify its own PreferredZone. The
// input slice is left untouched; an empty DefaultPreferredZone is a
// no-op.
func (c EngineConfig) ApplyDefaultZone(items []stowage.Item) []stowage.Item {
	if c.DefaultPreferredZone == "" {
		return items
	}
	out := make([]stowage.Item, len(items))
	for i, it := range items {
		if it.PreferredZone == "" {
			it.PreferredZone = c.DefaultPreferredZone
		}
		out[i] = it
	}
	return out
}

// DefaultEngineConfig returns an EngineConfig populated with sensible defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		DefaultPreferredZone: "",
		ToleranceOverride:    0,
	}
}

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	Engine EngineConfig `json:"engine"`

	// Application preferences
	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentJobs       []string `json:"recent_jobs"`
	Theme            string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Engine:           DefaultEngineConfig(),
		AutoSaveInterval: 0,
		RecentJobs:       []string{},
		Theme:            "system",
	}
}
