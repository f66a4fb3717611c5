package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/piwi3910/cargostow/internal/stowage"
)

// Job bundles everything a saved packing session needs to resume:
// the item and container set, the engine settings in effect, and the
// outcome of the last pack run, if any.
type Job struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	Settings   EngineConfig         `json:"settings"`
	Items      []stowage.Item       `json:"items"`
	Containers []*stowage.Container `json:"containers"`
	LastResult *JobResult           `json:"last_result,omitempty"`
}

// JobResult mirrors stowage.PackResult in a form that round-trips
// through JSON (PackResult itself is fine to marshal directly, but a
// named type keeps the job file's schema stable if PackResult's shape
// changes).
type JobResult struct {
	PlacedItemIDs   []string  `json:"placed_item_ids"`
	UnplacedItemIDs []string  `json:"unplaced_item_ids"`
	PackedAt        time.Time `json:"packed_at"`
}

// NewJob creates an empty Job with a fresh eight-character ID.
func NewJob(name string) *Job {
	now := time.Now()
	return &Job{
		ID:        uuid.New().String()[:8],
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Settings:  DefaultEngineConfig(),
	}
}

// WithResult attaches a pack outcome to the job and bumps UpdatedAt.
func (j *Job) WithResult(result stowage.PackResult) {
	r := &JobResult{PackedAt: time.Now()}
	for _, it := range result.Placed {
		r.PlacedItemIDs = append(r.PlacedItemIDs, it.ID)
	}
	for _, it := range result.Unplaced {
		r.UnplacedItemIDs = append(r.UnplacedItemIDs, it.ID)
	}
	j.LastResult = r
	j.UpdatedAt = time.Now()
}
