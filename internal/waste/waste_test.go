package waste

import (
	"testing"
	"time"

	"github.com/piwi3910/cargostow/internal/stowage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeCube(c *stowage.Container, id string, mass float64, expiry *time.Time, usageLimit *int) {
	it := stowage.Item{ID: id, Name: id, Width: 10, Depth: 10, Height: 10, Mass: mass, Expiry: expiry, UsageLimit: usageLimit}
	if !c.PlaceItem(it) {
		panic("setup placement failed")
	}
}

func pastDate() *time.Time {
	t := time.Now().Add(-24 * time.Hour)
	return &t
}

func zeroUses() *int {
	z := 0
	return &z
}

func TestIdentifyWasteFlagsExpired(t *testing.T) {
	c := stowage.NewContainer("C1", "Zone", 100, 100, 100)
	placeCube(c, "expired", 1, pastDate(), nil)
	placeCube(c, "fine", 1, nil, nil)

	items := IdentifyWaste([]*stowage.Container{c}, time.Now())

	require.Len(t, items, 1)
	assert.Equal(t, "expired", items[0].ItemID)
	assert.Equal(t, ReasonExpired, items[0].Reason)
}

func TestIdentifyWasteFlagsOutOfUses(t *testing.T) {
	c := stowage.NewContainer("C1", "Zone", 100, 100, 100)
	placeCube(c, "depleted", 1, nil, zeroUses())

	items := IdentifyWaste([]*stowage.Container{c}, time.Now())

	require.Len(t, items, 1)
	assert.Equal(t, ReasonOutOfUses, items[0].Reason)
}

func TestWasteReturnPlanRespectsWeightBudget(t *testing.T) {
	c := stowage.NewContainer("C1", "Zone", 100, 100, 100)
	placeCube(c, "a", 5, pastDate(), nil)
	placeCube(c, "b", 5, pastDate(), nil)
	placeCube(c, "c", 5, pastDate(), nil)

	plan := WasteReturnPlan([]*stowage.Container{c}, "UC01", time.Now(), 10)

	assert.Len(t, plan.Steps, 2)
	assert.Equal(t, 10.0, plan.Manifest.TotalWeight)
	assert.Equal(t, "UC01", plan.Manifest.UndockingContainerID)
}

func TestWasteReturnPlanRoundsTotalWeight(t *testing.T) {
	c := stowage.NewContainer("C1", "Zone", 100, 100, 100)
	placeCube(c, "a", 4.567, pastDate(), nil)

	plan := WasteReturnPlan([]*stowage.Container{c}, "UC01", time.Now(), 5)

	assert.Len(t, plan.Steps, 1)
	assert.InDelta(t, 4.57, plan.Manifest.TotalWeight, 0.001)
}

func TestCompleteUndockingRemovesWasteOnly(t *testing.T) {
	c := stowage.NewContainer("C1", "Zone", 100, 100, 100)
	placeCube(c, "expired", 1, pastDate(), nil)
	placeCube(c, "fine", 1, nil, nil)

	removed := CompleteUndocking([]*stowage.Container{c}, time.Now())

	assert.Equal(t, 1, removed)
	require.Len(t, c.Placements, 1)
	assert.Equal(t, "fine", c.Placements[0].Item.ID)
}

func TestCompleteUndockingDoesNotTouchFreeSpaces(t *testing.T) {
	c := stowage.NewContainer("C1", "Zone", 100, 100, 100)
	placeCube(c, "expired", 1, pastDate(), nil)
	before := append([]stowage.FreeSpace(nil), c.FreeSpaces...)

	CompleteUndocking([]*stowage.Container{c}, time.Now())

	assert.Equal(t, before, c.FreeSpaces)
}
