package rearrangement

import (
	"testing"

	"github.com/piwi3910/cargostow/internal/stowage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillCube(id string, side float64, priority int) stowage.Item {
	return stowage.Item{ID: id, Name: id, Width: side, Depth: side, Height: side, Mass: 1, Priority: priority}
}

func TestSuggestDirectPlacementNeedsNoEviction(t *testing.T) {
	c := stowage.NewContainer("C1", "Zone", 100, 100, 100)
	result := Suggest([]*stowage.Container{c}, []stowage.Item{fillCube("A", 50, 1)})

	assert.True(t, result.Success())
	assert.Empty(t, result.Plan)
	// Suggest must not mutate the caller's container.
	assert.Empty(t, c.Placements)
}

func TestSuggestEvictsLowPriorityItem(t *testing.T) {
	c := stowage.NewContainer("C1", "Zone", 100, 100, 50)
	for i := 0; i < 4; i++ {
		require.True(t, c.PlaceItem(fillCube(string(rune('A'+i)), 50, 1)))
	}
	// Container is full. Lower the priority of one occupant so it is the
	// eviction candidate, then ask for room for a higher-priority item.
	for i := range c.Placements {
		if c.Placements[i].Item.ID == "A" {
			c.Placements[i].Item.Priority = 0
		} else {
			c.Placements[i].Item.Priority = 5
		}
	}

	newItem := fillCube("NEW", 50, 9)
	result := Suggest([]*stowage.Container{c}, []stowage.Item{newItem})

	// NEW takes A's slot in the only container, so A has nowhere to go
	// back to and is reported as an error.
	assert.False(t, result.Success())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "A", result.Errors[0].ItemID)

	var removedA, placedNew bool
	for _, step := range result.Plan {
		if step.Action == ActionRemove && step.ItemID == "A" {
			removedA = true
		}
		if step.Action == ActionPlace && step.ItemID == "NEW" {
			placedNew = true
		}
	}
	assert.True(t, removedA, "lowest priority item should be evicted")
	assert.True(t, placedNew, "new item should be placed after eviction")
}

func TestSuggestReportsErrorWhenNoRoomAnywhere(t *testing.T) {
	c := stowage.NewContainer("C1", "Zone", 10, 10, 10)
	c.PlaceItem(fillCube("A", 10, 1))

	newItem := fillCube("TOO_BIG", 20, 1)
	result := Suggest([]*stowage.Container{c}, []stowage.Item{newItem})

	assert.False(t, result.Success())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "TOO_BIG", result.Errors[0].ItemID)
}

func TestSuggestDoesNotMutateCallerContainers(t *testing.T) {
	c := stowage.NewContainer("C1", "Zone", 100, 100, 50)
	for i := 0; i < 4; i++ {
		require.True(t, c.PlaceItem(fillCube(string(rune('A'+i)), 50, 1)))
	}
	snapshot := append([]stowage.Placement(nil), c.Placements...)

	Suggest([]*stowage.Container{c}, []stowage.Item{fillCube("NEW", 50, 9)})

	assert.Equal(t, snapshot, c.Placements)
}
