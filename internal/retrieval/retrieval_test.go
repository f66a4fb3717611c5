package retrieval

import (
	"testing"

	"github.com/piwi3910/cargostow/internal/geometry"
	"github.com/piwi3910/cargostow/internal/stowage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildObstructionScenario places item A at the back of the container
// and item B in front of it flush with the open face, obstructing A's
// straight-pull path.
func buildObstructionScenario() *stowage.Container {
	c := stowage.NewContainer("C1", "Zone", 100, 100, 100)
	c.Placements = []stowage.Placement{
		{
			Item:        stowage.Item{ID: "A", Name: "A", Width: 50, Depth: 50, Height: 50},
			Position:    geometry.Vec3{X: 0, Y: 0, Z: 0},
			Orientation: stowage.Orientation{W: 50, D: 50, H: 50},
		},
		{
			Item:        stowage.Item{ID: "B", Name: "B", Width: 50, Depth: 50, Height: 50},
			Position:    geometry.Vec3{X: 0, Y: 0, Z: 50},
			Orientation: stowage.Orientation{W: 50, D: 50, H: 50},
		},
	}
	return c
}

func TestGenerateRetrievalStepsObstructedTarget(t *testing.T) {
	c := buildObstructionScenario()

	var a, b stowage.Placement
	for _, p := range c.Placements {
		switch p.Item.ID {
		case "A":
			a = p
		case "B":
			b = p
		}
	}
	require.Equal(t, 0.0, a.Position.Z)
	require.Equal(t, 50.0, b.Position.Z)

	steps := GenerateRetrievalSteps("A", c)
	require.Len(t, steps, 3)
	assert.Equal(t, Step{Action: ActionSetAside, ItemID: "B", ItemName: "B"}, steps[0])
	assert.Equal(t, Step{Action: ActionRetrieve, ItemID: "A", ItemName: "A"}, steps[1])
	assert.Equal(t, Step{Action: ActionPlaceBack, ItemID: "B", ItemName: "B"}, steps[2])
}

func TestGenerateRetrievalStepsVisibleTarget(t *testing.T) {
	c := buildObstructionScenario()

	steps := GenerateRetrievalSteps("B", c)
	require.Len(t, steps, 1)
	assert.Equal(t, Step{Action: ActionRetrieve, ItemID: "B", ItemName: "B"}, steps[0])
}

func TestGenerateRetrievalStepsUnknownItem(t *testing.T) {
	c := buildObstructionScenario()
	steps := GenerateRetrievalSteps("nope", c)
	assert.Nil(t, steps)
}

func TestSearchFindsByID(t *testing.T) {
	c := buildObstructionScenario()
	result, ok := Search("A", "", []*stowage.Container{c})
	require.True(t, ok)
	assert.True(t, result.Found)
	assert.Equal(t, "C1", result.Location.ContainerID)
	assert.Len(t, result.RetrievalSteps, 3)
}

func TestSearchFindsByName(t *testing.T) {
	c := buildObstructionScenario()
	result, ok := Search("", "B", []*stowage.Container{c})
	require.True(t, ok)
	assert.True(t, result.Found)
}

func TestSearchNotFound(t *testing.T) {
	c := buildObstructionScenario()
	_, ok := Search("missing", "", []*stowage.Container{c})
	assert.False(t, ok)
}
