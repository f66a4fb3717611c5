// Package retrieval computes the sequence of set-aside and place-back
// steps required to pull a target item out through a container's open
// face, and the search that locates an item across a set of containers.
package retrieval

import (
	"github.com/piwi3910/cargostow/internal/geometry"
	"github.com/piwi3910/cargostow/internal/stowage"
)

// StepAction names what a retrieval step does to an item.
type StepAction string

const (
	ActionRetrieve  StepAction = "retrieve"
	ActionSetAside  StepAction = "setAside"
	ActionPlaceBack StepAction = "placeBack"
)

// Step is one action in a retrieval plan.
type Step struct {
	Action   StepAction
	ItemID   string
	ItemName string
}

// Coordinates describes a placement's extent in the exported width/height/depth
// convention used at the adapter boundary.
type Coordinates struct {
	Width, Depth, Height float64
}

// Location describes where an item was found.
type Location struct {
	ItemID           string
	Name             string
	ContainerID      string
	Zone             string
	StartCoordinates Coordinates
	EndCoordinates   Coordinates
}

// SearchResult is the outcome of a Search call.
type SearchResult struct {
	Found          bool
	Location       Location
	RetrievalSteps []Step
}

// isVisible reports whether a placement's front face is flush with the
// container's open face (z = depth), within TOL. This is the only
// condition checked — no x/y overlap test is performed.
func isVisible(p stowage.Placement, c *stowage.Container) bool {
	return geometry.ApproxEqual(p.FrontZ(), c.Depth)
}

// GenerateRetrievalSteps builds the plan to extract target from c. If the
// item is flush with the open face it is retrieved directly in a single
// step. Otherwise every other placement whose front face lies strictly
// beyond the target's front face (within TOL) is treated as an
// obstructor: these are set aside in container placement order, the
// target is retrieved, and the obstructors are placed back in reverse
// order.
//
// This is a front-plane test only: it does not verify that an
// obstructor actually overlaps the target in x/y, so it can over-report
// obstructions for items that merely sit deeper in the container
// without blocking the straight-pull path.
func GenerateRetrievalSteps(targetID string, c *stowage.Container) []Step {
	var target *stowage.Placement
	for i := range c.Placements {
		if c.Placements[i].Item.ID == targetID {
			target = &c.Placements[i]
			break
		}
	}
	if target == nil {
		return nil
	}

	if isVisible(*target, c) {
		return []Step{{Action: ActionRetrieve, ItemID: target.Item.ID, ItemName: target.Item.Name}}
	}

	targetFront := target.FrontZ()
	var obstructors []stowage.Placement
	for _, p := range c.Placements {
		if p.Item.ID == targetID {
			continue
		}
		if p.FrontZ() > targetFront+geometry.TOL {
			obstructors = append(obstructors, p)
		}
	}

	steps := make([]Step, 0, len(obstructors)*2+1)
	for _, o := range obstructors {
		steps = append(steps, Step{Action: ActionSetAside, ItemID: o.Item.ID, ItemName: o.Item.Name})
	}
	steps = append(steps, Step{Action: ActionRetrieve, ItemID: target.Item.ID, ItemName: target.Item.Name})
	for i := len(obstructors) - 1; i >= 0; i-- {
		o := obstructors[i]
		steps = append(steps, Step{Action: ActionPlaceBack, ItemID: o.Item.ID, ItemName: o.Item.Name})
	}
	return steps
}

// Search looks up an item by ID or name across containers, in container
// order, and returns its location plus the retrieval plan to extract it.
// If both itemID and itemName are empty, ok is false with InvalidQuery
// semantics left to the caller (the HTTP adapter maps this to a 400).
func Search(itemID, itemName string, containers []*stowage.Container) (SearchResult, bool) {
	for _, c := range containers {
		for _, p := range c.Placements {
			if (itemID != "" && p.Item.ID == itemID) || (itemName != "" && p.Item.Name == itemName) {
				end := geometry.Vec3{
					X: p.Position.X + p.Orientation.W,
					Y: p.Position.Y + p.Orientation.H,
					Z: p.Position.Z + p.Orientation.D,
				}
				loc := Location{
					ItemID:      p.Item.ID,
					Name:        p.Item.Name,
					ContainerID: c.ID,
					Zone:        c.Zone,
					StartCoordinates: Coordinates{
						Width: p.Position.X, Depth: p.Position.Z, Height: p.Position.Y,
					},
					EndCoordinates: Coordinates{
						Width: end.X, Depth: end.Z, Height: end.Y,
					},
				}
				return SearchResult{
					Found:          true,
					Location:       loc,
					RetrievalSteps: GenerateRetrievalSteps(p.Item.ID, c),
				}, true
			}
		}
	}
	return SearchResult{}, false
}
