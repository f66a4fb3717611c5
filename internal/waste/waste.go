// Package waste identifies expired or depleted cargo across a set of
// containers and builds weight-bounded return plans for undocking.
package waste

import (
	"math"
	"time"

	"github.com/piwi3910/cargostow/internal/stowage"
)

// Reason names why a placement is considered waste.
type Reason string

const (
	ReasonExpired   Reason = "Expired"
	ReasonOutOfUses Reason = "Out of Uses"
)

// Coordinates mirrors the width/depth/height export convention.
type Coordinates struct {
	Width, Depth, Height float64
}

// WasteItem describes one placement flagged as waste.
type WasteItem struct {
	ItemID           string
	Name             string
	Reason           Reason
	ContainerID      string
	Mass             float64
	StartCoordinates Coordinates
	EndCoordinates   Coordinates
}

// IdentifyWaste scans every placement across containers and flags those
// whose item is expired (expiry before now) or depleted (usage limit at
// or below zero).
func IdentifyWaste(containers []*stowage.Container, now time.Time) []WasteItem {
	var out []WasteItem
	for _, c := range containers {
		for _, p := range c.Placements {
			var reason Reason
			switch {
			case p.Item.Expired(now):
				reason = ReasonExpired
			case p.Item.Depleted():
				reason = ReasonOutOfUses
			default:
				continue
			}
			out = append(out, WasteItem{
				ItemID:      p.Item.ID,
				Name:        p.Item.Name,
				Reason:      reason,
				ContainerID: c.ID,
				Mass:        p.Item.Mass,
				StartCoordinates: Coordinates{
					Width: p.Position.X, Depth: p.Position.Z, Height: p.Position.Y,
				},
				EndCoordinates: Coordinates{
					Width:  p.Position.X + p.Orientation.W,
					Depth:  p.Position.Z + p.Orientation.D,
					Height: p.Position.Y + p.Orientation.H,
				},
			})
		}
	}
	return out
}

// ReturnStep is one move in a return plan.
type ReturnStep struct {
	ItemID        string
	ItemName      string
	FromContainer string
	ToContainer   string
}

// RetrievalStep is the retrieval action paired with a return step.
type RetrievalStep struct {
	ItemID   string
	ItemName string
}

// Manifest summarizes the items selected for return.
type Manifest struct {
	UndockingContainerID string
	UndockingDate        time.Time
	ReturnItems          []WasteItem
	TotalWeight          float64
}

// ReturnPlan is the full outcome of a WasteReturnPlan call.
type ReturnPlan struct {
	Steps          []ReturnStep
	RetrievalSteps []RetrievalStep
	Manifest       Manifest
}

// WasteReturnPlan walks the waste list (in container iteration order,
// i.e. the order IdentifyWaste produced it) and greedily includes each
// item whose cumulative mass stays within maxWeight, emitting a move
// step and a retrieval step for each selected item.
func WasteReturnPlan(containers []*stowage.Container, undockingContainerID string, date time.Time, maxWeight float64) ReturnPlan {
	wasteItems := IdentifyWaste(containers, date)

	var plan ReturnPlan
	var cumulative float64
	for _, w := range wasteItems {
		if cumulative+w.Mass > maxWeight {
			continue
		}
		cumulative += w.Mass
		plan.Steps = append(plan.Steps, ReturnStep{
			ItemID: w.ItemID, ItemName: w.Name,
			FromContainer: w.ContainerID, ToContainer: undockingContainerID,
		})
		plan.RetrievalSteps = append(plan.RetrievalSteps, RetrievalStep{ItemID: w.ItemID, ItemName: w.Name})
		plan.Manifest.ReturnItems = append(plan.Manifest.ReturnItems, w)
	}

	plan.Manifest.UndockingContainerID = undockingContainerID
	plan.Manifest.UndockingDate = date
	plan.Manifest.TotalWeight = math.Round(cumulative*100) / 100
	return plan
}

// CompleteUndocking removes every placement that is currently expired or
// out of uses from every container and returns the count removed.
// Free-space structures are deliberately not recomputed: the caller
// treats the container as sealed once undocking completes.
func CompleteUndocking(containers []*stowage.Container, now time.Time) int {
	removed := 0
	for _, c := range containers {
		var remaining []stowage.Placement
		for _, p := range c.Placements {
			if p.Item.Expired(now) || p.Item.Depleted() {
				removed++
				continue
			}
			remaining = append(remaining, p)
		}
		c.Placements = remaining
	}
	return removed
}
