// Package rearrangement proposes item evictions when the packer cannot
// place a new item directly, operating on a deep copy of the container
// state so the caller's containers are never mutated unless the plan is
// applied back by hand.
package rearrangement

import (
	"fmt"
	"sort"

	"github.com/piwi3910/cargostow/internal/stowage"
)

// StepAction names what a rearrangement step does.
type StepAction string

const (
	ActionRemove    StepAction = "remove"
	ActionPlace     StepAction = "place"
	ActionPlaceBack StepAction = "placeBack"
)

// Step is one action in a rearrangement plan.
type Step struct {
	Action      StepAction
	ItemID      string
	ContainerID string
}

// ItemError records that a single item could not be handled.
type ItemError struct {
	ItemID  string
	Message string
}

// Result is the outcome of a Suggest call.
type Result struct {
	Plan   []Step
	Errors []ItemError
}

// Success reports whether the plan recorded no errors: every new item
// was placed and every evicted item was placed back somewhere.
func (r Result) Success() bool {
	return len(r.Errors) == 0
}

// candidateOrder returns containers with item's preferred zone first,
// then the rest, both preserving input order.
func candidateOrder(containers []*stowage.Container, preferredZone string) []*stowage.Container {
	var preferred, others []*stowage.Container
	for _, c := range containers {
		if c.Zone == preferredZone {
			preferred = append(preferred, c)
		} else {
			others = append(others, c)
		}
	}
	return append(preferred, others...)
}

// Suggest proposes a rearrangement plan for newItems against containers,
// operating on a deep copy so the caller's containers are left
// untouched. For each item that doesn't fit directly, it tries, in
// candidate-container order, evicting the container's own placements
// from lowest priority upward (one at a time, resetting free spaces
// between attempts) until the new item fits, then attempts to place each
// evicted item back anywhere. Items that still don't fit, or evicted
// items that can't be replaced, are recorded as errors rather than
// raised.
func Suggest(containers []*stowage.Container, newItems []stowage.Item) Result {
	clones := make([]*stowage.Container, len(containers))
	for i, c := range containers {
		clones[i] = c.Clone()
	}

	var result Result
	for _, item := range newItems {
		candidates := candidateOrder(clones, item.PreferredZone)

		placed := false
		for _, c := range candidates {
			if c.PlaceItem(item) {
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		placed = attemptEviction(candidates, item, &result)
		if !placed {
			result.Errors = append(result.Errors, ItemError{
				ItemID:  item.ID,
				Message: "insufficient space, even after rearrangement",
			})
		}
	}
	return result
}

// attemptEviction tries, container by container, removing placements in
// ascending priority order (one at a time) until item fits, then
// replaces the evicted items elsewhere. Returns true if item was placed.
func attemptEviction(candidates []*stowage.Container, item stowage.Item, result *Result) bool {
	for _, c := range candidates {
		order := evictionOrder(c)

		working := c.Clone()
		var removedIDs []string
		succeeded := false

		for _, victimID := range order {
			idx := indexOfPlacement(working, victimID)
			if idx < 0 {
				continue
			}
			working.RemovePlacement(idx)
			removedIDs = append(removedIDs, victimID)

			if working.PlaceItem(item) {
				succeeded = true
				break
			}
		}

		if !succeeded {
			continue
		}

		// Recover the full Item for each eviction from the container as
		// it stood before any removal, then commit the working copy's
		// removals and the new item's placement to the real container.
		evictedItems := removedIDsToItems(c, removedIDs)
		*c = *working

		for _, id := range removedIDs {
			result.Plan = append(result.Plan, Step{Action: ActionRemove, ItemID: id, ContainerID: c.ID})
		}
		result.Plan = append(result.Plan, Step{Action: ActionPlace, ItemID: item.ID, ContainerID: c.ID})

		placeEvictedBack(candidates, evictedItems, result)
		return true
	}
	return false
}

// evictionOrder returns the container's current item IDs sorted by
// ascending priority (lowest priority evicted first).
func evictionOrder(c *stowage.Container) []string {
	placements := append([]stowage.Placement(nil), c.Placements...)
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].Item.Priority < placements[j].Item.Priority
	})
	ids := make([]string, len(placements))
	for i, p := range placements {
		ids[i] = p.Item.ID
	}
	return ids
}

func indexOfPlacement(c *stowage.Container, itemID string) int {
	for i, p := range c.Placements {
		if p.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// removedIDsToItems recovers the full Item for each evicted ID from the
// original container's placements (before the working copy dropped
// them).
func removedIDsToItems(original *stowage.Container, ids []string) []stowage.Item {
	lookup := make(map[string]stowage.Item, len(original.Placements))
	for _, p := range original.Placements {
		lookup[p.Item.ID] = p.Item
	}
	items := make([]stowage.Item, 0, len(ids))
	for _, id := range ids {
		if it, ok := lookup[id]; ok {
			items = append(items, it)
		}
	}
	return items
}

// placeEvictedBack tries to place every evicted item into any candidate
// container (original order); items that fit nowhere are recorded as
// errors.
func placeEvictedBack(candidates []*stowage.Container, evicted []stowage.Item, result *Result) {
	for _, it := range evicted {
		placedBack := false
		for _, c := range candidates {
			if c.PlaceItem(it) {
				result.Plan = append(result.Plan, Step{Action: ActionPlaceBack, ItemID: it.ID, ContainerID: c.ID})
				placedBack = true
				break
			}
		}
		if !placedBack {
			result.Errors = append(result.Errors, ItemError{
				ItemID:  it.ID,
				Message: fmt.Sprintf("could not reposition item %s after eviction", it.ID),
			})
		}
	}
}
