// Package timesim advances the simulated clock for a packing job:
// decrementing usage counters for items scheduled for use and flagging
// items whose expiry the new date has passed. It never touches
// free-space state — only the items held in existing placements change.
package timesim

import (
	"time"

	"github.com/piwi3910/cargostow/internal/stowage"
)

// UsageChange records one item whose usage counter was decremented.
type UsageChange struct {
	ItemID        string
	Name          string
	RemainingUses int
}

// ItemRef names an item by ID and display name, with no further detail.
type ItemRef struct {
	ItemID string
	Name   string
}

// Changes summarizes what happened to item state during a SimulateDay
// call.
type Changes struct {
	ItemsUsed          []UsageChange
	ItemsExpired       []ItemRef
	ItemsDepletedToday []ItemRef
}

// UsageKey identifies an item scheduled for use on the simulated day, by
// ID or by name (whichever the caller has on hand).
type UsageKey struct {
	ItemID string
	Name   string
}

// TargetDate resolves the caller's request for a new simulated date:
// either a relative day count from now, or an absolute timestamp.
// numOfDays takes precedence when both are supplied.
func TargetDate(now time.Time, numOfDays *int, toTimestamp *time.Time) time.Time {
	if numOfDays != nil {
		return now.AddDate(0, 0, *numOfDays)
	}
	if toTimestamp != nil {
		return *toTimestamp
	}
	return now
}

// SimulateDay advances to newDate, decrementing the usage counter of
// every placement matched by usedToday (by item ID or name), and flags
// every placement whose expiry newDate now exceeds. Decremented items
// are replaced in place within each container's placement list, since
// Item itself is immutable.
func SimulateDay(containers []*stowage.Container, newDate time.Time, usedToday []UsageKey) Changes {
	used := make(map[string]bool, len(usedToday)*2)
	for _, k := range usedToday {
		if k.ItemID != "" {
			used[k.ItemID] = true
		}
		if k.Name != "" {
			used[k.Name] = true
		}
	}

	var changes Changes
	for _, c := range containers {
		for i, p := range c.Placements {
			it := p.Item
			if used[it.ID] || used[it.Name] {
				if it.UsageLimit != nil && *it.UsageLimit > 0 {
					it = it.DecrementUsage()
					c.Placements[i].Item = it
					changes.ItemsUsed = append(changes.ItemsUsed, UsageChange{
						ItemID: it.ID, Name: it.Name, RemainingUses: *it.UsageLimit,
					})
					if *it.UsageLimit == 0 {
						changes.ItemsDepletedToday = append(changes.ItemsDepletedToday, ItemRef{ItemID: it.ID, Name: it.Name})
					}
				}
			}
			if it.Expiry != nil && newDate.After(*it.Expiry) {
				changes.ItemsExpired = append(changes.ItemsExpired, ItemRef{ItemID: it.ID, Name: it.Name})
			}
		}
	}
	return changes
}
