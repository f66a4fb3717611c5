// Package stowage implements the free-space decomposition packer: Items,
// Containers, FreeSpaces, and the deterministic placement search that
// assigns every item a container, position, and orientation.
package stowage

import "time"

// Item is an immutable cargo descriptor. Once constructed it is never
// mutated; operations that would change it (such as a day's usage
// simulation) return a new Item.
type Item struct {
	ID            string
	Name          string
	Width         float64
	Depth         float64
	Height        float64
	Mass          float64
	Priority      int
	Expiry        *time.Time // nil means "never expires"
	UsageLimit    *int       // nil means "unlimited"
	PreferredZone string
}

// Volume returns width * depth * height.
func (it Item) Volume() float64 {
	return it.Width * it.Depth * it.Height
}

// Expired reports whether the item's expiry date is strictly before now.
// An item with no expiry (nil) is never expired.
func (it Item) Expired(now time.Time) bool {
	if it.Expiry == nil {
		return false
	}
	return it.Expiry.Before(now)
}

// Depleted reports whether the item has a usage limit and it has been
// used up (<= 0). An unlimited item (nil) is never depleted.
func (it Item) Depleted() bool {
	return it.UsageLimit != nil && *it.UsageLimit <= 0
}

// DecrementUsage returns a copy of the item with its usage limit reduced
// by one, floored at zero. Unlimited items are returned unchanged.
func (it Item) DecrementUsage() Item {
	if it.UsageLimit == nil {
		return it
	}
	remaining := *it.UsageLimit - 1
	if remaining < 0 {
		remaining = 0
	}
	out := it
	out.UsageLimit = &remaining
	return out
}

// expiryOrMax returns the item's expiry for sort purposes: a real date, or
// a time billions of years in the future when the item never expires, so
// that "never" always sorts after any real date.
func (it Item) expiryOrMax() time.Time {
	if it.Expiry == nil {
		return time.Unix(1<<62, 0)
	}
	return *it.Expiry
}

// usageLimitOrMax returns the item's usage limit for sort purposes:
// unlimited items sort after any finite count.
func (it Item) usageLimitOrMax() int {
	if it.UsageLimit == nil {
		return int(^uint(0) >> 1)
	}
	return *it.UsageLimit
}
