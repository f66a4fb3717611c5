package stowage

import "sort"

// PackResult is the outcome of a packing run: the containers are mutated
// in place (returned for convenience), plus the items that were placed
// and those that found no home anywhere.
type PackResult struct {
	Containers []*Container
	Placed     []Item
	Unplaced   []Item
}

// PackItems sorts items by descending volume (ties broken by ascending
// priority, then expiry, then usage limit) and places each one in turn:
// preferred-zone containers first, in input order, then the rest.
// Packing never fails as a whole — items that fit nowhere are returned
// in Unplaced rather than raising an error.
func PackItems(containers []*Container, items []Item) PackResult {
	sorted := append([]Item(nil), items...)
	sortItemsForPacking(sorted)

	result := PackResult{Containers: containers}
	for _, it := range sorted {
		var preferred, others []*Container
		for _, c := range containers {
			if c.Zone == it.PreferredZone {
				preferred = append(preferred, c)
			} else {
				others = append(others, c)
			}
		}

		placed := false
		for _, c := range preferred {
			if c.PlaceItem(it) {
				placed = true
				break
			}
		}
		if !placed {
			for _, c := range others {
				if c.PlaceItem(it) {
					placed = true
					break
				}
			}
		}

		if placed {
			result.Placed = append(result.Placed, it)
		} else {
			result.Unplaced = append(result.Unplaced, it)
		}
	}
	return result
}

// sortItemsForPacking orders items by key (-volume, priority, expiry,
// usageLimit) ascending: biggest items first, then within equal volume
// the lower numeric priority first, then sooner expiry, then lower
// usage limit.
func sortItemsForPacking(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return itemPackLess(items[i], items[j])
	})
}

func itemPackLess(a, b Item) bool {
	av, bv := a.Volume(), b.Volume()
	if av != bv {
		return av > bv // descending volume
	}
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	ae, be := a.expiryOrMax(), b.expiryOrMax()
	if !ae.Equal(be) {
		return ae.Before(be)
	}
	return a.usageLimitOrMax() < b.usageLimitOrMax()
}
