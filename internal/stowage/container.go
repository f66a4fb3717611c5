package stowage

import (
	"sort"

	"github.com/piwi3910/cargostow/internal/geometry"
)

// Placement records one item's assignment inside a container: the item
// itself, the minimum corner it occupies, and the orientation it was
// placed under.
type Placement struct {
	Item        Item
	Position    geometry.Vec3
	Orientation Orientation
}

// box returns the placed item's bounding box.
func (p Placement) box() geometry.Box {
	return geometry.Box{Min: p.Position, W: p.Orientation.W, H: p.Orientation.H, D: p.Orientation.D}
}

// FrontZ returns the z coordinate of the placement's face nearest the
// container's open face.
func (p Placement) FrontZ() float64 {
	return p.Position.Z + p.Orientation.D
}

// Container holds the interior dimensions of a stowage bin, the ordered
// list of item placements, and the disjoint free-space decomposition of
// its remaining volume.
type Container struct {
	ID         string
	Zone       string
	Width      float64
	Height     float64
	Depth      float64
	Placements []Placement
	FreeSpaces []FreeSpace
}

// NewContainer builds an empty container whose entire interior starts
// out as a single free space. Dimensions follow the item convention:
// width, depth, height.
func NewContainer(id, zone string, width, depth, height float64) *Container {
	return &Container{
		ID:     id,
		Zone:   zone,
		Width:  width,
		Height: height,
		Depth:  depth,
		FreeSpaces: []FreeSpace{
			{X: 0, Y: 0, Z: 0, Width: width, Height: height, Depth: depth},
		},
	}
}

// TotalMass sums the mass of every item currently placed in the
// container.
func (c *Container) TotalMass() float64 {
	var total float64
	for _, p := range c.Placements {
		total += p.Item.Mass
	}
	return total
}

// Clone returns a deep copy of the container's mutable state: its own
// placement and free-space slices, safe to mutate without affecting the
// original. Planners that speculate (rearrangement) must operate on a
// clone and never the caller's container.
func (c *Container) Clone() *Container {
	out := &Container{
		ID: c.ID, Zone: c.Zone,
		Width: c.Width, Height: c.Height, Depth: c.Depth,
	}
	out.Placements = append([]Placement(nil), c.Placements...)
	out.FreeSpaces = append([]FreeSpace(nil), c.FreeSpaces...)
	return out
}

// PlaceItem attempts to place it inside the container. Free spaces are
// tried in (z, y, x) order — the corner deepest from the open face,
// lowest, leftmost — and orientations in their stable order. On
// success the placement is appended, the free-space list is trimmed and
// merged, and PlaceItem returns true. On failure no placement is added
// and the free spaces are unchanged apart from being left in sorted
// order.
func (c *Container) PlaceItem(it Item) bool {
	sortFreeSpaces(c.FreeSpaces)
	orients := orientations(it)

	for _, fs := range c.FreeSpaces {
		for _, o := range orients {
			if !fs.Fits(o) {
				continue
			}
			pos := geometry.Vec3{X: fs.X, Y: fs.Y, Z: fs.Z}
			c.Placements = append(c.Placements, Placement{Item: it, Position: pos, Orientation: o})
			c.updateFreeSpaces(Placement{Item: it, Position: pos, Orientation: o})
			return true
		}
	}
	return false
}

// sortFreeSpaces orders free spaces by (z, y, x) ascending in place.
func sortFreeSpaces(fs []FreeSpace) {
	sort.SliceStable(fs, func(i, j int) bool {
		return freeSpaceLess(fs[i], fs[j])
	})
}

func freeSpaceLess(a, b FreeSpace) bool {
	if !geometry.ApproxEqual(a.Z, b.Z) {
		return a.Z < b.Z
	}
	if !geometry.ApproxEqual(a.Y, b.Y) {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// updateFreeSpaces trims every current free space against the newly
// placed box, discards degenerate slabs, and runs the merge pass to a
// fixed point.
func (c *Container) updateFreeSpaces(p Placement) {
	placedBox := p.box()
	var next []FreeSpace
	for _, fs := range c.FreeSpaces {
		next = append(next, trim(fs, placedBox)...)
	}
	c.FreeSpaces = next
	c.mergeFreeSpaces()
}

// mergeFreeSpaces repeatedly scans the free-space list pairwise, merging
// any pair that try_merge accepts, until a full pass makes no change.
// The pair order is deterministic array order, so the fixed point is
// reproducible.
func (c *Container) mergeFreeSpaces() {
	for {
		changed := false
		used := make([]bool, len(c.FreeSpaces))
		var next []FreeSpace
		for i := range c.FreeSpaces {
			if used[i] {
				continue
			}
			cur := c.FreeSpaces[i]
			for j := i + 1; j < len(c.FreeSpaces); j++ {
				if used[j] {
					continue
				}
				if merged, ok := tryMerge(cur, c.FreeSpaces[j]); ok {
					cur = merged
					used[j] = true
					changed = true
				}
			}
			next = append(next, cur)
		}
		c.FreeSpaces = next
		if !changed {
			return
		}
	}
}

// RemovePlacement removes the placement at index i and rebuilds the
// container's free spaces from scratch: it starts from a single box
// covering the full interior and trims it (with merging) against every
// remaining placement in order. This is the reset used by the
// rearrangement planner: it discards the incremental decomposition but
// leaves free spaces that never overlap a remaining placement.
func (c *Container) RemovePlacement(i int) {
	c.Placements = append(c.Placements[:i:i], c.Placements[i+1:]...)
	c.FreeSpaces = []FreeSpace{{X: 0, Y: 0, Z: 0, Width: c.Width, Height: c.Height, Depth: c.Depth}}
	for _, p := range c.Placements {
		c.updateFreeSpaces(p)
	}
}
