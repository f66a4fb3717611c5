package stowage

import (
	"sort"

	"github.com/piwi3910/cargostow/internal/geometry"
)

// Orientation is a permuted set of item dimensions actually used for a
// placement: W is along x, D is along z, H is along y.
type Orientation struct {
	W, D, H float64
}

// orientations returns the distinct permutations of the item's three
// dimensions in the stable lexicographic order by (W, H, D). With all
// three dimensions equal there is one; with two equal there are three;
// with all distinct there are six.
func orientations(it Item) []Orientation {
	dims := [3]float64{it.Width, it.Depth, it.Height}
	perms := permute3(dims)

	out := make([]Orientation, 0, len(perms))
	for _, p := range perms {
		o := Orientation{W: p[0], D: p[1], H: p[2]}
		dup := false
		for _, existing := range out {
			if geometry.ApproxEqual(existing.W, o.W) &&
				geometry.ApproxEqual(existing.D, o.D) &&
				geometry.ApproxEqual(existing.H, o.H) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, o)
		}
	}

	sortOrientations(out)
	return out
}

func sortOrientations(os []Orientation) {
	sort.SliceStable(os, func(i, j int) bool {
		return orientationLess(os[i], os[j])
	})
}

// orientationLess orders orientations lexicographically by (W, H, D).
func orientationLess(a, b Orientation) bool {
	if !geometry.ApproxEqual(a.W, b.W) {
		return a.W < b.W
	}
	if !geometry.ApproxEqual(a.H, b.H) {
		return a.H < b.H
	}
	return a.D < b.D
}

// permute3 returns all six permutations of a 3-element array.
func permute3(d [3]float64) [][3]float64 {
	idx := [6][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2},
		{1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	out := make([][3]float64, 0, 6)
	for _, p := range idx {
		out = append(out, [3]float64{d[p[0]], d[p[1]], d[p[2]]})
	}
	return out
}

// FreeSpace is an axis-aligned cuboid of unoccupied volume inside a
// container, in the container-local frame. Source is a diagnostic tag
// only and plays no role in geometry: trim copies it from the parent
// space onto each slab, merging drops it, and the packer itself never
// sets it.
type FreeSpace struct {
	X, Y, Z              float64
	Width, Height, Depth float64
	Source               string
}

// box converts the free space to a geometry.Box for overlap/containment
// tests.
func (fs FreeSpace) box() geometry.Box {
	return geometry.Box{
		Min: geometry.Vec3{X: fs.X, Y: fs.Y, Z: fs.Z},
		W:   fs.Width, H: fs.Height, D: fs.Depth,
	}
}

// Fits reports whether an orientation fits within this free space's
// extents.
func (fs FreeSpace) Fits(o Orientation) bool {
	return geometry.ApproxLE(o.W, fs.Width) &&
		geometry.ApproxLE(o.D, fs.Depth) &&
		geometry.ApproxLE(o.H, fs.Height)
}

// Degenerate reports whether this free space carries no usable volume.
func (fs FreeSpace) Degenerate() bool {
	return fs.box().Degenerate()
}

// tryMerge attempts to merge two free spaces that share a face and are
// identical on the other two axes (within TOL). It returns the merged
// box and true on success.
func tryMerge(a, b FreeSpace) (FreeSpace, bool) {
	eq := geometry.ApproxEqual

	// Along x: same y, z, height, depth, adjacent in x.
	if eq(a.Y, b.Y) && eq(a.Z, b.Z) && eq(a.Height, b.Height) && eq(a.Depth, b.Depth) {
		if eq(a.X+a.Width, b.X) {
			return FreeSpace{X: a.X, Y: a.Y, Z: a.Z, Width: a.Width + b.Width, Height: a.Height, Depth: a.Depth}, true
		}
		if eq(b.X+b.Width, a.X) {
			return FreeSpace{X: b.X, Y: b.Y, Z: b.Z, Width: b.Width + a.Width, Height: b.Height, Depth: b.Depth}, true
		}
	}
	// Along y: same x, z, width, depth, adjacent in y.
	if eq(a.X, b.X) && eq(a.Z, b.Z) && eq(a.Width, b.Width) && eq(a.Depth, b.Depth) {
		if eq(a.Y+a.Height, b.Y) {
			return FreeSpace{X: a.X, Y: a.Y, Z: a.Z, Width: a.Width, Height: a.Height + b.Height, Depth: a.Depth}, true
		}
		if eq(b.Y+b.Height, a.Y) {
			return FreeSpace{X: b.X, Y: b.Y, Z: b.Z, Width: b.Width, Height: b.Height + a.Height, Depth: b.Depth}, true
		}
	}
	// Along z: same x, y, width, height, adjacent in z.
	if eq(a.X, b.X) && eq(a.Y, b.Y) && eq(a.Width, b.Width) && eq(a.Height, b.Height) {
		if eq(a.Z+a.Depth, b.Z) {
			return FreeSpace{X: a.X, Y: a.Y, Z: a.Z, Width: a.Width, Height: a.Height, Depth: a.Depth + b.Depth}, true
		}
		if eq(b.Z+b.Depth, a.Z) {
			return FreeSpace{X: b.X, Y: b.Y, Z: b.Z, Width: b.Width, Height: b.Height, Depth: b.Depth + a.Depth}, true
		}
	}
	return FreeSpace{}, false
}

// trim returns the portion of fs outside the placed box, decomposed into
// up to six axis-aligned slabs (left, right, bottom, top, back, front).
// Degenerate slabs are dropped. If placed does not overlap fs, fs itself
// is returned unchanged.
func trim(fs FreeSpace, placed geometry.Box) []FreeSpace {
	fBox := fs.box()
	if !fBox.Overlaps(placed) {
		return []FreeSpace{fs}
	}

	fx1, fy1, fz1 := fBox.Min.X, fBox.Min.Y, fBox.Min.Z
	fMax := fBox.Max()
	fx2, fy2, fz2 := fMax.X, fMax.Y, fMax.Z

	px1, py1, pz1 := placed.Min.X, placed.Min.Y, placed.Min.Z
	pMax := placed.Max()
	px2, py2, pz2 := pMax.X, pMax.Y, pMax.Z

	max2 := func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	}
	min2 := func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	}

	var out []FreeSpace
	if px1 > fx1+geometry.TOL {
		out = append(out, FreeSpace{X: fx1, Y: fy1, Z: fz1, Width: px1 - fx1, Height: fs.Height, Depth: fs.Depth, Source: fs.Source})
	}
	if px2 < fx2-geometry.TOL {
		out = append(out, FreeSpace{X: px2, Y: fy1, Z: fz1, Width: fx2 - px2, Height: fs.Height, Depth: fs.Depth, Source: fs.Source})
	}
	xLo, xHi := max2(fx1, px1), min2(fx2, px2)
	if py1 > fy1+geometry.TOL {
		out = append(out, FreeSpace{X: xLo, Y: fy1, Z: fz1, Width: xHi - xLo, Height: py1 - fy1, Depth: fs.Depth, Source: fs.Source})
	}
	if py2 < fy2-geometry.TOL {
		out = append(out, FreeSpace{X: xLo, Y: py2, Z: fz1, Width: xHi - xLo, Height: fy2 - py2, Depth: fs.Depth, Source: fs.Source})
	}
	yLo, yHi := max2(fy1, py1), min2(fy2, py2)
	if pz1 > fz1+geometry.TOL {
		out = append(out, FreeSpace{X: xLo, Y: yLo, Z: fz1, Width: xHi - xLo, Height: yHi - yLo, Depth: pz1 - fz1, Source: fs.Source})
	}
	if pz2 < fz2-geometry.TOL {
		out = append(out, FreeSpace{X: xLo, Y: yLo, Z: pz2, Width: xHi - xLo, Height: yHi - yLo, Depth: fz2 - pz2, Source: fs.Source})
	}

	valid := out[:0]
	for _, s := range out {
		if s.Width > geometry.TOL && s.Height > geometry.TOL && s.Depth > geometry.TOL {
			valid = append(valid, s)
		}
	}
	return valid
}
