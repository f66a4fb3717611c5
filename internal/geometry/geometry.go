// Package geometry provides the axis-aligned box primitives and the
// tolerance-aware comparisons every other packing package builds on.
package geometry

// DefaultTOL is the floating-point tolerance the packer ships with:
// equality, ordering, and overlap tests are all accurate to within this
// margin in centimetres.
const DefaultTOL = 1e-6

// TOL is the tolerance every comparison in this package currently uses.
// It starts at DefaultTOL and is process-wide: SetTolerance exists only
// for the engine-config override of internal/model.EngineConfig
// (exercised from test harnesses that need a looser or tighter margin),
// not for normal packing, which should never change it.
var TOL = DefaultTOL

// SetTolerance overrides the package-wide comparison tolerance. A
// non-positive value is ignored and leaves TOL unchanged.
func SetTolerance(v float64) {
	if v > 0 {
		TOL = v
	}
}

// ResetTolerance restores TOL to DefaultTOL.
func ResetTolerance() {
	TOL = DefaultTOL
}

// ApproxEqual reports whether a and b are equal within TOL.
func ApproxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < TOL
}

// ApproxLE reports whether a <= b within TOL.
func ApproxLE(a, b float64) bool {
	return a <= b+TOL
}

// ApproxLT reports whether a < b, outside TOL (i.e. a is strictly less
// than b by more than TOL).
func ApproxLT(a, b float64) bool {
	return a < b-TOL
}

// Vec3 is a point or extent in the container-local frame: x is width,
// y is height, z is depth.
type Vec3 struct {
	X, Y, Z float64
}

// Box is an axis-aligned cuboid with minimum corner Min and positive
// extents W (width, x), H (height, y), D (depth, z).
type Box struct {
	Min     Vec3
	W, H, D float64
}

// Max returns the box's maximum corner.
func (b Box) Max() Vec3 {
	return Vec3{X: b.Min.X + b.W, Y: b.Min.Y + b.H, Z: b.Min.Z + b.D}
}

// Volume returns the box's volume.
func (b Box) Volume() float64 {
	return b.W * b.H * b.D
}

// Overlaps reports whether two boxes have interiors that intersect by
// more than TOL on every axis (a touching face is not an overlap).
func (b Box) Overlaps(o Box) bool {
	bMax, oMax := b.Max(), o.Max()
	if oMax.X <= b.Min.X+TOL || o.Min.X >= bMax.X-TOL {
		return false
	}
	if oMax.Y <= b.Min.Y+TOL || o.Min.Y >= bMax.Y-TOL {
		return false
	}
	if oMax.Z <= b.Min.Z+TOL || o.Min.Z >= bMax.Z-TOL {
		return false
	}
	return true
}

// Contains reports whether b fully contains o within TOL.
func (b Box) Contains(o Box) bool {
	bMax, oMax := b.Max(), o.Max()
	return b.Min.X <= o.Min.X+TOL && b.Min.Y <= o.Min.Y+TOL && b.Min.Z <= o.Min.Z+TOL &&
		bMax.X >= oMax.X-TOL && bMax.Y >= oMax.Y-TOL && bMax.Z >= oMax.Z-TOL
}

// Degenerate reports whether any of the box's dimensions is at or
// below TOL, i.e. it carries no usable volume.
func (b Box) Degenerate() bool {
	return b.W <= TOL || b.H <= TOL || b.D <= TOL
}
