package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(1.0, 1.0+1e-9))
	assert.False(t, ApproxEqual(1.0, 1.001))
}

func TestApproxLE(t *testing.T) {
	assert.True(t, ApproxLE(5.0, 5.0))
	assert.True(t, ApproxLE(5.0000001, 5.0))
	assert.False(t, ApproxLE(5.1, 5.0))
}

func TestBoxMaxAndVolume(t *testing.T) {
	b := Box{Min: Vec3{X: 1, Y: 2, Z: 3}, W: 10, H: 20, D: 30}
	assert.Equal(t, Vec3{X: 11, Y: 22, Z: 33}, b.Max())
	assert.Equal(t, 6000.0, b.Volume())
}

func TestBoxOverlapsDisjoint(t *testing.T) {
	a := Box{Min: Vec3{0, 0, 0}, W: 10, H: 10, D: 10}
	b := Box{Min: Vec3{10, 0, 0}, W: 10, H: 10, D: 10}
	assert.False(t, a.Overlaps(b), "touching faces must not count as overlap")
}

func TestBoxOverlapsIntersecting(t *testing.T) {
	a := Box{Min: Vec3{0, 0, 0}, W: 10, H: 10, D: 10}
	b := Box{Min: Vec3{5, 5, 5}, W: 10, H: 10, D: 10}
	assert.True(t, a.Overlaps(b))
}

func TestBoxContains(t *testing.T) {
	outer := Box{Min: Vec3{0, 0, 0}, W: 100, H: 100, D: 100}
	inner := Box{Min: Vec3{10, 10, 10}, W: 20, H: 20, D: 20}
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
}

func TestBoxDegenerate(t *testing.T) {
	assert.True(t, Box{W: 0, H: 5, D: 5}.Degenerate())
	assert.False(t, Box{W: 1, H: 1, D: 1}.Degenerate())
}
