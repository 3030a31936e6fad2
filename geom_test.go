package rstar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 2, 2)
	b := NewRect(3, 1, 2, 2)
	u := Union(a, b)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 5, H: 3}, u)
}

func TestNewRectClampsNegativeExtents(t *testing.T) {
	r := NewRect(1, 1, -3, -4)
	assert.Equal(t, float32(0), r.W)
	assert.Equal(t, float32(0), r.H)
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	b := NewRect(3, 3, 4, 4)
	c := NewRect(10, 10, 1, 1)
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
}

func TestRectOverlapArea(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	b := NewRect(2, 2, 4, 4)
	assert.Equal(t, float32(4), a.OverlapArea(b))

	c := NewRect(10, 10, 1, 1)
	assert.Equal(t, float32(0), a.OverlapArea(c))
}

func TestRectPointInsideHalfOpen(t *testing.T) {
	r := NewRect(0, 0, 2, 2)
	assert.True(t, r.PointInside(0, 0))
	assert.True(t, r.PointInside(1.999, 1.999))
	assert.False(t, r.PointInside(2, 0))
	assert.False(t, r.PointInside(0, 2))
}

func TestRectCircleIntersects(t *testing.T) {
	r := NewRect(0, 0, 4, 4)
	assert.True(t, r.CircleIntersects(5, 2, 2))
	assert.False(t, r.CircleIntersects(10, 2, 2))
}

func TestMBREmpty(t *testing.T) {
	mbr := MBR(nil)
	assert.Equal(t, float32(0), mbr.Area())
}

func TestRectDistanceSeparatedOnOneAxis(t *testing.T) {
	// Separated on X (ox<0), overlapping on Y (oy>=0): distance is the Y
	// overlap length, per the preserved quirk in §4.6.
	query := NewRect(0, 0, 2, 2)
	candidate := NewRect(10, 1, 2, 2)
	ox, oy := query.Overlap(candidate)
	assert.Less(t, ox, float32(0))
	assert.GreaterOrEqual(t, oy, float32(0))
	assert.Equal(t, oy, rectDistance(query, candidate, true))
}

func TestRectDistanceDiagonalSeparation(t *testing.T) {
	query := NewRect(0, 0, 2, 2)
	candidate := NewRect(5, 5, 2, 2)
	ox, oy := query.Overlap(candidate)
	assert.Less(t, ox, float32(0))
	assert.Less(t, oy, float32(0))
	// both separated: default branch without the containment tie-break.
	assert.Equal(t, float32(0), rectDistance(query, candidate, false))
}

func TestRectDistanceContainmentTieBreak(t *testing.T) {
	// Constructed so -ox == candidate.W and -oy == candidate.H exactly,
	// triggering the containment tie-break even though the rectangles are
	// actually diagonally separated — the documented quirk in §4.6.
	query := NewRect(0, 0, 7, 7)
	candidate := NewRect(10, 10, 3, 3)
	ox, oy := query.Overlap(candidate)
	assert.Equal(t, -candidate.W, ox)
	assert.Equal(t, -candidate.H, oy)
	assert.Equal(t, float32(6), rectDistance(query, candidate, true))
}
