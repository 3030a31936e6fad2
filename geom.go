package rstar

import (
	"math"

	"github.com/maja42/vmath"
)

// Rect is an axis-aligned rectangle with origin (X, Y) and extents (W, H).
// The interior is half-open: [X, X+W) x [Y, Y+H). NewRect and Tree.Insert
// clamp negative W and H to zero instead of rejecting the rectangle.
type Rect struct {
	X, Y, W, H float32
}

// NewRect builds a Rect, normalizing negative extents to zero.
func NewRect(x, y, w, h float32) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the rectangle's right edge (X + W).
func (r Rect) Right() float32 { return r.X + r.W }

// Bottom returns the rectangle's bottom edge (Y + H).
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Area returns W*H.
func (r Rect) Area() float32 { return r.W * r.H }

// Perimeter returns the sum of all four edges.
func (r Rect) Perimeter() float32 { return 2 * (r.W + r.H) }

// Center returns the rectangle's midpoint.
func (r Rect) Center() (cx, cy float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Union returns the smallest rectangle containing both a and b. emptyRect is
// the union identity and is special-cased rather than folded through the
// min/max arithmetic below, since its corners sit at +Inf (see emptyRect) and
// would otherwise stretch the result to an infinite extent.
func Union(a, b Rect) Rect {
	if a == emptyRect {
		return b
	}
	if b == emptyRect {
		return a
	}
	minX := vmath.Min(a.X, b.X)
	minY := vmath.Min(a.Y, b.Y)
	maxX := vmath.Max(a.Right(), b.Right())
	maxY := vmath.Max(a.Bottom(), b.Bottom())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// MBR returns the minimum bounding rectangle over boxes. An empty slice
// yields the zero-area sentinel used internally for empty nodes.
func MBR(boxes []Rect) Rect {
	if len(boxes) == 0 {
		return emptyRect
	}
	mbr := boxes[0]
	for _, b := range boxes[1:] {
		mbr = Union(mbr, b)
	}
	return mbr
}

// emptyRect is the union identity: merging it with any rectangle yields that
// rectangle unchanged. Its corners sit at +Inf with zero extent rather than
// the teacher's +Inf/-Inf noBounds pair, so Right()/Bottom() are +Inf rather
// than NaN even if a node is ever recalculated with no children.
var emptyRect = Rect{
	X: vmath.Infinity,
	Y: vmath.Infinity,
	W: 0,
	H: 0,
}

// Intersects reports whether r and o overlap. The comparison is closed:
// rectangles that only touch along an edge or at a corner count as
// intersecting, even though their half-open interiors share no point.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.Right() && r.Right() >= o.X &&
		r.Y <= o.Bottom() && r.Bottom() >= o.Y
}

// Overlap returns the signed per-axis overlap between r and o. A positive
// value is the length of the shared span on that axis; a negative value is
// the gap between the rectangles on that axis.
func (r Rect) Overlap(o Rect) (ox, oy float32) {
	ox = vmath.Min(r.Right(), o.Right()) - vmath.Max(r.X, o.X)
	oy = vmath.Min(r.Bottom(), o.Bottom()) - vmath.Max(r.Y, o.Y)
	return ox, oy
}

// OverlapArea returns the area shared by r and o, or 0 when disjoint.
func (r Rect) OverlapArea(o Rect) float32 {
	ox, oy := r.Overlap(o)
	if ox <= 0 || oy <= 0 {
		return 0
	}
	return ox * oy
}

// PointInside reports whether (x, y) lies within the rectangle's half-open
// interior.
func (r Rect) PointInside(x, y float32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CircleIntersects reports whether the circle centered at (cx, cy) with the
// given radius touches or overlaps the rectangle.
func (r Rect) CircleIntersects(cx, cy, radius float32) bool {
	closestX := vmath.Max(r.X, vmath.Min(cx, r.Right()))
	closestY := vmath.Max(r.Y, vmath.Min(cy, r.Bottom()))
	dx := float64(cx - closestX)
	dy := float64(cy - closestY)
	return dx*dx+dy*dy <= float64(radius)*float64(radius)
}

// Circle is a query shape for Tree.Range.
type Circle struct {
	X, Y, R float32
}

// rectDistance implements the rectangle-to-rectangle distance metric of
// §4.6: a deliberately preserved quirk where the "separated on one axis"
// cases return the *other* axis's overlap rather than the separation gap.
// When both overlaps are negative (the boxes are separated on both axes) the
// result is 0, unless emptyFlag is set and the gaps (-ox, -oy) equal one box's
// extents; then the smallest edge offset between the two boxes is returned.
func rectDistance(query, candidate Rect, emptyFlag bool) float32 {
	ox, oy := query.Overlap(candidate)

	switch {
	case ox < 0 && oy >= 0:
		return oy
	case oy < 0 && ox >= 0:
		return ox
	case ox >= 0 && oy >= 0:
		return float32(math.Sqrt(float64(ox)*float64(ox) + float64(oy)*float64(oy)))
	default: // ox < 0 && oy < 0: separated on both axes
		if !emptyFlag {
			return 0
		}
		queryContainsCandidate := -ox == candidate.W && -oy == candidate.H
		candidateContainsQuery := -ox == query.W && -oy == query.H
		if !queryContainsCandidate && !candidateContainsQuery {
			return 0
		}
		dRight := absF(candidate.Right() - query.Right())
		dLeft := absF(candidate.X - query.X)
		dBottom := absF(candidate.Bottom() - query.Bottom())
		dTop := absF(candidate.Y - query.Y)
		return minF(minF(dRight, dLeft), minF(dBottom, dTop))
	}
}

func absF(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
