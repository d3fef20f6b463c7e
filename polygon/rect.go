package polygon

import (
	"fmt"
	"math"

	"github.com/npillmayer/wgmask"
)

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max wgmask.Pair
}

// EmptyRect returns a rectangle which contains nothing. It is the neutral
// element for Union.
func EmptyRect() Rect {
	inf := math.Inf(1)
	return Rect{Min: wgmask.P(inf, inf), Max: wgmask.P(-inf, -inf)}
}

// IsEmpty is a predicate: does r contain no point at all?
func (r Rect) IsEmpty() bool {
	return r.Min.X() > r.Max.X() || r.Min.Y() > r.Max.Y()
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.X() - r.Min.X()
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.Y() - r.Min.Y()
}

// Center returns the center point of r.
func (r Rect) Center() wgmask.Pair {
	return r.Min.Mid(r.Max)
}

// Union returns the smallest rectangle containing r and r2.
func (r Rect) Union(r2 Rect) Rect {
	return Rect{
		Min: wgmask.P(math.Min(r.Min.X(), r2.Min.X()), math.Min(r.Min.Y(), r2.Min.Y())),
		Max: wgmask.P(math.Max(r.Max.X(), r2.Max.X()), math.Max(r.Max.Y(), r2.Max.Y())),
	}
}

// Enlarged returns r grown by d on every side.
func (r Rect) Enlarged(d float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{Min: r.Min - wgmask.P(d, d), Max: r.Max + wgmask.P(d, d)}
}

// Overlaps is a predicate: do r and r2 share interior points? Rectangles
// touching at an edge do not overlap.
func (r Rect) Overlaps(r2 Rect) bool {
	if r.IsEmpty() || r2.IsEmpty() {
		return false
	}
	return r.Min.X() < r2.Max.X() && r2.Min.X() < r.Max.X() &&
		r.Min.Y() < r2.Max.Y() && r2.Min.Y() < r.Max.Y()
}

// Polygon returns r as a closed polygon.
func (r Rect) Polygon() *Polygon {
	return Box(r.Min, r.Max)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s..%s]", r.Min, r.Max)
}
