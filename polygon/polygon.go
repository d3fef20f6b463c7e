// Package polygon deals with closed polygons on a mask: building them,
// bounding boxes and boolean intersection.
//
// Polygons are built with a builder pattern:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
//
// Boolean operations are delegated to polyclip-go.
package polygon

import (
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wgmask"
)

// L traces to the geometry tracer.
func L() tracing.Trace {
	return tracing.Select("geometry")
}

// Polygon is a sequence of knots. A closed polygon connects its last knot
// back to the first one.
type Polygon struct {
	points []wgmask.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates a closed polygon from a sequence of points. Consecutive
// duplicate points are dropped.
func FromPoints(pts []wgmask.Pair) *Polygon {
	pg := &Polygon{points: make([]wgmask.Pair, 0, len(pts))}
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg.Cycle()
}

// Box creates a rectangle spanned by two opposite corners.
func Box(p1, p2 wgmask.Pair) *Polygon {
	x0, x1 := math.Min(p1.X(), p2.X()), math.Max(p1.X(), p2.X())
	y0, y1 := math.Min(p1.Y(), p2.Y()), math.Max(p1.Y(), p2.Y())
	return NullPolygon().Knot(wgmask.P(x0, y0)).Knot(wgmask.P(x1, y0)).
		Knot(wgmask.P(x1, y1)).Knot(wgmask.P(x0, y1)).Cycle()
}

// Knot appends a point to a polygon. A knot identical to the previous one
// is ignored. Part of builder functionality.
func (pg *Polygon) Knot(p wgmask.Pair) *Polygon {
	if n := len(pg.points); n > 0 && pg.points[n-1] == p {
		return pg
	}
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if n := len(pg.points); n > 1 && pg.points[0] == pg.points[n-1] {
		pg.points = pg.points[:n-1]
	}
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns knot i (mod N).
func (pg *Polygon) Pt(i int) wgmask.Pair {
	n := pg.N()
	return pg.points[((i%n)+n)%n]
}

// Vertices returns a copy of the knots of the polygon.
func (pg *Polygon) Vertices() []wgmask.Pair {
	pts := make([]wgmask.Pair, len(pg.points))
	copy(pts, pg.points)
	return pts
}

// HalfWidth is 0 for polygons; they have no stroke.
func (pg *Polygon) HalfWidth() float64 {
	return 0
}

// Transformed returns a new polygon with every knot transformed by t.
func (pg *Polygon) Transformed(t wgmask.Trans) *Polygon {
	return &Polygon{points: t.ApplyAll(pg.points), cycle: pg.cycle}
}

// Area returns the signed area of a closed polygon (positive for
// counter-clockwise knots).
func (pg *Polygon) Area() float64 {
	a := 0.0
	for i := 0; i < pg.N(); i++ {
		p, q := pg.Pt(i), pg.Pt(i+1)
		a += p.X()*q.Y() - q.X()*p.Y()
	}
	return a / 2
}

// BBox returns the bounding box of a polygon.
func (pg *Polygon) BBox() Rect {
	if pg.N() == 0 {
		return EmptyRect()
	}
	bb := pg.clip().BoundingBox()
	return Rect{
		Min: wgmask.P(bb.Min.X, bb.Min.Y),
		Max: wgmask.P(bb.Max.X, bb.Max.Y),
	}
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, len(pg.points))
	for i, p := range pg.points {
		c[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return c
}

func (pg *Polygon) clip() polyclip.Polygon {
	return polyclip.Polygon{pg.contour()}
}

// Intersection returns the contours of the intersection of two polygon sets.
// Every returned polygon is closed. An empty result means the two sets do not
// overlap.
func Intersection(a, b []*Polygon) []*Polygon {
	subject, clipping := union(a), union(b)
	if len(subject) == 0 || len(clipping) == 0 {
		return nil
	}
	result := subject.Construct(polyclip.INTERSECTION, clipping)
	var pgs []*Polygon
	for _, c := range result {
		if len(c) < 3 {
			continue
		}
		pg := NullPolygon()
		for _, p := range c {
			pg.Knot(wgmask.P(p.X, p.Y))
		}
		pgs = append(pgs, pg.Cycle())
	}
	L().Debugf("intersection of %d and %d polygons has %d contours", len(a), len(b), len(pgs))
	return pgs
}

func union(pgs []*Polygon) polyclip.Polygon {
	var u polyclip.Polygon
	for _, pg := range pgs {
		if pg.N() < 3 {
			continue
		}
		if u == nil {
			u = pg.clip()
			continue
		}
		u = u.Construct(polyclip.UNION, pg.clip())
	}
	return u
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, p := range pg.points {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(fmt.Sprintf("(%.4g,%.4g)", p.X(), p.Y()))
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
