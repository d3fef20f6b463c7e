// Package segment builds the canonical waveguide pieces resonators and
// couplers are composed of: straights and 180° bends, as paths with a width.
//
// Every piece is built in its own local frame, with both ends of a bend on
// a coordinate axis, so that placed bends join matching-width straights
// without coordinate patches:
//
//	circular bend:  (r,0) → (−r,0) counter-clockwise around the origin
//	Euler bend:     (0,0) → (0,2·y_end), bulging to the right
package segment

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/curve"
	"github.com/npillmayer/wgmask/polygon"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

// DefaultSamples is the sample count for bends when none is given.
const DefaultSamples = 1000

// Path is a waveguide trace: a center line with a width.
type Path struct {
	Points curve.Sample
	Width  float64
}

// Vertices returns a copy of the center line points.
func (p Path) Vertices() []wgmask.Pair {
	pts := make([]wgmask.Pair, len(p.Points))
	copy(pts, p.Points)
	return pts
}

// HalfWidth returns half the path's width.
func (p Path) HalfWidth() float64 {
	return p.Width / 2
}

// Transformed returns a new path with its center line placed by t.
func (p Path) Transformed(t wgmask.Trans) Path {
	return Path{Points: p.Points.Transformed(t), Width: p.Width}
}

// BBox returns the bounding box of the center line, grown by half the width.
// For bends this is a tight bound at the apex and conservative elsewhere.
func (p Path) BBox() polygon.Rect {
	if len(p.Points) == 0 {
		return polygon.EmptyRect()
	}
	min, max := p.Points.Bounds()
	return polygon.Rect{Min: min, Max: max}.Enlarged(p.HalfWidth())
}

// Outline returns the region covered by the path as a closed polygon. Every
// center line point is offset by half the width along the normal of the
// chord between its neighbours; path ends are flat.
func (p Path) Outline() *polygon.Polygon {
	n := len(p.Points)
	left := make([]wgmask.Pair, 0, n)
	right := make([]wgmask.Pair, 0, n)
	hw := p.HalfWidth()
	for i := range p.Points {
		normal := p.tangent(i).Normal().Scaled(hw)
		left = append(left, p.Points[i]+normal)
		right = append(right, p.Points[i]-normal)
	}
	pg := polygon.NullPolygon()
	for _, q := range right {
		pg.Knot(q)
	}
	for i := len(left) - 1; i >= 0; i-- {
		pg.Knot(left[i])
	}
	return pg.Cycle()
}

// tangent returns the unit direction of the center line at point i,
// skipping neighbours which coincide with point i.
func (p Path) tangent(i int) wgmask.Pair {
	n := len(p.Points)
	for d := 1; d < n; d++ {
		a, b := max(i-d, 0), min(i+d, n-1)
		if t := p.Points[b] - p.Points[a]; !wgmask.Is0(t.Abs()) {
			return t.Unit()
		}
	}
	return wgmask.P(1, 0)
}

// Straight returns a straight waveguide from (0,0) to (length,0).
func Straight(length, width float64) (Path, error) {
	if err := wgmask.FirstError(
		wgmask.CheckPositive("straight length", length),
		wgmask.CheckPositive("width", width),
	); err != nil {
		return Path{}, err
	}
	return Path{
		Points: curve.Sample{wgmask.Origin, wgmask.P(length, 0)},
		Width:  width,
	}, nil
}

// CircularBend180 returns a half circle of the given radius around the
// origin, from (r,0) counter-clockwise to (−r,0). Next to either end an
// extra point (±r, curve.TipEpsilon) is inserted, mirroring what
// curve.Spiral.UTurn does for Euler bends.
func CircularBend180(radius, width float64, n int) (Path, error) {
	if err := wgmask.CheckPositive("width", width); err != nil {
		return Path{}, err
	}
	arc, err := curve.CircularArc(wgmask.Origin, radius, 0, 180, n)
	if err != nil {
		return Path{}, err
	}
	arc[0], arc[len(arc)-1] = wgmask.P(radius, 0), wgmask.P(-radius, 0)
	pts := make(curve.Sample, 0, len(arc)+2)
	pts = append(pts, arc[0], wgmask.P(radius, curve.TipEpsilon))
	pts = append(pts, arc[1:len(arc)-1]...)
	pts = append(pts, wgmask.P(-radius, curve.TipEpsilon), arc[len(arc)-1])
	tracer().Debugf("circular bend r=%g, w=%g: %d points", radius, width, len(pts))
	return Path{Points: pts, Width: width}, nil
}

// EulerBend180 returns a 180° Euler bend of total arc length arcLength,
// starting at the origin and ending at (0, 2·y_end), where y_end is the
// y-coordinate of the half spiral's end point. n is the sample count per
// half.
func EulerBend180(arcLength, width float64, n int) (Path, error) {
	if err := wgmask.CheckPositive("width", width); err != nil {
		return Path{}, err
	}
	sp, err := curve.SpiralForArcLength(arcLength, n)
	if err != nil {
		return Path{}, err
	}
	turn, err := sp.UTurn(wgmask.Origin)
	if err != nil {
		return Path{}, err
	}
	return Path{Points: turn, Width: width}, nil
}

// EulerHalfExtent returns the end point of one half spiral of an Euler bend
// with total arc length arcLength: (L·C(1), L·S(1)) with L = arcLength/2.
// Its x-coordinate is the bend's bulge, its y-coordinate half the bend's
// opening.
func EulerHalfExtent(arcLength float64) wgmask.Pair {
	return curve.NormalizedEndpoint(arcLength / 2)
}

// Bend wraps an arbitrary center line as a path. At least two points are
// required.
func Bend(points curve.Sample, width float64) (Path, error) {
	if err := wgmask.FirstError(
		wgmask.CheckSamples(len(points)),
		wgmask.CheckPositive("width", width),
	); err != nil {
		return Path{}, err
	}
	pts := make(curve.Sample, len(points))
	copy(pts, points)
	return Path{Points: pts, Width: width}, nil
}
