package curve

import (
	"fmt"
	"math"

	"github.com/npillmayer/wgmask"
)

// CircularArc samples n points on a circle around center, with angles
// linearly spaced from angleStart to angleEnd (both in degrees, both
// included).
func CircularArc(center wgmask.Pair, radius, angleStart, angleEnd float64, n int) (Sample, error) {
	if err := wgmask.FirstError(
		wgmask.CheckPositive("radius", radius),
		wgmask.CheckSamples(n),
	); err != nil {
		return nil, err
	}
	if !wgmask.IsFinite(angleStart) || !wgmask.IsFinite(angleEnd) {
		return nil, fmt.Errorf("%w: arc angles must be finite", wgmask.ErrConfiguration)
	}
	angles := span(angleStart*wgmask.Deg2Rad, angleEnd*wgmask.Deg2Rad, n)
	arc := make(Sample, n)
	for i, a := range angles {
		arc[i] = center + wgmask.P(radius*math.Cos(a), radius*math.Sin(a))
	}
	tracer().Debugf("arc r=%g from %g° to %g°, %d points", radius, angleStart, angleEnd, n)
	return arc, nil
}

// CenterSide selects one of the two circles of a given radius through two
// points, relative to the direction from the first to the second point.
type CenterSide uint8

const (
	// CenterLeft puts the center to the left of p1→p2. The arc bulges to the
	// right and runs counter-clockwise.
	CenterLeft CenterSide = iota
	// CenterRight puts the center to the right of p1→p2. The arc bulges to the
	// left and runs clockwise.
	CenterRight
)

// ArcThroughTwoPoints samples n points on the shorter circular arc of the
// given radius from p1 to p2, with the circle's center to the left of
// p1→p2 (see CenterLeft). The first and last sample are p1 and p2.
//
// If radius is less than half the distance between p1 and p2, no such circle
// exists and an error wrapping wgmask.ErrGeometry is returned.
func ArcThroughTwoPoints(p1, p2 wgmask.Pair, radius float64, n int) (Sample, error) {
	return ArcThroughTwoPointsSide(p1, p2, radius, n, CenterLeft)
}

// ArcThroughTwoPointsSide is ArcThroughTwoPoints with an explicit choice of
// the circle's center.
func ArcThroughTwoPointsSide(p1, p2 wgmask.Pair, radius float64, n int, side CenterSide) (Sample, error) {
	center, err := ArcCenter(p1, p2, radius, side)
	if err != nil {
		return nil, err
	}
	if err = wgmask.CheckSamples(n); err != nil {
		return nil, err
	}
	a1, a2 := (p1 - center).Angle(), (p2 - center).Angle()
	if side == CenterLeft && a2 < a1 {
		a2 += 360
	} else if side == CenterRight && a2 > a1 {
		a2 -= 360
	}
	arc, err := CircularArc(center, radius, a1, a2, n)
	if err != nil {
		return nil, err
	}
	arc[0], arc[n-1] = p1, p2 // exact end points
	return arc, nil
}

// ArcCenter returns the center of the circle with the given radius through p1
// and p2 on the requested side.
func ArcCenter(p1, p2 wgmask.Pair, radius float64, side CenterSide) (wgmask.Pair, error) {
	if err := wgmask.CheckPositive("radius", radius); err != nil {
		return wgmask.Origin, err
	}
	chord := p2 - p1
	h := chord.Abs() / 2
	if wgmask.Is0(h) {
		return wgmask.Origin, fmt.Errorf("%w: arc end points %v and %v coincide", wgmask.ErrGeometry, p1, p2)
	}
	if radius < h {
		tracer().Errorf("radius %g cannot span chord of half-length %g", radius, h)
		return wgmask.Origin, fmt.Errorf("%w: radius %g is less than half the chord %g", wgmask.ErrGeometry, radius, h)
	}
	offset := math.Sqrt(math.Max(0, radius*radius-h*h))
	normal := chord.Unit().Normal()
	if side == CenterRight {
		normal = -normal
	}
	return p1.Mid(p2) + normal.Scaled(offset), nil
}
