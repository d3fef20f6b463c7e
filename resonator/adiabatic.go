package resonator

import (
	"fmt"

	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/curve"
	"github.com/npillmayer/wgmask/polygon"
	"github.com/npillmayer/wgmask/segment"
)

// Defaults of an adiabatic Euler racetrack, in micrometers.
const (
	DefaultAdiabaticWidth    = 0.45
	DefaultAdiabaticStraight = 3.0
	DefaultAdiabaticSamples  = 2000
	DefaultAdiabaticOuterArc = 20.0
	DefaultAdiabaticInnerArc = 17.0
)

// Cell names of the pieces of an adiabatic racetrack.
const (
	NameAdiabaticArc180 = "ADIABATIC_EULER_ARC180"
	NameConnector       = "CONNECTOR"
)

// AdiabaticEulerRacetrack creates a racetrack whose bends are regions between
// two Euler U-turns: an outer one of arc length arcOuter starting at the
// origin, and an inner, tighter one of arc length arcInner starting at
// (0, width). The left bend is the right one mirrored at the vertical line
// x = −straightLength/2. Two trapezoids connect the bends' lower and upper
// ends.
//
// Geometry is computed on the 1 nm grid of a mask database and returned in
// micrometers. n is the sample count per spiral half.
func AdiabaticEulerRacetrack(width, straightLength, arcOuter, arcInner float64, n int) (*Resonator, error) {
	if err := wgmask.FirstError(
		wgmask.CheckPositive("width", width),
		checkStraight(straightLength),
		wgmask.CheckPositive("outer arc length", arcOuter),
		wgmask.CheckPositive("inner arc length", arcInner),
		wgmask.CheckSamples(n),
	); err != nil {
		return nil, err
	}
	if arcInner >= arcOuter {
		tracer().Errorf("inner arc %g must be shorter than outer arc %g", arcInner, arcOuter)
		return nil, fmt.Errorf("%w: inner arc length %g must be less than outer arc length %g",
			wgmask.ErrConfiguration, arcInner, arcOuter)
	}
	nm := wgmask.Nanometer
	outer, err := curve.SpiralForArcLength(nm.FromMicrons(arcOuter), n)
	if err != nil {
		return nil, err
	}
	inner, err := curve.SpiralForArcLength(nm.FromMicrons(arcInner), n)
	if err != nil {
		return nil, err
	}
	c1, err := outer.UTurn(wgmask.Origin)
	if err != nil {
		return nil, err
	}
	c2, err := inner.UTurn(wgmask.P(0, nm.FromMicrons(width)))
	if err != nil {
		return nil, err
	}
	c1, c2 = onGrid(c1, nm), onGrid(c2, nm)
	shift := nm.PairToMicrons(nm.Snap(wgmask.P(nm.FromMicrons(straightLength), 0)))
	band := polygon.FromPoints(c1.Concat(c2.Reversed()))
	bottom := polygon.FromPoints([]wgmask.Pair{
		c1.First(), c2.First(), c2.First() - shift, c1.First() - shift,
	})
	top := polygon.FromPoints([]wgmask.Pair{
		c1.Last(), c2.Last(), c2.Last() - shift, c1.Last() - shift,
	})
	r := &Resonator{
		Kind:           AdiabaticEuler,
		Width:          width,
		StraightLength: shift.X(), // on the nm grid, as the bends
		ArcLength:      arcOuter,
		InnerArcLength: arcInner,
		HalfExtent:     segment.EulerHalfExtent(arcOuter),
	}
	r.elements = []segment.Element{
		{Name: NameAdiabaticArc180, Shape: band},
		{Name: NameAdiabaticArc180, Shape: band, Trans: wgmask.Trans{Rot: wgmask.R180, Mirror: true, Disp: -shift}},
		{Name: NameConnector, Shape: bottom},
		{Name: NameConnector, Shape: top},
	}
	if err = r.CheckClosed(DefaultLoopTolerance); err != nil {
		return nil, err
	}
	tracer().Debugf("created %v, %d knots per bend", r, band.N())
	return r, nil
}

// onGrid snaps a sample given in unit u to the grid of u and converts it to
// micrometers.
func onGrid(s curve.Sample, u wgmask.Unit) curve.Sample {
	g := make(curve.Sample, len(s))
	for i, p := range s {
		g[i] = u.PairToMicrons(u.Snap(p))
	}
	return g
}

// checkConnected checks that every corner of a connector sits on a knot of
// one of the bend regions.
func (r *Resonator) checkConnected(tol float64) error {
	var knots []wgmask.Pair
	for _, e := range r.elements {
		if e.Name == NameAdiabaticArc180 {
			knots = append(knots, e.Placed().Vertices()...)
		}
	}
	for _, e := range r.elements {
		if e.Name != NameConnector {
			continue
		}
		for _, c := range e.Placed().Vertices() {
			if !anyNear(knots, c, tol) {
				tracer().Errorf("connector corner %v is not attached to a bend", c)
				return fmt.Errorf("%w: %s loop is open at %v", wgmask.ErrGeometry, r.Kind, c)
			}
		}
	}
	return nil
}

func anyNear(pts []wgmask.Pair, p wgmask.Pair, tol float64) bool {
	for _, q := range pts {
		if q.Near(p, tol) {
			return true
		}
	}
	return false
}
