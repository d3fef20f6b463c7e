package resonator

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/curve"
	"github.com/npillmayer/wgmask/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRacetrackIsClosed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := Racetrack(100, 10, 0.45)
	require.NoError(t, err)
	assert.Equal(t, "RACETRACK_RESONATOR", r.Name())
	elems := r.Elements()
	require.Len(t, elems, 4)
	// walk the loop: bottom straight → right bend → top straight → left bend
	s0, s1 := elems[0].Ends()
	t0, t1 := elems[1].Ends()
	l0, l1 := elems[2].Ends()
	r0, r1 := elems[3].Ends()
	assert.True(t, s1.Near(r0, 1e-9), "bottom straight %v ≠ right bend %v", s1, r0)
	assert.True(t, r1.Near(t1, 1e-9), "right bend %v ≠ top straight %v", r1, t1)
	assert.True(t, t0.Near(l0, 1e-9), "top straight %v ≠ left bend %v", t0, l0)
	assert.True(t, l1.Near(s0, 1e-9), "left bend %v ≠ bottom straight %v", l1, s0)
	assert.NoError(t, r.CheckClosed(1e-12))
	bb := r.Bounds()
	// no sample sits exactly on the apex of a bend
	assert.InDelta(t, -100-0.225, bb.Min.X(), 1e-3)
	assert.InDelta(t, 110+0.225, bb.Max.X(), 1e-3)
	assert.InDelta(t, -0.225, bb.Min.Y(), 1e-9)
	assert.InDelta(t, 200+0.225, bb.Max.Y(), 1e-9)
	assert.Equal(t, 200.0, r.Separation())
}

func TestEulerRacetrackIsClosed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := EulerRacetrack(100, 10, 0.45)
	require.NoError(t, err)
	assert.NoError(t, r.CheckClosed(1e-9))
	end := curve.NormalizedEndpoint(50)
	assert.Equal(t, end, r.HalfExtent)
	_, top := r.Elements()[1].Ends()
	assert.InDelta(t, 2*end.Y(), top.Y(), 1e-12)
	_, bend := r.Elements()[2].Ends()
	assert.InDelta(t, 2*end.Y(), bend.Y(), 1e-9)
	bb := r.Bounds()
	assert.InDelta(t, 10+end.X()+0.225, bb.Max.X(), 1e-9)
	assert.InDelta(t, -end.X()-0.225, bb.Min.X(), 1e-9)
}

func TestOpenLoopIsDetected(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := Racetrack(5, 2, 0.5)
	require.NoError(t, err)
	r.elements[1] = r.elements[1].Then(wgmask.Move(wgmask.P(0, 0.01)))
	assert.ErrorIs(t, r.CheckClosed(DefaultLoopTolerance), wgmask.ErrGeometry)
}

func TestAdiabaticRacetrack(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := AdiabaticEulerRacetrack(DefaultAdiabaticWidth, DefaultAdiabaticStraight,
		DefaultAdiabaticOuterArc, DefaultAdiabaticInnerArc, 500)
	require.NoError(t, err)
	assert.Equal(t, "ADIABATIC_EULER_RING", r.Name())
	require.Len(t, r.Elements(), 4)
	assert.NoError(t, r.CheckClosed(1e-9))
	for _, e := range r.Elements() {
		for _, p := range e.Placed().Vertices() {
			// every knot lies on the 1 nm grid
			nm := p.Scaled(1000)
			assert.InDelta(t, math.Round(nm.X()), nm.X(), 1e-6)
			assert.InDelta(t, math.Round(nm.Y()), nm.Y(), 1e-6)
		}
	}
	xend := curve.NormalizedEndpoint(DefaultAdiabaticOuterArc / 2).X()
	bb := r.Bounds()
	assert.InDelta(t, 0.0, bb.Min.Y(), 1e-9)
	assert.InDelta(t, xend, bb.Max.X(), 2e-3)
	assert.InDelta(t, -DefaultAdiabaticStraight-xend, bb.Min.X(), 2e-3)
	// mirror symmetry around x = −L/2
	assert.InDelta(t, -DefaultAdiabaticStraight, bb.Min.X()+bb.Max.X(), 1e-9)
	bottom := r.Elements()[2].Shape.Vertices()
	assert.Equal(t, wgmask.Origin, bottom[0])
	assert.True(t, bottom[1].Near(wgmask.P(0, 0.45), 1e-12))
}

func TestAdiabaticStraightLengthIsOnGrid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := AdiabaticEulerRacetrack(0.45, 3.0004, 20, 17, 200)
	require.NoError(t, err)
	assert.Equal(t, 3.0, r.StraightLength)
	// the connectors end where the stored straight length says
	bottom := r.Elements()[2].Shape.Vertices()
	assert.Equal(t, wgmask.P(-r.StraightLength, 0), bottom[3])
}

func TestAdiabaticRacetrackRejectsBadParameters(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := AdiabaticEulerRacetrack(0.45, 3, 17, 20, 100)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
	_, err = AdiabaticEulerRacetrack(0, 3, 20, 17, 100)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
	_, err = AdiabaticEulerRacetrack(0.45, 3, 20, 17, 1)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
}

func TestRacetrackRejectsBadParameters(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Racetrack(100, 0, 0.45)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
	_, err = Racetrack(-1, 10, 0.45)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
	_, err = EulerRacetrack(0, 10, 0.45)
	assert.ErrorIs(t, err, wgmask.ErrNumericDomain)
	_, err = EulerRacetrack(100, 10, 0)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
	r, err := Racetrack(1, 1, 0.1)
	require.NoError(t, err)
	for _, e := range r.Elements() {
		assert.Equal(t, segment.Core, e.Role)
	}
}
