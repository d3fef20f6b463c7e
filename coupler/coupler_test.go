package coupler

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/curve"
	"github.com/npillmayer/wgmask/resonator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPassRingExample(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	res, err := resonator.Racetrack(100, 10, 0.45)
	require.NoError(t, err)
	ring, err := AllPass(res, 0.2)
	require.NoError(t, err)
	assert.Equal(t, "ALL_PASS_RING", ring.Name())
	assert.InDelta(t, 210.45, ring.BusLength, 1e-9)
	assert.InDelta(t, -0.65, ring.BusOffset.Y(), 1e-12)
	assert.InDelta(t, -100.225, ring.BusOffset.X(), 1e-12)
	assert.Len(t, ring.Elements(), 5)
	first, last := ring.Bus().Ends()
	assert.InDelta(t, 210.45, last.X()-first.X(), 1e-9)
}

func TestBusNeverOverlapsResonator(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, radius := range []float64{5, 20, 100} {
		for _, gap := range []float64{0.01, 0.2, 1.5} {
			for _, width := range []float64{0.3, 0.45, 0.8} {
				res, err := resonator.Racetrack(radius, 10, width)
				require.NoError(t, err)
				checkSeparation(t, res, gap)
				res, err = resonator.EulerRacetrack(2*radius, 10, width)
				require.NoError(t, err)
				checkSeparation(t, res, gap)
			}
		}
	}
}

func TestAdiabaticAllPass(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	res, err := resonator.AdiabaticEulerRacetrack(0.45, 10, 100, 80, 400)
	require.NoError(t, err)
	ring, err := AllPass(res, 0.2)
	require.NoError(t, err)
	assert.Equal(t, "ALL_PASS_ADIABATIC_EULER_RING", ring.Name())
	// the adiabatic loop's lower edge is at y=0
	bus := ring.Bus().BBox()
	assert.InDelta(t, -0.2, bus.Max.Y(), 1e-12)
	assert.InDelta(t, 0.0, res.Bounds().Min.Y(), 1e-12)
	checkSeparation(t, res, 0.2)
	// a straight length off the 1 nm grid moves bus and loop alike
	res, err = resonator.AdiabaticEulerRacetrack(0.45, 10.0006, 100, 80, 400)
	require.NoError(t, err)
	ring, err = AllPass(res, 0.2)
	require.NoError(t, err)
	assert.InDelta(t, res.Bounds().Min.X(), ring.BusOffset.X(), 2e-3)
	assert.InDelta(t, res.Bounds().Max.X(), ring.BusOffset.X()+ring.BusLength, 2e-3)
	assert.InDelta(t, -10.001-res.HalfExtent.X(), ring.BusOffset.X(), 1e-9)
}

func TestNormalizedEndpointIsShared(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	const arc, l, w, gap = 60.0, 7.0, 0.5, 0.3
	xend := curve.NormalizedEndpoint(arc / 2).X()

	euler, err := resonator.EulerRacetrack(arc, l, w)
	require.NoError(t, err)
	ring, err := AllPass(euler, gap)
	require.NoError(t, err)
	assert.Equal(t, l+2*xend+w, ring.BusLength)
	assert.Equal(t, wgmask.P(-xend-w/2, -gap-w), ring.BusOffset)
	assert.InDelta(t, 2*curve.NormalizedEndpoint(arc/2).Y(), euler.Separation(), 0)

	adiabatic, err := resonator.AdiabaticEulerRacetrack(w, l, arc, arc-5, 300)
	require.NoError(t, err)
	ring, err = AllPass(adiabatic, gap)
	require.NoError(t, err)
	assert.Equal(t, l+2*xend, ring.BusLength)
	assert.Equal(t, wgmask.P(-xend-l, -gap-w/2), ring.BusOffset)
}

func TestOverlapIsDetected(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	res, err := resonator.Racetrack(10, 5, 0.5)
	require.NoError(t, err)
	ring, err := AllPass(res, 0.2)
	require.NoError(t, err)
	ring.bus = ring.bus.Then(wgmask.Move(wgmask.P(0, 0.5)))
	assert.ErrorIs(t, ring.CheckSeparated(), wgmask.ErrGeometry)
}

func TestAllPassRejectsBadParameters(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	res, err := resonator.Racetrack(10, 5, 0.5)
	require.NoError(t, err)
	_, err = AllPass(res, 0)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
	_, err = AllPass(res, -0.2)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
	_, err = AllPass(nil, 0.2)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
}

func checkSeparation(t *testing.T, res *resonator.Resonator, gap float64) {
	t.Helper()
	ring, err := AllPass(res, gap)
	require.NoError(t, err, "%v, gap %g", res, gap)
	bus := ring.Bus().BBox()
	assert.False(t, bus.Overlaps(res.Bounds()), "%v, gap %g", res, gap)
	assert.Less(t, bus.Max.Y(), res.Bounds().Min.Y())
}
