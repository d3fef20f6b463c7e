package device

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsBuild(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sink := layout.NewMemorySink()
	namer := &layout.Namer{}
	var devs []layout.Device
	ring, err := AllPassRing(DefaultRingParams())
	require.NoError(t, err)
	devs = append(devs, ring)
	euler, err := AllPassEulerRing(DefaultEulerRingParams())
	require.NoError(t, err)
	devs = append(devs, euler)
	p := DefaultAdiabaticRingParams()
	p.Samples = 400
	adiabatic, err := AllPassAdiabaticEulerRing(p)
	require.NoError(t, err)
	devs = append(devs, adiabatic)
	res, err := AdiabaticRacetrack(DefaultAdiabaticRacetrackParams())
	require.NoError(t, err)
	devs = append(devs, res)
	periodic, err := PeriodicGrating(DefaultPeriodicGratingParams())
	require.NoError(t, err)
	devs = append(devs, periodic, MustArcGrating(DefaultArcGratingParams()))
	fan, err := FanGrating(DefaultFanGratingParams())
	require.NoError(t, err)
	devs = append(devs, fan)
	for _, d := range devs {
		_, err := layout.Emit(sink, namer, d, nil)
		require.NoError(t, err, d.Name())
	}
	names := make([]string, 0, len(devs))
	for _, c := range sink.Cells() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{
		"ALL_PASS_RING", "ALL_PASS_EULER_RING", "ALL_PASS_ADIABATIC_EULER_RING",
		"ADIABATIC_EULER_RING", "GRATING_ANSYS", "GRATING_ARC", "GRATING_NATURE",
	}, names)
}

func TestMustPanics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := DefaultRingParams()
	p.Gap = 0
	assert.Panics(t, func() { MustAllPassRing(p) })
	_, err := AllPassRing(p)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
	e := DefaultEulerRingParams()
	e.ArcLength = -3
	assert.Panics(t, func() { MustAllPassEulerRing(e) })
	a := DefaultArcGratingParams()
	a.NumElements = 5
	assert.Panics(t, func() { MustArcGrating(a) })
	assert.NotPanics(t, func() { MustAllPassRing(DefaultRingParams()) })
}
