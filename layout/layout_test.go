package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/coupler"
	"github.com/npillmayer/wgmask/grating"
	"github.com/npillmayer/wgmask/resonator"
	"github.com/npillmayer/wgmask/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamer(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var n Namer
	assert.Equal(t, "RING", n.Next("RING"))
	assert.Equal(t, "RING_1", n.Next("RING"))
	assert.Equal(t, "BUS", n.Next("BUS"))
	assert.Equal(t, "RING_2", n.Next("RING"))
	var other Namer // counters are not shared
	assert.Equal(t, "RING", other.Next("RING"))
}

func TestEmitAllPassRing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	res, err := resonator.Racetrack(100, 10, 0.45)
	require.NoError(t, err)
	ring, err := coupler.AllPass(res, 0.2)
	require.NoError(t, err)
	sink := NewMemorySink()
	namer := &Namer{}
	cell, err := Emit(sink, namer, ring, nil)
	require.NoError(t, err)
	assert.Equal(t, "ALL_PASS_RING", cell.Name())
	mc := sink.Cell("ALL_PASS_RING")
	require.NotNil(t, mc)
	shapes := mc.Shapes()
	require.Len(t, shapes, 5)
	for i, e := range ring.Elements() {
		assert.Equal(t, e.Trans, shapes[i].Trans, "shape #%d", i)
	}
	bb := mc.Bounds()
	assert.Equal(t, ring.Bounds(), bb)
	layers, counts := mc.LayerCounts()
	assert.Equal(t, []Layer{{1, 0}}, layers)
	assert.Equal(t, []int{5}, counts)
	// a second ring gets a fresh name
	cell, err = Emit(sink, namer, ring, nil)
	require.NoError(t, err)
	assert.Equal(t, "ALL_PASS_RING_1", cell.Name())
	assert.Len(t, sink.Cells(), 2)
}

func TestEmitUsesRoleLayers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g, err := grating.NewArc(grating.DefaultArcParams())
	require.NoError(t, err)
	sink := NewMemorySink()
	layers := Layers{
		segment.Core:     {Layer: 10, Datatype: 2},
		segment.Cladding: {Layer: 11, Datatype: 4},
	}
	_, err = Emit(sink, nil, g, layers)
	require.NoError(t, err)
	ls, counts := sink.Cell("GRATING_ARC").LayerCounts()
	assert.Equal(t, []Layer{{10, 2}, {11, 4}}, ls)
	assert.Equal(t, []int{6, 4}, counts)
	_, err = Emit(sink, nil, g, layers)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration) // duplicate cell name
	_, err = Emit(sink, nil, g, Layers{segment.Core: {Layer: 1}})
	assert.ErrorIs(t, err, wgmask.ErrConfiguration) // no cladding layer
}

func TestEmitRejectsMissingLayer(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g, err := grating.NewArc(grating.DefaultArcParams())
	require.NoError(t, err)
	sink := NewMemorySink()
	namer := &Namer{}
	_, err = Emit(sink, namer, g, Layers{segment.Core: {Layer: 1}})
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
	assert.Empty(t, sink.Cells(), "no cell is left behind")
	cell, err := Emit(sink, namer, g, nil)
	require.NoError(t, err)
	assert.Equal(t, "GRATING_ARC", cell.Name())
	_, err = Emit(nil, nil, g, nil)
	assert.ErrorIs(t, err, wgmask.ErrConfiguration)
}
