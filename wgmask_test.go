package wgmask

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Errorf("Expected NaN and -Inf to be non-finite")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.InDelta(t, 5.0, P(0, 0).Dist(P(3, 4)), 1e-12)
	assert.Equal(t, P(1.5, 1), P(0, 0).Mid(P(3, 2)))
	assert.Equal(t, P(-2, 1), P(1, 2).Normal())
	assert.InDelta(t, 90.0, P(0, 2).Angle(), 1e-12)
	assert.True(t, P(0, 0).Unit().IsOrigin())
}

func TestRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !Rotate(R180, P(1, 0)).Apply(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestQuarterTurnsAreExact(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(100, 0)
	assert.Equal(t, P(0, 100), Rotate(R90, Origin).Apply(p))
	assert.Equal(t, P(-100, 0), Rotate(R180, Origin).Apply(p))
	assert.Equal(t, P(0, -100), Rotate(R270, Origin).Apply(p))
	assert.Equal(t, P(7, 3), Move(P(7, 3)).Apply(Origin))
}

func TestMirrorRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// mirror, rotate by 180° and shift: a reflection at the line x = -L/2
	tr := Trans{Rot: R180, Mirror: true, Disp: P(-10, 0)}
	assert.Equal(t, P(-13, 4), tr.Apply(P(3, 4)))
}

func TestTransThen(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Trans{Rot: R90, Mirror: true, Disp: P(1, 2)}
	b := Trans{Rot: R270, Disp: P(-3, 5)}
	c := Trans{Rot: R180, Mirror: true, Disp: P(0.5, 0)}
	for _, p := range []Pair{P(0, 0), P(1, 0), P(2, -7)} {
		assert.True(t, a.Then(b).Apply(p).Equal(b.Apply(a.Apply(p))), "a;b at %v", p)
		assert.True(t, b.Then(c).Apply(p).Equal(c.Apply(b.Apply(p))), "b;c at %v", p)
		assert.True(t, a.Then(c).Apply(p).Equal(c.Apply(a.Apply(p))), "a;c at %v", p)
	}
	assert.True(t, Trans{}.IsIdentity())
	assert.Equal(t, "R180 M (0.5,0)", c.String())
}

func TestUnits(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.InDelta(t, 450.0, Nanometer.FromMicrons(0.45), 1e-9)
	assert.InDelta(t, 0.45, Nanometer.ToMicrons(450), 1e-12)
	assert.Equal(t, P(3, -2), Nanometer.Snap(P(2.6, -2.4)))
	assert.Equal(t, P(2, 3), Micrometer.PairFromMicrons(P(2, 3)))
}

func TestChecks(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.NoError(t, CheckPositive("radius", 1))
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := CheckPositive("radius", v); !errors.Is(err, ErrConfiguration) {
			t.Errorf("expected ErrConfiguration for %g, got %v", v, err)
		}
	}
	assert.ErrorIs(t, CheckSamples(1), ErrConfiguration)
	assert.NoError(t, CheckSamples(2))
	assert.ErrorIs(t, FirstError(nil, CheckSamples(0), CheckPositive("w", -1)), ErrConfiguration)
}
