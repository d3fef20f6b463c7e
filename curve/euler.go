package curve

import (
	"fmt"
	"math"

	"github.com/npillmayer/wgmask"
)

// TipEpsilon is the offset of the extra points EulerUTurn inserts next to
// the tips of a bend. Path renderers degenerate a trace whose tip segment is
// exactly colinear with the adjoining straight; the extra points prevent that.
const TipEpsilon = 0.001

// Spiral holds the parameters of a half Euler spiral.
type Spiral struct {
	S     float64 // arc length of the half spiral
	Alpha float64 // curvature rate
	N     int     // sample count
}

// SpiralForArcLength returns the spiral parameters for one half of a 180°
// Euler bend of total arc length arcLength: S = arcLength/2 and α = π/S².
// With these, the normalized spiral argument S/L ends at exactly 1.
func SpiralForArcLength(arcLength float64, n int) (Spiral, error) {
	if !wgmask.IsFinite(arcLength) || arcLength <= 0 {
		tracer().Errorf("Euler bend arc length must be positive, is %g", arcLength)
		return Spiral{}, fmt.Errorf("%w: arc length %g yields a non-positive curvature rate",
			wgmask.ErrNumericDomain, arcLength)
	}
	s := arcLength / 2
	sp := Spiral{S: s, Alpha: math.Pi / (s * s), N: n}
	return sp, sp.Validate()
}

// L returns the characteristic length ℓ = sqrt(π/α) of the spiral.
func (sp Spiral) L() float64 {
	return math.Sqrt(math.Pi / sp.Alpha)
}

// Validate checks the parameters of a spiral.
func (sp Spiral) Validate() error {
	if !wgmask.IsFinite(sp.Alpha) || sp.Alpha <= 0 {
		tracer().Errorf("curvature rate must be positive, is %g", sp.Alpha)
		return fmt.Errorf("%w: curvature rate must be positive, is %g", wgmask.ErrNumericDomain, sp.Alpha)
	}
	return wgmask.FirstError(
		wgmask.CheckPositive("spiral length", sp.S),
		wgmask.CheckSamples(sp.N),
	)
}

// Sample evaluates the spiral at N arc lengths t, uniformly spaced in [0, S]:
//
//	ℓ·(C(t/ℓ), S(t/ℓ)) + bias
func (sp Spiral) Sample(bias wgmask.Pair) (Sample, error) {
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	l := sp.L()
	ts := span(0, sp.S, sp.N)
	spiral := make(Sample, sp.N)
	for i, t := range ts {
		fs, fc := Fresnel(t / l)
		spiral[i] = wgmask.P(l*fc, l*fs) + bias
	}
	return spiral, nil
}

// UTurn builds a 180° turn from two spiral halves. The lower half is the
// spiral itself; the upper half is the lower one mirrored at the horizontal
// line through the lower half's end point and traversed backwards. Extra
// points, TipEpsilon to the right of the first and the last point, are
// inserted right after the first and right before the last point.
func (sp Spiral) UTurn(bias wgmask.Pair) (Sample, error) {
	lower, err := sp.Sample(wgmask.Origin)
	if err != nil {
		return nil, err
	}
	yshift := 2 * lower.Last().Y()
	upper := make(Sample, len(lower))
	for i, p := range lower {
		upper[len(lower)-1-i] = wgmask.P(p.X(), yshift-p.Y())
	}
	turn := lower.Concat(upper)
	turn = turn.insertAt(1, turn.First()+wgmask.P(TipEpsilon, 0))
	turn = turn.insertAt(len(turn)-1, turn.Last()+wgmask.P(TipEpsilon, 0))
	tracer().Debugf("Euler U-turn s=%g, α=%g: %d points, opening %g", sp.S, sp.Alpha, len(turn), yshift)
	return turn.Shifted(bias), nil
}

// EulerSpiral samples n points of an Euler spiral with arc length s and
// curvature rate alpha, shifted by bias.
func EulerSpiral(s, alpha float64, n int, bias wgmask.Pair) (Sample, error) {
	return Spiral{S: s, Alpha: alpha, N: n}.Sample(bias)
}

// EulerUTurn builds a 180° Euler turn of two spiral halves with arc length s
// and curvature rate alpha each, shifted by bias. See Spiral.UTurn.
func EulerUTurn(s, alpha float64, n int, bias wgmask.Pair) (Sample, error) {
	return Spiral{S: s, Alpha: alpha, N: n}.UTurn(bias)
}
