package grating

import (
	"fmt"

	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/curve"
	"github.com/npillmayer/wgmask/polygon"
	"github.com/npillmayer/wgmask/segment"
)

// ArcParams are the parameters of an arc grating. Lengths are in
// micrometers, angles in degrees.
type ArcParams struct {
	WaveguideWidth   float64   // width of the port waveguide
	PortLength       float64   // length of the port waveguide, ending at the origin
	TransitionX      float64   // x position of the transition's far edge
	TransitionY      float64   // height of the transition's far edge
	TransitionRadius float64   // radius of the transition's far edge
	NumElements      int       // number of scatterers
	ArcRadii         []float64 // radius of every scatterer; NumElements entries
	Pitch            float64   // distance between scatterer middles
	ElementWidth     float64   // width of a scatterer
	Cladding         float64   // partial etch margin around scatterers; 0 for none
	ArcAngle         float64   // angular span of a scatterer
	Samples          int       // sample count per arc
}

// DefaultArcParams returns the parameters of a 4-element arc grating.
func DefaultArcParams() ArcParams {
	return ArcParams{
		WaveguideWidth:   0.45,
		PortLength:       1,
		TransitionX:      0.45,
		TransitionY:      1.5,
		TransitionRadius: 0.8,
		NumElements:      4,
		ArcRadii:         []float64{1.25, 1.9, 2.55, 3.2},
		Pitch:            0.65,
		ElementWidth:     0.2,
		Cladding:         0.5,
		ArcAngle:         90,
		Samples:          360,
	}
}

// Validate checks arc grating parameters.
func (p ArcParams) Validate() error {
	if err := wgmask.FirstError(
		wgmask.CheckPositive("waveguide width", p.WaveguideWidth),
		wgmask.CheckPositive("port length", p.PortLength),
		wgmask.CheckPositive("transition x", p.TransitionX),
		wgmask.CheckPositive("transition y", p.TransitionY),
		wgmask.CheckPositive("transition radius", p.TransitionRadius),
		checkCount("number of elements", p.NumElements),
		wgmask.CheckPositive("pitch", p.Pitch),
		wgmask.CheckPositive("element width", p.ElementWidth),
		wgmask.CheckPositive("arc angle", p.ArcAngle),
		wgmask.CheckSamples(p.Samples),
	); err != nil {
		return err
	}
	if p.Cladding < 0 || !wgmask.IsFinite(p.Cladding) {
		return fmt.Errorf("%w: cladding must not be negative, is %g", wgmask.ErrConfiguration, p.Cladding)
	}
	if len(p.ArcRadii) != p.NumElements {
		tracer().Errorf("%d arc radii given for %d elements", len(p.ArcRadii), p.NumElements)
		return fmt.Errorf("%w: %d arc radii given for %d elements",
			wgmask.ErrConfiguration, len(p.ArcRadii), p.NumElements)
	}
	for i, r := range p.ArcRadii {
		if err := wgmask.CheckPositive(fmt.Sprintf("arc radius #%d", i), r); err != nil {
			return err
		}
	}
	return nil
}

// NewArc creates an arc grating. The port waveguide runs from
// (−PortLength, 0) to the origin. The transition polygon spans from the
// port's end to an arc of TransitionRadius through (TransitionX, ±TransitionY/2).
// Scatterer i is an arc of radius ArcRadii[i], placed such that its middle
// point is (i+1)·Pitch to the right of the transition arc's middle point.
func NewArc(p ArcParams) (*Grating, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	hw, ty := p.WaveguideWidth/2, p.TransitionY/2
	if ty < hw {
		return nil, fmt.Errorf("%w: transition height %g is smaller than waveguide width %g",
			wgmask.ErrConfiguration, p.TransitionY, p.WaveguideWidth)
	}
	edge, err := curve.ArcThroughTwoPoints(wgmask.P(p.TransitionX, -ty), wgmask.P(p.TransitionX, ty),
		p.TransitionRadius, p.Samples)
	if err != nil {
		return nil, err
	}
	transition := polygon.NullPolygon().Knot(wgmask.P(0, -hw))
	for _, q := range edge {
		transition.Knot(q)
	}
	transition.Knot(wgmask.P(0, hw)).Cycle()
	port, err := segment.Straight(p.PortLength, p.WaveguideWidth)
	if err != nil {
		return nil, err
	}
	g := &Grating{Kind: Arc, Pitch: p.Pitch, Transition: transition}
	g.elements = append(g.elements,
		segment.Element{Name: segment.NameStraight, Shape: port, Trans: wgmask.Move(wgmask.P(-p.PortLength, 0))},
		segment.Element{Name: NameTransition, Shape: transition},
	)
	mid := edge.Middle()
	half := p.ArcAngle / 2
	for i, r := range p.ArcRadii {
		arc, err := curve.CircularArc(wgmask.Origin, r, -half, half, p.Samples)
		if err != nil {
			return nil, err
		}
		target := mid + wgmask.P(float64(i+1)*p.Pitch, 0)
		place := wgmask.Move(target - arc.Middle())
		core, err := segment.Bend(arc, p.ElementWidth)
		if err != nil {
			return nil, err
		}
		g.elements = append(g.elements, segment.Element{Name: NameScatterer, Shape: core, Trans: place})
		if p.Cladding > 0 {
			clad, err := segment.Bend(arc, p.ElementWidth+2*p.Cladding)
			if err != nil {
				return nil, err
			}
			g.elements = append(g.elements, segment.Element{
				Name: NameScatterer, Shape: clad, Trans: place, Role: segment.Cladding,
			})
		}
		g.Centers = append(g.Centers, place.Apply(arc.Middle()))
	}
	tracer().Debugf("created %v, transition middle at %v", g, mid)
	return g, nil
}
