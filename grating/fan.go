package grating

import (
	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/curve"
	"github.com/npillmayer/wgmask/segment"
)

// FanParams are the parameters of a fan grating.
type FanParams struct {
	WaveguideWidth float64 // width of the port waveguide
	PortLength     float64
	NumArcs        int
	InitialRadius  float64 // radius of the innermost arc
	ArcSpacing     float64 // radius increment from arc to arc
	ArcWidth       float64
	ArcAngle       float64 // angular span of an arc, in degrees
	Samples        int     // sample count per arc
}

// DefaultFanParams returns the parameters of a two-arc fan grating.
func DefaultFanParams() FanParams {
	return FanParams{
		WaveguideWidth: 0.45,
		PortLength:     1,
		NumArcs:        2,
		InitialRadius:  1,
		ArcSpacing:     1,
		ArcWidth:       0.5,
		ArcAngle:       90,
		Samples:        360,
	}
}

// Validate checks fan grating parameters.
func (p FanParams) Validate() error {
	return wgmask.FirstError(
		wgmask.CheckPositive("waveguide width", p.WaveguideWidth),
		wgmask.CheckPositive("port length", p.PortLength),
		checkCount("number of arcs", p.NumArcs),
		wgmask.CheckPositive("initial radius", p.InitialRadius),
		wgmask.CheckPositive("arc spacing", p.ArcSpacing),
		wgmask.CheckPositive("arc width", p.ArcWidth),
		wgmask.CheckPositive("arc angle", p.ArcAngle),
		wgmask.CheckSamples(p.Samples),
	)
}

// NewFan creates a fan grating: a port waveguide from the origin to
// (PortLength, 0), and NumArcs concentric arcs around the origin, opening
// towards +x.
func NewFan(p FanParams) (*Grating, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	port, err := segment.Straight(p.PortLength, p.WaveguideWidth)
	if err != nil {
		return nil, err
	}
	g := &Grating{Kind: Fan, Pitch: p.ArcSpacing}
	g.elements = append(g.elements, segment.Element{Name: segment.NameStraight, Shape: port})
	half := p.ArcAngle / 2
	for i := 0; i < p.NumArcs; i++ {
		r := p.InitialRadius + float64(i)*p.ArcSpacing
		arc, err := curve.CircularArc(wgmask.Origin, r, -half, half, p.Samples)
		if err != nil {
			return nil, err
		}
		bend, err := segment.Bend(arc, p.ArcWidth)
		if err != nil {
			return nil, err
		}
		g.elements = append(g.elements, segment.Element{Name: segment.NameBend, Shape: bend})
		g.Centers = append(g.Centers, wgmask.P(r, 0))
	}
	tracer().Debugf("created %v", g)
	return g, nil
}
