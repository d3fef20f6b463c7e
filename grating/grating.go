/*
Package grating builds grating coupler geometry.

Three kinds of gratings are supported:

  - Periodic: pairs of rectangles of alternating height, tiled without gaps
  - Arc: a port waveguide widening into a transition region, followed by
    arc shaped scatterers at a fixed pitch
  - Fan: a port waveguide and concentric arcs around its start

Arc scatterers of different radii have their sample middle points at
different distances from the arc center. Arc therefore places every
scatterer by its middle point, relative to the middle point of the
transition, which keeps them at exact pitch.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package grating

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/polygon"
	"github.com/npillmayer/wgmask/segment"
)

// tracer writes to trace with key 'devices'
func tracer() tracing.Trace {
	return tracing.Select("devices")
}

// Kind tells the type of a grating.
type Kind uint8

// Kinds of gratings.
const (
	Periodic Kind = iota
	Arc
	Fan
)

func (k Kind) String() string {
	switch k {
	case Periodic:
		return "periodic"
	case Arc:
		return "arc"
	case Fan:
		return "fan"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Cell names of grating pieces.
const (
	NameRect       = "RECT"
	NameScatterer  = "SCATTERER"
	NameTransition = "TRANSITION"
)

// Grating is an ordered list of placed grating elements.
type Grating struct {
	Kind       Kind
	Pitch      float64
	Centers    []wgmask.Pair    // reference point of every period
	Transition *polygon.Polygon // taper between port and scatterers, if any
	elements   []segment.Element
}

// Name returns the canonical cell name of the grating.
func (g *Grating) Name() string {
	switch g.Kind {
	case Arc:
		return "GRATING_ARC"
	case Fan:
		return "GRATING_NATURE"
	}
	return "GRATING_ANSYS"
}

// Elements returns the placed elements of the grating.
func (g *Grating) Elements() []segment.Element {
	elems := make([]segment.Element, len(g.elements))
	copy(elems, g.elements)
	return elems
}

// Bounds returns the bounding box of the grating's core elements.
func (g *Grating) Bounds() polygon.Rect {
	return segment.Bounds(g.elements, segment.Core)
}

func (g *Grating) String() string {
	return fmt.Sprintf("%s grating: %d elements, pitch %g", g.Kind, len(g.elements), g.Pitch)
}

// NewPeriodic creates numPairs pairs of rectangles, width1 × height1 and
// width2 × height2, side by side along the x-axis. All rectangles are
// vertically centered at max(height1, height2)/2. The centers are the
// centers of the pairs.
func NewPeriodic(width1, height1, width2, height2 float64, numPairs int) (*Grating, error) {
	if err := wgmask.FirstError(
		wgmask.CheckPositive("width1", width1),
		wgmask.CheckPositive("height1", height1),
		wgmask.CheckPositive("width2", width2),
		wgmask.CheckPositive("height2", height2),
		checkCount("number of pairs", numPairs),
	); err != nil {
		return nil, err
	}
	cy := math.Max(height1, height2) / 2
	pitch := width1 + width2
	g := &Grating{Kind: Periodic, Pitch: pitch}
	for i := 0; i < numPairs; i++ {
		x := float64(i) * pitch
		r1 := polygon.Box(wgmask.P(x, cy-height1/2), wgmask.P(x+width1, cy+height1/2))
		r2 := polygon.Box(wgmask.P(x+width1, cy-height2/2), wgmask.P(x+pitch, cy+height2/2))
		g.elements = append(g.elements,
			segment.Element{Name: NameRect, Shape: r1},
			segment.Element{Name: NameRect, Shape: r2},
		)
		g.Centers = append(g.Centers, wgmask.P(x+pitch/2, cy))
	}
	tracer().Debugf("created %v", g)
	return g, nil
}

func checkCount(name string, n int) error {
	if n < 1 {
		tracer().Errorf("%s must be at least 1, is %d", name, n)
		return fmt.Errorf("%w: %s must be at least 1, is %d", wgmask.ErrConfiguration, name, n)
	}
	return nil
}
