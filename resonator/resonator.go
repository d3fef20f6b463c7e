/*
Package resonator composes closed racetrack loops from straights and 180°
bends.

Three variants are supported:

  - Racetrack: two straights joined by circular half-circle bends
  - EulerRacetrack: the same topology with Euler bends
  - AdiabaticEulerRacetrack: each bend is the band between an outer and an
    inner Euler U-turn of different curvature rate, so the curvature sweeps
    between two radius families across the bend

All variants put the resonator's lower straight on the x-axis. Path based
variants start it at the origin, the adiabatic variant ends it there.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package resonator

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/polygon"
	"github.com/npillmayer/wgmask/segment"
)

// tracer writes to trace with key 'devices'
func tracer() tracing.Trace {
	return tracing.Select("devices")
}

// Kind tells the variant of a resonator.
type Kind uint8

// Resonator variants.
const (
	Circular Kind = iota
	Euler
	AdiabaticEuler
)

func (k Kind) String() string {
	switch k {
	case Euler:
		return "Euler"
	case AdiabaticEuler:
		return "adiabatic Euler"
	}
	return "circular"
}

// DefaultLoopTolerance is the distance below which the ends of two
// elements are considered joined.
const DefaultLoopTolerance = 1e-6

// Resonator is a closed waveguide loop, made of placed elements in the
// resonator's frame.
type Resonator struct {
	Kind           Kind
	Width          float64 // waveguide width
	StraightLength float64
	Radius         float64 // bend radius of circular racetracks
	ArcLength      float64 // arc length of Euler bends; the outer one for adiabatic bends
	InnerArcLength float64 // arc length of the inner adiabatic bend
	// HalfExtent is (bulge, half opening) of a bend: how far a bend reaches
	// beyond the straights, and half the distance between the straights'
	// center lines. For circular bends both are the radius; for Euler bends
	// it is the normalized half spiral end point.
	HalfExtent wgmask.Pair
	elements   []segment.Element
}

// Name returns the canonical cell name of the resonator.
func (r *Resonator) Name() string {
	switch r.Kind {
	case Euler:
		return "EULER_RACETRACK"
	case AdiabaticEuler:
		return "ADIABATIC_EULER_RING"
	}
	return "RACETRACK_RESONATOR"
}

// Elements returns the placed elements of the loop.
func (r *Resonator) Elements() []segment.Element {
	elems := make([]segment.Element, len(r.elements))
	copy(elems, r.elements)
	return elems
}

// Bounds returns the bounding box of the loop.
func (r *Resonator) Bounds() polygon.Rect {
	return segment.Bounds(r.elements, segment.Core)
}

// Outlines returns the regions covered by the loop.
func (r *Resonator) Outlines() []*polygon.Polygon {
	return segment.Outlines(r.elements, segment.Core)
}

// Separation is the distance between the center lines of the two straights.
func (r *Resonator) Separation() float64 {
	return 2 * r.HalfExtent.Y()
}

func (r *Resonator) String() string {
	return fmt.Sprintf("%s racetrack L=%g w=%g extent=%v", r.Kind, r.StraightLength, r.Width, r.HalfExtent)
}

// Racetrack creates a racetrack resonator of two straights of length
// straightLength at y=0 and y=2·radius, joined by two half circles.
func Racetrack(radius, straightLength, width float64) (*Resonator, error) {
	if err := checkStraight(straightLength); err != nil {
		return nil, err
	}
	bend, err := segment.CircularBend180(radius, width, segment.DefaultSamples)
	if err != nil {
		return nil, err
	}
	straight, err := segment.Straight(straightLength, width)
	if err != nil {
		return nil, err
	}
	r := &Resonator{
		Kind:           Circular,
		Width:          width,
		StraightLength: straightLength,
		Radius:         radius,
		HalfExtent:     wgmask.P(radius, radius),
	}
	r.elements = []segment.Element{
		{Name: segment.NameStraight, Shape: straight},
		{Name: segment.NameStraight, Shape: straight, Trans: wgmask.Move(wgmask.P(0, 2*radius))},
		{Name: segment.NameCircleArc180, Shape: bend, Trans: wgmask.Rotate(wgmask.R90, wgmask.P(0, radius))},
		{Name: segment.NameCircleArc180, Shape: bend, Trans: wgmask.Rotate(wgmask.R270, wgmask.P(straightLength, radius))},
	}
	if err = r.CheckClosed(DefaultLoopTolerance); err != nil {
		return nil, err
	}
	tracer().Debugf("created %v", r)
	return r, nil
}

// EulerRacetrack creates a racetrack resonator with Euler bends of total arc
// length arcLength. The straights are at y=0 and y=2·y_end, where
// (x_end, y_end) = curve.NormalizedEndpoint(arcLength/2).
func EulerRacetrack(arcLength, straightLength, width float64) (*Resonator, error) {
	if err := checkStraight(straightLength); err != nil {
		return nil, err
	}
	bend, err := segment.EulerBend180(arcLength, width, segment.DefaultSamples)
	if err != nil {
		return nil, err
	}
	straight, err := segment.Straight(straightLength, width)
	if err != nil {
		return nil, err
	}
	ext := segment.EulerHalfExtent(arcLength)
	top := 2 * ext.Y()
	r := &Resonator{
		Kind:           Euler,
		Width:          width,
		StraightLength: straightLength,
		ArcLength:      arcLength,
		HalfExtent:     ext,
	}
	r.elements = []segment.Element{
		{Name: segment.NameStraight, Shape: straight},
		{Name: segment.NameStraight, Shape: straight, Trans: wgmask.Move(wgmask.P(0, top))},
		{Name: segment.NameEulerArc180, Shape: bend, Trans: wgmask.Rotate(wgmask.R0, wgmask.P(straightLength, 0))},
		{Name: segment.NameEulerArc180, Shape: bend, Trans: wgmask.Rotate(wgmask.R180, wgmask.P(0, top))},
	}
	if err = r.CheckClosed(DefaultLoopTolerance); err != nil {
		return nil, err
	}
	tracer().Debugf("created %v", r)
	return r, nil
}

// CheckClosed verifies that the placed elements form a closed loop: every
// end of a path element has to meet an end of another path element within
// tol. For polygon based loops, every connector corner has to meet a knot of
// a bend region.
func (r *Resonator) CheckClosed(tol float64) error {
	if r.Kind == AdiabaticEuler {
		return r.checkConnected(tol)
	}
	type end struct {
		p    wgmask.Pair
		elem int
	}
	ends := make([]end, 0, 2*len(r.elements))
	for i, e := range r.elements {
		first, last := e.Ends()
		ends = append(ends, end{first, i}, end{last, i})
	}
	for _, x := range ends {
		matched := false
		for _, y := range ends {
			if y.elem != x.elem && x.p.Near(y.p, tol) {
				matched = true
				break
			}
		}
		if !matched {
			tracer().Errorf("%s loop is open at %v", r.Kind, x.p)
			return fmt.Errorf("%w: %s loop is open at %v", wgmask.ErrGeometry, r.Kind, x.p)
		}
	}
	return nil
}

func checkStraight(length float64) error {
	return wgmask.CheckPositive("straight length", length)
}
