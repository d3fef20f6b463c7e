/*
Package coupler places a straight bus waveguide alongside a racetrack
resonator, forming an all-pass ring.

The bus runs parallel to the resonator's lower straight, below it, at a
distance of gap between the facing waveguide edges. Its length covers the
resonator's horizontal extent. Bus length and offset are closed-form per
resonator variant, derived from the bend's half extent:

	circular:   length L + 2r + w      offset (−r − w/2,  −(gap + w))
	Euler:      length L + 2x_end + w  offset (−x_end − w/2, −(gap + w))
	adiabatic:  length L + 2x_end      offset (−x_end − L, −(gap + w/2))

Adiabatic racetracks have their lower waveguide edge at y = 0 instead of
their center line, hence the different vertical offset.

This package places shapes without overlap only; it does not model optical
coupling.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package coupler

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/polygon"
	"github.com/npillmayer/wgmask/resonator"
	"github.com/npillmayer/wgmask/segment"
)

// tracer writes to trace with key 'devices'
func tracer() tracing.Trace {
	return tracing.Select("devices")
}

// NameBus is the cell name of the bus waveguide.
const NameBus = "BUS"

// AllPassRing is a resonator coupled to a straight bus waveguide.
type AllPassRing struct {
	Resonator *resonator.Resonator
	Gap       float64
	BusLength float64
	BusOffset wgmask.Pair // displacement of the bus' start point
	bus       segment.Element
}

// AllPass places a bus waveguide of the resonator's width below res, at
// distance gap. It is an error to pass a non-positive gap.
//
// After placement, bus and resonator are checked for overlap, both by their
// bounding boxes and by intersecting their outlines. An overlap is reported
// as wgmask.ErrGeometry.
func AllPass(res *resonator.Resonator, gap float64) (*AllPassRing, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: all-pass ring needs a resonator", wgmask.ErrConfiguration)
	}
	if err := wgmask.CheckPositive("gap", gap); err != nil {
		return nil, err
	}
	length, offset := busPlacement(res, gap)
	bus, err := segment.Straight(length, res.Width)
	if err != nil {
		return nil, err
	}
	ring := &AllPassRing{
		Resonator: res,
		Gap:       gap,
		BusLength: length,
		BusOffset: offset,
		bus:       segment.Element{Name: NameBus, Shape: bus, Trans: wgmask.Move(offset)},
	}
	if err = ring.CheckSeparated(); err != nil {
		return nil, err
	}
	tracer().Infof("%s: bus length %g at %v", ring.Name(), length, offset)
	return ring, nil
}

func busPlacement(res *resonator.Resonator, gap float64) (float64, wgmask.Pair) {
	w, l := res.Width, res.StraightLength
	xend := res.HalfExtent.X()
	switch res.Kind {
	case resonator.AdiabaticEuler:
		return l + 2*xend, wgmask.P(-xend-l, -gap-w/2)
	default: // circular and Euler: x_end = r for circular bends
		return l + 2*xend + w, wgmask.P(-xend-w/2, -gap-w)
	}
}

// CheckSeparated returns an error wrapping wgmask.ErrGeometry if the bus
// touches or overlaps the resonator.
func (ring *AllPassRing) CheckSeparated() error {
	busBox, resBox := ring.bus.BBox(), ring.Resonator.Bounds()
	if busBox.Overlaps(resBox) {
		tracer().Errorf("bus %v overlaps resonator %v", busBox, resBox)
		return fmt.Errorf("%w: bus %v overlaps resonator %v", wgmask.ErrGeometry, busBox, resBox)
	}
	bus := []*polygon.Polygon{ring.bus.Outline()}
	for _, o := range ring.Resonator.Outlines() {
		if cut := polygon.Intersection(bus, []*polygon.Polygon{o}); len(cut) > 0 {
			tracer().Errorf("bus outline intersects resonator: %s", polygon.AsString(cut[0]))
			return fmt.Errorf("%w: bus outline intersects resonator", wgmask.ErrGeometry)
		}
	}
	return nil
}

// Name returns the canonical cell name of the ring.
func (ring *AllPassRing) Name() string {
	switch ring.Resonator.Kind {
	case resonator.Euler:
		return "ALL_PASS_EULER_RING"
	case resonator.AdiabaticEuler:
		return "ALL_PASS_ADIABATIC_EULER_RING"
	}
	return "ALL_PASS_RING"
}

// Bus returns the placed bus waveguide.
func (ring *AllPassRing) Bus() segment.Element {
	return ring.bus
}

// Elements returns the resonator's elements followed by the bus.
func (ring *AllPassRing) Elements() []segment.Element {
	return append(ring.Resonator.Elements(), ring.bus)
}

// Bounds returns the bounding box of resonator and bus.
func (ring *AllPassRing) Bounds() polygon.Rect {
	return ring.Resonator.Bounds().Union(ring.bus.BBox())
}
