/*
Package device is the catalogue of devices this module builds, with typed
parameter sets and their defaults.

Every constructor validates its parameters and returns an error wrapping one
of wgmask.ErrConfiguration, wgmask.ErrGeometry or wgmask.ErrNumericDomain.
The Must… variants panic instead, for parameter sets known to be good.

All returned devices satisfy layout.Device and can be handed to layout.Emit.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package device

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wgmask/coupler"
	"github.com/npillmayer/wgmask/grating"
	"github.com/npillmayer/wgmask/layout"
	"github.com/npillmayer/wgmask/resonator"
)

// tracer writes to trace with key 'devices'
func tracer() tracing.Trace {
	return tracing.Select("devices")
}

var (
	_ layout.Device = (*resonator.Resonator)(nil)
	_ layout.Device = (*coupler.AllPassRing)(nil)
	_ layout.Device = (*grating.Grating)(nil)
)

// RingParams are the parameters of a circular racetrack and its all-pass
// ring, in micrometers.
type RingParams struct {
	Width          float64
	Radius         float64
	StraightLength float64
	Gap            float64 // bus distance; unused for a bare racetrack
}

// DefaultRingParams returns the parameters of a 100 µm ring.
func DefaultRingParams() RingParams {
	return RingParams{Width: 0.45, Radius: 100, StraightLength: 10, Gap: 0.2}
}

// EulerRingParams are the parameters of an Euler racetrack and its all-pass
// ring, in micrometers.
type EulerRingParams struct {
	Width          float64
	ArcLength      float64 // arc length of a 180° bend
	StraightLength float64
	Gap            float64
}

// DefaultEulerRingParams returns the parameters of an Euler ring with bends
// of 100 µm arc length.
func DefaultEulerRingParams() EulerRingParams {
	return EulerRingParams{Width: 0.45, ArcLength: 100, StraightLength: 10, Gap: 0.2}
}

// AdiabaticRingParams are the parameters of an adiabatic Euler racetrack
// and its all-pass ring, in micrometers.
type AdiabaticRingParams struct {
	Width          float64
	OuterArcLength float64
	InnerArcLength float64
	StraightLength float64
	Gap            float64
	Samples        int // sample count per spiral half
}

// DefaultAdiabaticRingParams returns the parameters of an all-pass
// adiabatic Euler ring.
func DefaultAdiabaticRingParams() AdiabaticRingParams {
	return AdiabaticRingParams{
		Width:          0.45,
		OuterArcLength: 100,
		InnerArcLength: 80,
		StraightLength: 10,
		Gap:            0.2,
		Samples:        resonator.DefaultAdiabaticSamples,
	}
}

// DefaultAdiabaticRacetrackParams returns the parameters of a stand-alone
// adiabatic Euler racetrack. The gap is unused.
func DefaultAdiabaticRacetrackParams() AdiabaticRingParams {
	return AdiabaticRingParams{
		Width:          resonator.DefaultAdiabaticWidth,
		OuterArcLength: resonator.DefaultAdiabaticOuterArc,
		InnerArcLength: resonator.DefaultAdiabaticInnerArc,
		StraightLength: resonator.DefaultAdiabaticStraight,
		Samples:        resonator.DefaultAdiabaticSamples,
	}
}

// Racetrack creates a circular racetrack resonator.
func Racetrack(p RingParams) (*resonator.Resonator, error) {
	return resonator.Racetrack(p.Radius, p.StraightLength, p.Width)
}

// EulerRacetrack creates a racetrack resonator with Euler bends.
func EulerRacetrack(p EulerRingParams) (*resonator.Resonator, error) {
	return resonator.EulerRacetrack(p.ArcLength, p.StraightLength, p.Width)
}

// AdiabaticRacetrack creates an adiabatic Euler racetrack resonator.
func AdiabaticRacetrack(p AdiabaticRingParams) (*resonator.Resonator, error) {
	return resonator.AdiabaticEulerRacetrack(p.Width, p.StraightLength,
		p.OuterArcLength, p.InnerArcLength, p.Samples)
}

// AllPassRing creates a circular racetrack coupled to a bus waveguide.
func AllPassRing(p RingParams) (*coupler.AllPassRing, error) {
	res, err := Racetrack(p)
	if err != nil {
		return nil, err
	}
	return coupler.AllPass(res, p.Gap)
}

// AllPassEulerRing creates an Euler racetrack coupled to a bus waveguide.
func AllPassEulerRing(p EulerRingParams) (*coupler.AllPassRing, error) {
	res, err := EulerRacetrack(p)
	if err != nil {
		return nil, err
	}
	return coupler.AllPass(res, p.Gap)
}

// AllPassAdiabaticEulerRing creates an adiabatic Euler racetrack coupled to
// a bus waveguide.
func AllPassAdiabaticEulerRing(p AdiabaticRingParams) (*coupler.AllPassRing, error) {
	res, err := AdiabaticRacetrack(p)
	if err != nil {
		return nil, err
	}
	return coupler.AllPass(res, p.Gap)
}

// MustAllPassRing is AllPassRing, but panics on error.
func MustAllPassRing(p RingParams) *coupler.AllPassRing {
	ring, err := AllPassRing(p)
	if err != nil {
		tracer().Errorf("all-pass ring: %v", err)
		panic(err)
	}
	return ring
}

// MustAllPassEulerRing is AllPassEulerRing, but panics on error.
func MustAllPassEulerRing(p EulerRingParams) *coupler.AllPassRing {
	ring, err := AllPassEulerRing(p)
	if err != nil {
		tracer().Errorf("all-pass Euler ring: %v", err)
		panic(err)
	}
	return ring
}
