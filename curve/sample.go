/*
Package curve evaluates the parametric curves of waveguide bends: circular
arcs, arcs through two fixed points, and Euler spirals (clothoids).

Curves are returned as point samples in micrometers. Every function validates
its parameters first and returns an error wrapping one of wgmask.ErrConfiguration,
wgmask.ErrGeometry or wgmask.ErrNumericDomain; no partial results are produced.

Euler spirals have a curvature growing linearly with arc length. A bend made
of two spiral halves therefore starts and ends with zero curvature, which
avoids the curvature jump (and the radiation loss) of a circular bend attached
to a straight waveguide.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wgmask"
	"gonum.org/v1/gonum/floats"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

// Sample is an ordered sequence of points along a curve.
// Samples may contain near-duplicate points, inserted on purpose next to the
// tips of a bend (see EulerUTurn).
type Sample []wgmask.Pair

// N returns the number of points.
func (s Sample) N() int {
	return len(s)
}

// First returns the first point of a non-empty sample.
func (s Sample) First() wgmask.Pair {
	return s[0]
}

// Last returns the last point of a non-empty sample.
func (s Sample) Last() wgmask.Pair {
	return s[len(s)-1]
}

// Reversed returns a new sample with the points in reverse order.
func (s Sample) Reversed() Sample {
	r := make(Sample, len(s))
	for i, p := range s {
		r[len(s)-1-i] = p
	}
	return r
}

// Shifted returns a new sample translated by v.
func (s Sample) Shifted(v wgmask.Pair) Sample {
	r := make(Sample, len(s))
	for i, p := range s {
		r[i] = p + v
	}
	return r
}

// Transformed returns a new sample with every point placed by t.
func (s Sample) Transformed(t wgmask.Trans) Sample {
	return Sample(t.ApplyAll(s))
}

// Concat returns a new sample with the points of s followed by those of s2.
func (s Sample) Concat(s2 Sample) Sample {
	r := make(Sample, 0, len(s)+len(s2))
	r = append(r, s...)
	return append(r, s2...)
}

// Middle returns the middle point of a non-empty sample: the median point
// for an odd count, the mean of the two central points for an even count.
func (s Sample) Middle() wgmask.Pair {
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return s[n/2-1].Mid(s[n/2])
}

// Bounds returns the minimum and maximum corner of the points' bounding box.
func (s Sample) Bounds() (min, max wgmask.Pair) {
	if len(s) == 0 {
		return wgmask.Origin, wgmask.Origin
	}
	xs, ys := make([]float64, len(s)), make([]float64, len(s))
	for i, p := range s {
		xs[i], ys[i] = p.F()
	}
	return wgmask.P(floats.Min(xs), floats.Min(ys)), wgmask.P(floats.Max(xs), floats.Max(ys))
}

// insertAt returns a new sample with p inserted before index i.
func (s Sample) insertAt(i int, p wgmask.Pair) Sample {
	r := make(Sample, 0, len(s)+1)
	r = append(r, s[:i]...)
	r = append(r, p)
	return append(r, s[i:]...)
}

// span returns n values evenly spaced from a to b, both included.
func span(a, b float64, n int) []float64 {
	return floats.Span(make([]float64, n), a, b)
}
