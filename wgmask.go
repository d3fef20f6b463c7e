/*
Package wgmask implements points, affine transformations and length units
for photonic waveguide mask geometry.

Sub-packages build on it: package curve evaluates arcs and Euler spirals,
package segment turns them into waveguide paths, and packages resonator,
coupler and grating compose devices from those paths.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package wgmask

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD.
const Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsFinite is a predicate: is n neither NaN nor ±Inf?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Pair Data Type ========================================================

// Pair is a 2D point (x,y) in mask coordinates.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Near is a predicate: are p and p2 at most tol apart?
func (p Pair) Near(p2 Pair, tol float64) bool {
	return p.Dist(p2) <= tol
}

// Dist returns the Euclidean distance between p and p2.
func (p Pair) Dist(p2 Pair) float64 {
	return cmplx.Abs((p2 - p).C())
}

// Abs returns the length of p taken as a vector.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Angle returns the direction of p taken as a vector, in degrees.
func (p Pair) Angle() float64 {
	return math.Atan2(p.Y(), p.X()) / Deg2Rad
}

// Unit returns p scaled to length 1. The origin stays the origin.
func (p Pair) Unit() Pair {
	l := p.Abs()
	if Is0(l) {
		return Origin
	}
	return P(p.X()/l, p.Y()/l)
}

// Normal returns p rotated counter-clockwise by 90°.
func (p Pair) Normal() Pair {
	return P(-p.Y(), p.X())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Mid returns the point halfway between p and p2.
func (p Pair) Mid(p2 Pair) Pair {
	return P((p.X()+p2.X())/2, (p.Y()+p2.Y())/2)
}
