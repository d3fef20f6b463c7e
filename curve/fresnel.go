package curve

import (
	"math"

	"github.com/npillmayer/wgmask"
	"gonum.org/v1/gonum/integrate/quad"
)

// Gauss-Legendre nodes per quadrature panel.
const fresnelNodes = 20

// Above fresnelAsymptotic the auxiliary-function series is used instead of
// quadrature. At x = 5 its smallest term is below 1e-16.
const fresnelAsymptotic = 5.0

// Fresnel returns the Fresnel integrals
//
//	S(x) = ∫₀ˣ sin(πt²/2) dt,   C(x) = ∫₀ˣ cos(πt²/2) dt
//
// in the order (S, C), as scipy and the literature do.
//
// For |x| ≤ 5 the integrals are evaluated by composite Gauss-Legendre
// quadrature. Panels get narrower as t grows, keeping the phase change within
// a panel below π. For larger |x| the asymptotic expansion of the auxiliary
// functions f and g is summed, so the cost does not depend on x.
func Fresnel(x float64) (s, c float64) {
	if x == 0 || math.IsNaN(x) {
		return 0, 0
	}
	sign := 1.0
	if x < 0 {
		sign, x = -1.0, -x
	}
	if math.IsInf(x, 1) {
		return sign * 0.5, sign * 0.5
	}
	if x > fresnelAsymptotic {
		s, c = fresnelTail(x)
	} else {
		s, c = fresnelQuad(x)
	}
	return sign * s, sign * c
}

func fresnelQuad(x float64) (s, c float64) {
	sin := func(t float64) float64 { return math.Sin(math.Pi * t * t / 2) }
	cos := func(t float64) float64 { return math.Cos(math.Pi * t * t / 2) }
	for a := 0.0; a < x; {
		b := math.Min(a+1/(1+a), x)
		s += quad.Fixed(sin, a, b, fresnelNodes, quad.Legendre{}, 0)
		c += quad.Fixed(cos, a, b, fresnelNodes, quad.Legendre{}, 0)
		a = b
	}
	return s, c
}

// fresnelTail evaluates
//
//	C(x) = ½ + f(x)·sin(πx²/2) − g(x)·cos(πx²/2)
//	S(x) = ½ − f(x)·cos(πx²/2) − g(x)·sin(πx²/2)
//
// with f and g from their asymptotic series (Abramowitz/Stegun 7.3.27f),
// truncated at the smallest term.
func fresnelTail(x float64) (s, c float64) {
	u := math.Pi * x * x
	u2 := u * u
	f, g := 0.0, 0.0
	ft, gt := 1.0, 1.0
	for m := 1; m <= 40; m++ {
		f += ft
		g += gt
		nft := -ft * float64((4*m-3)*(4*m-1)) / u2
		ngt := -gt * float64((4*m-1)*(4*m+1)) / u2
		if math.Abs(nft) >= math.Abs(ft) || math.Abs(nft) < 1e-18 {
			break
		}
		ft, gt = nft, ngt
	}
	f /= math.Pi * x
	g /= math.Pi * u * x
	sin, cos := math.Sincos(halfPiSquare(x))
	c = 0.5 + f*sin - g*cos
	s = 0.5 - f*cos - g*sin
	return s, c
}

// halfPiSquare returns πx²/2 reduced modulo 2π. x² is split into an integer
// and a fractional part so that large arguments keep their phase.
func halfPiSquare(x float64) float64 {
	xi, xf := math.Modf(x)
	q := math.Mod(math.Mod(xi*xi, 4)+math.Mod(2*xi*xf, 4)+xf*xf, 4)
	return math.Pi / 2 * q
}

// C(1) and S(1), the Fresnel integrals at the normalized end of a half
// Euler bend. Every composer derives bend extents from these two values.
var fresnelS1, fresnelC1 = Fresnel(1)

// NormalizedEndpoint returns the end point of a half Euler bend with
// characteristic length l, evaluated at the normalized spiral argument 1:
//
//	(l·C(1), l·S(1))
//
// The x-part is the horizontal extent of a 180° Euler bend, twice the y-part
// is the distance between its two ends.
func NormalizedEndpoint(l float64) wgmask.Pair {
	return wgmask.P(l*fresnelC1, l*fresnelS1)
}
