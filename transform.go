package wgmask

import (
	"fmt"
)

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	return make([]float64, 9)
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	return []float64{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

func rotation(sin, cos float64) AT {
	m := newAT()
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// MirrorX transform. Mirror a point at the x-axis, i.e. (x,y) → (x,−y).
func MirrorX() AT {
	m := Identity()
	m.set(1, 1, -1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformation to a new one. The resulting transform
// applies m first, then n. Returns a new transformation
// without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	v := []float64{p.X(), p.Y(), 1.0}
	return P(dotProd(m.row(0), v), dotProd(m.row(1), v))
}

// === Layout Placements =====================================================

// Rot is a rotation by a multiple of 90°, counter-clockwise.
type Rot uint8

// Rotations as used for placing shapes on a mask grid.
const (
	R0 Rot = iota
	R90
	R180
	R270
)

func (r Rot) String() string {
	return [...]string{"R0", "R90", "R180", "R270"}[r%4]
}

// Degrees returns the rotation angle in degrees.
func (r Rot) Degrees() float64 {
	return float64(r%4) * 90
}

// Exact sine and cosine for quarter turns.
var quarterSinCos = [4][2]float64{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Trans is a placement transformation on a mask: an optional mirror at the
// x-axis, followed by a rotation by a multiple of 90°, followed by a
// displacement. This is the transformation an external layout sink is able
// to apply to a shape.
type Trans struct {
	Rot    Rot
	Mirror bool
	Disp   Pair
}

// Move is a pure displacement placement.
func Move(d Pair) Trans {
	return Trans{Disp: d}
}

// Rotate is a rotation around the origin followed by a displacement.
func Rotate(r Rot, d Pair) Trans {
	return Trans{Rot: r, Disp: d}
}

// IsIdentity is a predicate: does t leave every point in place?
func (t Trans) IsIdentity() bool {
	return t.Rot%4 == R0 && !t.Mirror && t.Disp == Origin
}

// AT returns t as an affine transform matrix.
func (t Trans) AT() AT {
	m := Identity()
	if t.Mirror {
		m = MirrorX()
	}
	sc := quarterSinCos[t.Rot%4]
	return m.Combine(rotation(sc[0], sc[1])).Combine(Translation(t.Disp))
}

// Apply transforms a single point.
func (t Trans) Apply(p Pair) Pair {
	return t.AT().Transform(p)
}

// ApplyAll transforms a sequence of points. The argument is unchanged and a
// new slice is returned.
func (t Trans) ApplyAll(pts []Pair) []Pair {
	m := t.AT()
	out := make([]Pair, len(pts))
	for i, p := range pts {
		out[i] = m.Transform(p)
	}
	return out
}

// Then returns the placement which applies t first and u afterwards.
func (t Trans) Then(u Trans) Trans {
	rot := t.Rot % 4
	if u.Mirror {
		rot = (4 - rot) % 4
	}
	return Trans{
		Rot:    (rot + u.Rot) % 4,
		Mirror: t.Mirror != u.Mirror,
		Disp:   u.Apply(t.Disp),
	}
}

func (t Trans) String() string {
	m := ""
	if t.Mirror {
		m = " M"
	}
	return fmt.Sprintf("%s%s %s", t.Rot, m, t.Disp)
}
