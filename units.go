package wgmask

import "math"

// Unit is a length unit for mask coordinates. Its value is the size of
// one unit in micrometers, which is the unit all public geometry uses.
type Unit float64

// Length units. Nanometer is the database unit of a mask grid.
const (
	Micrometer Unit = 1.0
	Nanometer  Unit = 0.001
)

// FromMicrons converts a length given in micrometers to unit u.
func (u Unit) FromMicrons(v float64) float64 {
	return v / float64(u)
}

// ToMicrons converts a length given in unit u to micrometers.
func (u Unit) ToMicrons(v float64) float64 {
	return v * float64(u)
}

// PairFromMicrons converts a point from micrometers to unit u.
func (u Unit) PairFromMicrons(p Pair) Pair {
	return P(u.FromMicrons(p.X()), u.FromMicrons(p.Y()))
}

// PairToMicrons converts a point in unit u to micrometers.
func (u Unit) PairToMicrons(p Pair) Pair {
	return P(u.ToMicrons(p.X()), u.ToMicrons(p.Y()))
}

// Snap rounds a point given in unit u to the integer grid of u, as a mask
// database does when storing integer coordinates.
func (u Unit) Snap(p Pair) Pair {
	return P(math.Round(p.X()), math.Round(p.Y()))
}
