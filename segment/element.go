package segment

import (
	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/polygon"
)

// Canonical cell names of the pieces.
const (
	NameStraight     = "STRAIGHT"
	NameCircleArc180 = "CIRCLE_ARC180"
	NameEulerArc180  = "EULER_ARC180"
	NameBend         = "BEND"
)

// Shape is a piece of mask geometry: either a Path (center line plus width)
// or a *polygon.Polygon (half width 0).
type Shape interface {
	Vertices() []wgmask.Pair
	HalfWidth() float64
}

var _ Shape = Path{}
var _ Shape = (*polygon.Polygon)(nil)

// Role tells which mask layer a shape belongs to. Mapping roles to concrete
// layers is up to the layout sink.
type Role uint8

const (
	Core     Role = iota // waveguide core, fully etched
	Cladding             // partially etched surrounding of grating elements
)

func (r Role) String() string {
	if r == Cladding {
		return "cladding"
	}
	return "core"
}

// Element is a shape in its canonical local frame, together with the
// placement which puts it into a device's frame.
type Element struct {
	Name  string // canonical cell name of the shape, e.g. "STRAIGHT"
	Shape Shape
	Trans wgmask.Trans
	Role  Role
}

// Placed returns the element's shape in device coordinates.
func (e Element) Placed() Shape {
	switch s := e.Shape.(type) {
	case Path:
		return s.Transformed(e.Trans)
	case *polygon.Polygon:
		return s.Transformed(e.Trans)
	}
	return e.Shape
}

// BBox returns the bounding box of the placed element. Paths are grown by
// half their width.
func (e Element) BBox() polygon.Rect {
	switch s := e.Placed().(type) {
	case Path:
		return s.BBox()
	case *polygon.Polygon:
		return s.BBox()
	}
	return polygon.EmptyRect()
}

// Outline returns the region of the placed element as a polygon.
func (e Element) Outline() *polygon.Polygon {
	switch s := e.Placed().(type) {
	case Path:
		return s.Outline()
	case *polygon.Polygon:
		return s
	}
	return polygon.NullPolygon()
}

// Then returns the element placed once more by t.
func (e Element) Then(t wgmask.Trans) Element {
	e.Trans = e.Trans.Then(t)
	return e
}

// Ends returns the first and last center line point of a placed path
// element. For polygons, both are the first knot.
func (e Element) Ends() (wgmask.Pair, wgmask.Pair) {
	v := e.Placed().Vertices()
	if len(v) == 0 {
		return wgmask.Origin, wgmask.Origin
	}
	if _, ok := e.Shape.(Path); !ok {
		return v[0], v[0]
	}
	return v[0], v[len(v)-1]
}

// Bounds returns the union of the bounding boxes of elements with role r.
func Bounds(elems []Element, r Role) polygon.Rect {
	bb := polygon.EmptyRect()
	for _, e := range elems {
		if e.Role == r {
			bb = bb.Union(e.BBox())
		}
	}
	return bb
}

// Outlines returns the outlines of all placed elements with role r.
func Outlines(elems []Element, r Role) []*polygon.Polygon {
	var pgs []*polygon.Polygon
	for _, e := range elems {
		if e.Role == r {
			pgs = append(pgs, e.Outline())
		}
	}
	return pgs
}
