package layout

import (
	"fmt"
	"sort"

	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/polygon"
	"github.com/npillmayer/wgmask/segment"
)

// MemorySink is a Sink keeping cells in memory.
type MemorySink struct {
	cells []*MemoryCell
	names map[string]*MemoryCell
}

var _ Sink = (*MemorySink)(nil)

// NewMemorySink creates an empty in-memory layout.
func NewMemorySink() *MemorySink {
	return &MemorySink{names: make(map[string]*MemoryCell)}
}

// CreateCell creates a new empty cell. Cell names have to be unique.
func (s *MemorySink) CreateCell(name string) (Cell, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: cell name must not be empty", wgmask.ErrConfiguration)
	}
	if _, ok := s.names[name]; ok {
		tracer().Errorf("duplicate cell name %q", name)
		return nil, fmt.Errorf("%w: duplicate cell name %q", wgmask.ErrConfiguration, name)
	}
	c := &MemoryCell{name: name}
	s.cells = append(s.cells, c)
	s.names[name] = c
	return c, nil
}

// Cells returns the cells in order of creation.
func (s *MemorySink) Cells() []*MemoryCell {
	return s.cells
}

// Cell returns the cell with a given name, or nil.
func (s *MemorySink) Cell(name string) *MemoryCell {
	return s.names[name]
}

// MemoryCell is a cell of a MemorySink.
type MemoryCell struct {
	name   string
	shapes []PlacedShape
}

// PlacedShape is a shape on a layer, with its placement.
type PlacedShape struct {
	Layer Layer
	Shape segment.Shape
	Trans wgmask.Trans
}

// BBox returns the bounding box of the shape in cell coordinates.
func (ps PlacedShape) BBox() polygon.Rect {
	return segment.Element{Shape: ps.Shape, Trans: ps.Trans}.BBox()
}

// Name returns the cell's name.
func (c *MemoryCell) Name() string {
	return c.name
}

// Append adds a shape on a layer, initially placed by the identity.
func (c *MemoryCell) Append(layer Layer, shape segment.Shape) (Handle, error) {
	if shape == nil || len(shape.Vertices()) == 0 {
		return nil, fmt.Errorf("%w: cannot append an empty shape to %s", wgmask.ErrConfiguration, c.name)
	}
	c.shapes = append(c.shapes, PlacedShape{Layer: layer, Shape: shape})
	return memoryHandle{cell: c, index: len(c.shapes) - 1}, nil
}

// Shapes returns the shapes of the cell in order of appending.
func (c *MemoryCell) Shapes() []PlacedShape {
	return c.shapes
}

// Bounds returns the bounding box of all shapes in the cell.
func (c *MemoryCell) Bounds() polygon.Rect {
	bb := polygon.EmptyRect()
	for _, ps := range c.shapes {
		bb = bb.Union(ps.BBox())
	}
	return bb
}

// LayerCounts returns the number of shapes per layer, ordered by layer.
func (c *MemoryCell) LayerCounts() ([]Layer, []int) {
	counts := make(map[Layer]int)
	for _, ps := range c.shapes {
		counts[ps.Layer]++
	}
	layers := make([]Layer, 0, len(counts))
	for l := range counts {
		layers = append(layers, l)
	}
	sort.Slice(layers, func(i, j int) bool {
		if layers[i].Layer != layers[j].Layer {
			return layers[i].Layer < layers[j].Layer
		}
		return layers[i].Datatype < layers[j].Datatype
	})
	n := make([]int, len(layers))
	for i, l := range layers {
		n[i] = counts[l]
	}
	return layers, n
}

type memoryHandle struct {
	cell  *MemoryCell
	index int
}

func (h memoryHandle) Place(t wgmask.Trans) error {
	h.cell.shapes[h.index].Trans = t
	return nil
}
