/*
Package layout is the boundary to a mask layout database.

Devices are handed to a Sink, which is expected to support just two
operations: creating a named empty cell, and appending a shape on a layer
to a cell. Appending returns a handle by which the shape is placed with a
wgmask.Trans. Everything beyond (hierarchies, persistence, file formats)
is up to the sink.

MemorySink is a sink keeping everything in memory, for tests and reports.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package layout

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wgmask"
	"github.com/npillmayer/wgmask/segment"
)

// tracer writes to trace with key 'devices'
func tracer() tracing.Trace {
	return tracing.Select("devices")
}

// Layer is a mask layer, identified by layer number and datatype.
type Layer struct {
	Layer    int
	Datatype int
}

func (l Layer) String() string {
	return fmt.Sprintf("%d/%d", l.Layer, l.Datatype)
}

// Layers maps element roles to mask layers.
type Layers map[segment.Role]Layer

// DefaultLayers puts waveguide cores on 1/0 and claddings on 2/0.
func DefaultLayers() Layers {
	return Layers{
		segment.Core:     {Layer: 1, Datatype: 0},
		segment.Cladding: {Layer: 2, Datatype: 0},
	}
}

// Sink creates cells in a layout database.
type Sink interface {
	CreateCell(name string) (Cell, error)
}

// Cell is a container of shapes in a layout database.
type Cell interface {
	Name() string
	Append(layer Layer, shape segment.Shape) (Handle, error)
}

// Handle refers to a shape appended to a cell.
type Handle interface {
	Place(t wgmask.Trans) error
}

// Device is anything made of placed elements, with a cell name.
type Device interface {
	Name() string
	Elements() []segment.Element
}

// Emit creates a cell for dev in sink and appends all of dev's elements,
// in order, each placed by its transform. If namer is non-nil, the cell name
// is made unique by it.
func Emit(sink Sink, namer *Namer, dev Device, layers Layers) (Cell, error) {
	if sink == nil || dev == nil {
		return nil, fmt.Errorf("%w: emitting needs a sink and a device", wgmask.ErrConfiguration)
	}
	if layers == nil {
		layers = DefaultLayers()
	}
	elems := dev.Elements()
	onLayer := make([]Layer, len(elems))
	for i, e := range elems {
		layer, ok := layers[e.Role]
		if !ok {
			return nil, fmt.Errorf("%w: no layer for role %s", wgmask.ErrConfiguration, e.Role)
		}
		onLayer[i] = layer
	}
	name := dev.Name()
	if namer != nil {
		name = namer.Next(name)
	}
	cell, err := sink.CreateCell(name)
	if err != nil {
		return nil, err
	}
	for i, e := range elems {
		h, err := cell.Append(onLayer[i], e.Shape)
		if err != nil {
			return nil, fmt.Errorf("element #%d (%s) of %s: %w", i, e.Name, name, err)
		}
		if err = h.Place(e.Trans); err != nil {
			return nil, fmt.Errorf("element #%d (%s) of %s: %w", i, e.Name, name, err)
		}
	}
	tracer().Debugf("emitted %s with %d elements", name, len(elems))
	return cell, nil
}

// Namer hands out unique cell names by appending a sequence number per base
// name. The zero value is ready to use. A Namer is not safe for concurrent
// use.
type Namer struct {
	seq map[string]int
}

// Next returns the next unique name for base: the first call returns base
// itself, subsequent calls base_1, base_2, …
func (n *Namer) Next(base string) string {
	if n.seq == nil {
		n.seq = make(map[string]int)
	}
	k := n.seq[base]
	n.seq[base] = k + 1
	if k == 0 {
		return base
	}
	return fmt.Sprintf("%s_%d", base, k)
}
