package commands

import (
	"fmt"
	"io"

	"github.com/npillmayer/wgmask/layout"
)

func report(w io.Writer, sink *layout.MemorySink) {
	for _, c := range sink.Cells() {
		bb := c.Bounds()
		fmt.Fprintf(w, "%s\n", c.Name())
		fmt.Fprintf(w, "  bounds  %v  (%.4f × %.4f µm)\n", bb, bb.Width(), bb.Height())
		layers, counts := c.LayerCounts()
		for i, l := range layers {
			fmt.Fprintf(w, "  layer %-5s %d shapes\n", l, counts[i])
		}
		for i, s := range c.Shapes() {
			if s.Trans.IsIdentity() {
				fmt.Fprintf(w, "  #%-3d %d points, half width %g\n", i, len(s.Shape.Vertices()), s.Shape.HalfWidth())
				continue
			}
			fmt.Fprintf(w, "  #%-3d %d points, half width %g, placed %v\n", i, len(s.Shape.Vertices()),
				s.Shape.HalfWidth(), s.Trans)
		}
	}
}
