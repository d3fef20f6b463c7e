package commands

import (
	"github.com/spf13/cobra"

	"github.com/npillmayer/wgmask/device"
)

func gratingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grating",
		Short: "Grating couplers",
	}
	cmd.AddCommand(periodicCmd(), arcCmd(), fanCmd())
	return cmd
}

func periodicCmd() *cobra.Command {
	p := device.DefaultPeriodicGratingParams()
	cmd := &cobra.Command{
		Use:   "periodic",
		Short: "Pairs of rectangles of alternating height",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := device.PeriodicGrating(p)
			if err != nil {
				return err
			}
			return emit(cmd, g)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&p.Width1, "width1", p.Width1, "width of the first rectangle [µm]")
	f.Float64Var(&p.Height1, "height1", p.Height1, "height of the first rectangle [µm]")
	f.Float64Var(&p.Width2, "width2", p.Width2, "width of the second rectangle [µm]")
	f.Float64Var(&p.Height2, "height2", p.Height2, "height of the second rectangle [µm]")
	f.IntVar(&p.NumPairs, "pairs", p.NumPairs, "number of rectangle pairs")
	return cmd
}

func arcCmd() *cobra.Command {
	p := device.DefaultArcGratingParams()
	cmd := &cobra.Command{
		Use:   "arc",
		Short: "Transition taper followed by arc scatterers",
		RunE: func(cmd *cobra.Command, args []string) error {
			p.NumElements = len(p.ArcRadii)
			g, err := device.ArcGrating(p)
			if err != nil {
				return err
			}
			return emit(cmd, g)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&p.WaveguideWidth, "width", p.WaveguideWidth, "port waveguide width [µm]")
	f.Float64Var(&p.TransitionX, "transition-x", p.TransitionX, "x position of the transition edge [µm]")
	f.Float64Var(&p.TransitionY, "transition-y", p.TransitionY, "height of the transition edge [µm]")
	f.Float64Var(&p.TransitionRadius, "transition-radius", p.TransitionRadius, "radius of the transition edge [µm]")
	f.Float64SliceVar(&p.ArcRadii, "radii", p.ArcRadii, "radius of every scatterer [µm]")
	f.Float64Var(&p.Pitch, "pitch", p.Pitch, "scatterer pitch [µm]")
	f.Float64Var(&p.ElementWidth, "element-width", p.ElementWidth, "scatterer width [µm]")
	f.Float64Var(&p.Cladding, "cladding", p.Cladding, "partial etch margin around scatterers [µm]")
	return cmd
}

func fanCmd() *cobra.Command {
	p := device.DefaultFanGratingParams()
	cmd := &cobra.Command{
		Use:   "fan",
		Short: "Concentric arcs around a port waveguide",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := device.FanGrating(p)
			if err != nil {
				return err
			}
			return emit(cmd, g)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&p.WaveguideWidth, "width", p.WaveguideWidth, "port waveguide width [µm]")
	f.IntVar(&p.NumArcs, "arcs", p.NumArcs, "number of arcs")
	f.Float64Var(&p.InitialRadius, "radius", p.InitialRadius, "radius of the innermost arc [µm]")
	f.Float64Var(&p.ArcSpacing, "spacing", p.ArcSpacing, "radius increment [µm]")
	f.Float64Var(&p.ArcWidth, "arc-width", p.ArcWidth, "arc width [µm]")
	return cmd
}
