package commands

import (
	"github.com/spf13/cobra"

	"github.com/npillmayer/wgmask/device"
	"github.com/npillmayer/wgmask/layout"
)

func ringCmd() *cobra.Command {
	p := device.DefaultRingParams()
	cmd := &cobra.Command{
		Use:   "ring",
		Short: "All-pass ring with a circular racetrack",
		RunE: func(cmd *cobra.Command, args []string) error {
			var dev layout.Device
			var err error
			if noBus {
				dev, err = device.Racetrack(p)
			} else {
				dev, err = device.AllPassRing(p)
			}
			if err != nil {
				return err
			}
			return emit(cmd, dev)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&p.Width, "width", p.Width, "waveguide width [µm]")
	f.Float64Var(&p.Radius, "radius", p.Radius, "bend radius [µm]")
	f.Float64Var(&p.StraightLength, "straight", p.StraightLength, "length of the straights [µm]")
	f.Float64Var(&p.Gap, "gap", p.Gap, "gap between bus and resonator [µm]")
	return cmd
}

func eulerRingCmd() *cobra.Command {
	p := device.DefaultEulerRingParams()
	cmd := &cobra.Command{
		Use:   "euler-ring",
		Short: "All-pass ring with an Euler racetrack",
		RunE: func(cmd *cobra.Command, args []string) error {
			var dev layout.Device
			var err error
			if noBus {
				dev, err = device.EulerRacetrack(p)
			} else {
				dev, err = device.AllPassEulerRing(p)
			}
			if err != nil {
				return err
			}
			return emit(cmd, dev)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&p.Width, "width", p.Width, "waveguide width [µm]")
	f.Float64Var(&p.ArcLength, "arc", p.ArcLength, "arc length of a 180° bend [µm]")
	f.Float64Var(&p.StraightLength, "straight", p.StraightLength, "length of the straights [µm]")
	f.Float64Var(&p.Gap, "gap", p.Gap, "gap between bus and resonator [µm]")
	return cmd
}

func adiabaticRingCmd() *cobra.Command {
	p := device.DefaultAdiabaticRingParams()
	cmd := &cobra.Command{
		Use:   "adiabatic-ring",
		Short: "All-pass ring with an adiabatic Euler racetrack",
		RunE: func(cmd *cobra.Command, args []string) error {
			var dev layout.Device
			var err error
			if noBus {
				dev, err = device.AdiabaticRacetrack(p)
			} else {
				dev, err = device.AllPassAdiabaticEulerRing(p)
			}
			if err != nil {
				return err
			}
			return emit(cmd, dev)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&p.Width, "width", p.Width, "waveguide width [µm]")
	f.Float64Var(&p.OuterArcLength, "outer-arc", p.OuterArcLength, "arc length of the outer bend [µm]")
	f.Float64Var(&p.InnerArcLength, "inner-arc", p.InnerArcLength, "arc length of the inner bend [µm]")
	f.Float64Var(&p.StraightLength, "straight", p.StraightLength, "length of the straights [µm]")
	f.Float64Var(&p.Gap, "gap", p.Gap, "gap between bus and resonator [µm]")
	f.IntVar(&p.Samples, "samples", p.Samples, "sample count per spiral half")
	return cmd
}
