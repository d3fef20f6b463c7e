package commands

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"

	"github.com/npillmayer/wgmask/layout"
)

var (
	traceLevel string
	noBus      bool
)

// Execute runs the root command.
func Execute() error {
	return rootCmd().Execute()
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "wgmask",
		Short:        "Photonic waveguide mask geometry",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if traceLevel == "" {
				return nil
			}
			// one Go logger serves all trace keys
			tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
			tracing.Select("geometry").SetTraceLevel(tracing.TraceLevelFromString(traceLevel))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&traceLevel, "trace", "", "trace level (Debug, Info, Error)")
	root.PersistentFlags().BoolVar(&noBus, "no-bus", false, "build the bare racetrack without a bus waveguide")

	root.AddCommand(ringCmd(), eulerRingCmd(), adiabaticRingCmd(), gratingCmd())
	return root
}

// emit builds a device into a fresh in-memory layout and reports it.
func emit(cmd *cobra.Command, devs ...layout.Device) error {
	sink := layout.NewMemorySink()
	namer := &layout.Namer{}
	for _, d := range devs {
		if _, err := layout.Emit(sink, namer, d, nil); err != nil {
			return err
		}
	}
	report(cmd.OutOrStdout(), sink)
	return nil
}
