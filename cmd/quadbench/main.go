// Command quadbench times scalar float32 addition against one 128-bit SIMD
// addition of the same four lanes.
//
// Usage:
//
//	quadbench            print both sums and the timing of 100,000 repetitions
//	quadbench kernels    time every registered kernel on this CPU
//	quadbench version    print build information
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-simdquad/bench"
	"github.com/cwbudde/algo-simdquad/internal/cpu"
)

var (
	version   = "0.1.0"
	commit    = "dev"
	buildTime = "unknown" // Set via ldflags: -X main.buildTime=$(date +%Y%m%d-%H%M%S)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quadbench",
		Short: "Compare scalar and SIMD addition of four float32 lanes",
		Long: `quadbench adds [4.5 3 2 1] and [9 7 6.25 5] once element by element
and once with a single 128-bit vector instruction, prints both sums, then
times 100,000 repetitions of each.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bench.Run(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "kernels",
		Short: "Time every quad-add kernel this CPU can run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			features := cpu.DetectFeatures()
			return bench.WriteSurvey(cmd.OutOrStdout(), features, bench.Survey(features))
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quadbench v%s (%s) built %s\n", version, commit, buildTime)
		},
	})

	return rootCmd
}
