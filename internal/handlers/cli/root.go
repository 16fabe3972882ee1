package cli

import (
	"fmt"

	"github.com/AntonioJCosta/tally/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	generator ports.RecordGenerator,
	aggregationService ports.AggregationService,
	benchmarkService ports.BenchmarkService,
	presetOpener ports.SizePresetOpener,
	storeOpener ports.RunStoreOpener,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "tally",
		Short: "tally counts journal records per calendar year.",
		Long: `tally generates synthetic (label, year) journal records, aggregates
them into a per-year frequency table, and benchmarks the counting
strategies against each other across input sizes.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if (generator == nil || aggregationService == nil) && cmd.Name() == "count" {
				return fmt.Errorf("aggregation services not initialized for command %s", cmd.Name())
			}
			if benchmarkService == nil && cmd.Name() == "bench" {
				return fmt.Errorf("benchmark service not initialized for command %s", cmd.Name())
			}
			if storeOpener == nil && cmd.Name() == "runs" {
				return fmt.Errorf("run store not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewCountCommand(generator, aggregationService))
	rootCmd.AddCommand(NewBenchCommand(benchmarkService, presetOpener, storeOpener))
	rootCmd.AddCommand(NewRunsCommand(storeOpener))

	return rootCmd
}
