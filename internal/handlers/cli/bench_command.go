package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/AntonioJCosta/tally/internal/core/ports"
	"github.com/AntonioJCosta/tally/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// defaultBenchSizes is used when neither --sizes nor --preset is given.
var defaultBenchSizes = []int{10, 100, 1000, 10000, 100000}

// NewBenchCommand creates the 'bench' subcommand.
func NewBenchCommand(
	benchmarkService ports.BenchmarkService,
	presetOpener ports.SizePresetOpener,
	storeOpener ports.RunStoreOpener,
) *cobra.Command {
	var sizes []int
	var presetName, presetsFile, dbPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the counting strategies across input sizes.",
		Long: `Runs every counting strategy against freshly generated inputs for a
batch of sizes and reports the wall-clock time per run. Sizes come from
--sizes, from a named preset in the presets file, or from a built-in
default batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchCmd(cmd, args, benchmarkService, presetOpener, storeOpener)
		},
	}

	cmd.Flags().IntSliceVarP(&sizes, "sizes", "s", nil, "Comma-separated input sizes to benchmark.")
	cmd.Flags().StringVarP(&presetName, "preset", "p", "", "Name of a size preset from the presets file.")
	cmd.Flags().StringVar(&presetsFile, "presets-file", "", "Path to the YAML size presets file (default $HOME/.tally/presets.yaml).")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to persist the samples to (omit to skip persistence).")

	return cmd
}

func runBenchCmd(
	cmd *cobra.Command,
	_ []string,
	benchmarkService ports.BenchmarkService,
	presetOpener ports.SizePresetOpener,
	storeOpener ports.RunStoreOpener,
) error {
	sizes, _ := cmd.Flags().GetIntSlice("sizes")
	presetName, _ := cmd.Flags().GetString("preset")
	presetsFile, _ := cmd.Flags().GetString("presets-file")
	dbPath, _ := cmd.Flags().GetString("db")

	sizes, err := resolveBenchSizes(sizes, presetName, presetsFile, presetOpener)
	if err != nil {
		return err
	}

	samples, err := benchmarkService.Run(sizes)
	if err != nil {
		return fmt.Errorf("benchmark batch failed: %w", err)
	}

	if len(samples) == 0 {
		fmt.Println(ui.InfoColor("No sizes to benchmark."))
		return nil
	}

	fmt.Println(ui.HeaderColor("Benchmark results:"))

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"Strategy", "Input Size", "Elapsed"})
	w.SetBorder(true)
	w.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, sample := range samples {
		w.Append([]string{sample.Strategy, strconv.Itoa(sample.Size), sample.Elapsed.String()})
	}
	w.Render()

	if dbPath == "" {
		return nil
	}

	store, err := storeOpener(dbPath)
	if err != nil {
		return fmt.Errorf("could not open run store at %s: %w", dbPath, err)
	}
	defer store.Close()

	if err := store.SaveSamples(samples); err != nil {
		return fmt.Errorf("could not persist benchmark samples: %w", err)
	}
	fmt.Println(ui.SuccessColor(fmt.Sprintf("Saved %d samples to %s.", len(samples), dbPath)))
	return nil
}
