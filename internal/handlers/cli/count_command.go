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

// NewCountCommand creates the 'count' subcommand.
func NewCountCommand(
	generator ports.RecordGenerator,
	aggregationService ports.AggregationService,
) *cobra.Command {
	var recordCount int

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Generate records and show their per-year frequency table.",
		Long: `Generates the requested number of synthetic journal records and
aggregates them into a frequency table keyed over every year of the
aggregation range, zero-count years included.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountCmd(cmd, args, generator, aggregationService)
		},
	}

	cmd.Flags().IntVarP(&recordCount, "records", "n", 1000, "Number of records to generate.")

	return cmd
}

func runCountCmd(
	cmd *cobra.Command,
	_ []string,
	generator ports.RecordGenerator,
	aggregationService ports.AggregationService,
) error {
	recordCount, _ := cmd.Flags().GetInt("records")

	records, err := generator.Generate(recordCount)
	if err != nil {
		return fmt.Errorf("could not generate records: %w", err)
	}

	table := aggregationService.CountByYear(records)

	fmt.Println(ui.HeaderColor(fmt.Sprintf("Year frequencies for %d generated records:", len(records))))

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"Year", "Count"})
	w.SetBorder(true)
	w.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, year := range table.Years() {
		w.Append([]string{strconv.Itoa(year), strconv.Itoa(table[year])})
	}
	w.Render()

	fmt.Println(ui.DetailColor(fmt.Sprintf("Total counted: %d of %d records.", table.Sum(), len(records))))
	return nil
}
