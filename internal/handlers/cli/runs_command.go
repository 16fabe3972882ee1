package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/AntonioJCosta/tally/internal/core/ports"
	"github.com/AntonioJCosta/tally/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewRunsCommand creates the 'runs' subcommand.
func NewRunsCommand(storeOpener ports.RunStoreOpener) *cobra.Command {
	var dbPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List persisted benchmark runs.",
		Long:  `Displays benchmark samples previously saved with 'bench --db', newest first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunsCmd(cmd, args, storeOpener)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to read runs from (default $HOME/.tally/tally.db).")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of runs to show (0 for all).")

	return cmd
}

func runRunsCmd(
	cmd *cobra.Command,
	_ []string,
	storeOpener ports.RunStoreOpener,
) error {
	dbPath, _ := cmd.Flags().GetString("db")
	limit, _ := cmd.Flags().GetInt("limit")

	if dbPath == "" {
		dbPath = defaultRunDBPath()
	}

	store, err := storeOpener(dbPath)
	if err != nil {
		return fmt.Errorf("could not open run store at %s: %w", dbPath, err)
	}
	defer store.Close()

	runs, err := store.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("could not list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println(ui.InfoColor(fmt.Sprintf("No benchmark runs recorded in %s.", dbPath)))
		return nil
	}

	fmt.Println(ui.HeaderColor(fmt.Sprintf("Benchmark runs in %s (newest first):", dbPath)))

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"ID", "Recorded At", "Strategy", "Input Size", "Elapsed"})
	w.SetBorder(true)
	w.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, run := range runs {
		recordedAt := ""
		if !run.CreatedAt.IsZero() {
			recordedAt = run.CreatedAt.Format("2006-01-02 15:04:05")
		}
		w.Append([]string{
			strconv.FormatInt(run.ID, 10),
			recordedAt,
			run.Strategy,
			strconv.Itoa(run.Size),
			run.Elapsed.String(),
		})
	}
	w.Render()
	return nil
}

func defaultRunDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tally.db"
	}
	return filepath.Join(home, ".tally", "tally.db")
}
