package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show pending-change statistics",
	Long: `Show per-category counts of pending changes (zero counts omitted),
the grand total and per-author contribution counts sorted descending.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := openProject(cmd)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	doc, err := store.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	stats := changelog.ComputeStats(doc)
	if stats.Total == 0 {
		output.PrintSuccess(out, "No unreleased changes")
		return nil
	}

	fmt.Fprintln(out, "Unreleased change statistics:")
	output.Rule(out, false)
	for _, cc := range stats.Categories {
		fmt.Fprintf(out, "  %-12s: %3d\n", cc.Category, cc.Count)
	}
	output.Rule(out, false)
	fmt.Fprintf(out, "  %-12s: %3d\n", "total", stats.Total)

	if len(stats.Authors) > 0 {
		fmt.Fprintln(out, "\nAuthors:")
		for _, ac := range stats.Authors {
			fmt.Fprintf(out, "  %-20s: %3d\n", ac.Author, ac.Count)
		}
	}
	return nil
}
