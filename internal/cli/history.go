package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/output"
)

var historyLimitFlag int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past releases",
	Long: `List the captured release records, newest first, with their dates,
change counts and notes.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimitFlag, "limit", 0, "Show at most this many releases (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := openProject(cmd)
	if err != nil {
		return err
	}
	releasesDir, err := cfg.ResolvePath("releases")
	if err != nil {
		return err
	}

	releases, err := changelog.LoadReleases(releasesDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(releases) == 0 {
		fmt.Fprintln(out, "No releases yet")
		return nil
	}
	if historyLimitFlag > 0 && len(releases) > historyLimitFlag {
		releases = releases[:historyLimitFlag]
	}

	fmt.Fprintf(out, "Releases (%d):\n", len(releases))
	output.Rule(out, false)
	for _, rel := range releases {
		fmt.Fprintf(out, "  %-12s %s  %3d change(s)\n", rel.Version, rel.Date, rel.Metadata.TotalChanges)
		if rel.ReleaseNotes != "" {
			fmt.Fprintf(out, "               %s\n", rel.ReleaseNotes)
		}
	}
	return nil
}
