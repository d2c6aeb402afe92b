package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/output"
)

var (
	removeTypeFlag    string
	removePatternFlag string
	removeIndexFlag   int
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove pending changes",
	Long: `Remove entries from the pending store. Filters combine: --type
restricts to one category, --pattern matches descriptions
case-insensitively, --index picks a single entry by its 1-based
position across all categories in standard order.

A single match asks for confirmation; multiple matches offer removing
all, picking specific ones, or cancelling.

Examples:
  chlog remove --type added --pattern "draft"
  chlog remove --index 3`,
	Args: cobra.NoArgs,
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().StringVar(&removeTypeFlag, "type", "", "Restrict to one category")
	removeCmd.Flags().StringVar(&removePatternFlag, "pattern", "", "Match descriptions containing this text")
	removeCmd.Flags().IntVar(&removeIndexFlag, "index", 0, "Global 1-based entry position")
}

func runRemove(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	var category changelog.Category
	if removeTypeFlag != "" {
		parsed, err := changelog.ParseCategory(removeTypeFlag)
		if err != nil {
			output.PrintFailure(errOut, "%v", err)
			return nil
		}
		category = parsed
	}

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

	candidates := changelog.SelectForRemoval(doc, category, removePatternFlag, removeIndexFlag)
	if len(candidates) == 0 {
		output.PrintFailure(errOut, "%v", changelog.ErrNoMatch)
		return nil
	}

	fmt.Fprintln(out, "Found changes to remove:")
	for i, cand := range candidates {
		fmt.Fprintf(out, "  [%d] [%s] %s\n", i+1, cand.Category, cand.Entry.Description)
	}

	picked, cancelled := chooseCandidates(cmd, candidates)
	if cancelled {
		fmt.Fprintln(out, "Cancelled")
		return nil
	}

	changelog.RemoveCandidates(doc, picked)
	if err := store.Save(doc); err != nil {
		return err
	}

	output.PrintSuccess(out, "Removed %d change(s)", len(picked))
	return nil
}

// chooseCandidates runs the interactive confirmation step over a
// non-empty candidate list. The selection logic itself is pure; only
// the confirmation lives here.
func chooseCandidates(cmd *cobra.Command, candidates []changelog.Candidate) (picked []changelog.Candidate, cancelled bool) {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	if len(candidates) == 1 {
		if !promptYesNo(cmd, in, "Remove this change?") {
			return nil, true
		}
		return candidates, false
	}

	fmt.Fprintln(out, "\nChoose an action:")
	fmt.Fprintln(out, "  1) Remove all matches")
	fmt.Fprintln(out, "  2) Pick specific entries")
	fmt.Fprintln(out, "  3) Cancel")

	switch promptLine(cmd, in, "Your choice [1-3]: ") {
	case "1":
		return candidates, false
	case "2":
		input := promptLine(cmd, in, "Enter numbers separated by commas: ")
		positions := parseSelection(input, len(candidates))
		if len(positions) == 0 {
			return nil, true
		}
		for _, n := range positions {
			picked = append(picked, candidates[n-1])
		}
		return picked, false
	default:
		return nil, true
	}
}
