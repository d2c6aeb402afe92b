package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/errors"
	"github.com/raveheart1/chlog/internal/output"
)

var (
	showAllFlag    bool
	showFormatFlag string
	showPlainFlag  bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show pending changes",
	Long: `Show the not-yet-released changes from the pending store.

With --all, the full changelog document is printed first, followed by
the pending-changes view.

Examples:
  chlog show                      # Pretty console view
  chlog show --format json        # Full pending document
  chlog show --format markdown    # Markdown bullet list
  chlog show --all                # Changelog document + pending view`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showAllFlag, "all", false, "Also dump the full changelog document")
	showCmd.Flags().StringVar(&showFormatFlag, "format", "pretty", "Output format: pretty, json or markdown")
	showCmd.Flags().BoolVar(&showPlainFlag, "plain", false, "Plain text output (no colors)")
}

func runShow(cmd *cobra.Command, args []string) error {
	format, err := changelog.ParseFormat(showFormatFlag)
	if err != nil {
		return errors.NewArgumentError(err.Error())
	}

	cfg, err := openProject(cmd)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := changelog.FormatOptions{Plain: showPlainFlag}

	if showAllFlag {
		changelogPath, err := cfg.ResolvePath("changelog")
		if err != nil {
			return err
		}
		if data, err := os.ReadFile(changelogPath); err == nil {
			output.Rule(out, opts.Plain)
			fmt.Fprintln(out, "ALL CHANGES (from "+cfg.Paths.Changelog+"):")
			output.Rule(out, opts.Plain)
			fmt.Fprintln(out, string(data))
			output.Rule(out, opts.Plain)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("reading changelog: %w", err)
		}
	}

	doc, err := store.Load()
	if err != nil {
		return err
	}
	return changelog.RenderPending(doc, format, out, opts)
}
