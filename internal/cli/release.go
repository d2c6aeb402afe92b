package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/output"
)

var (
	releaseNotesFlag string
	releaseTagFlag   bool
)

var releaseCmd = &cobra.Command{
	Use:   "release <version>",
	Short: "Freeze pending changes into a versioned release",
	Long: `Create a release from all pending changes: write an immutable release
record, insert a new version section into the changelog document below
the Unreleased heading and clear the pending store.

A leading "v" is kept in the displayed version but stripped from the
release record filename. Releasing with no pending changes is rejected.

Examples:
  chlog release 1.2.0
  chlog release v2.0.0 --notes "Breaking API rework" --tag`,
	Args: cobra.ExactArgs(1),
	RunE: runRelease,
}

func init() {
	rootCmd.AddCommand(releaseCmd)
	releaseCmd.Flags().StringVar(&releaseNotesFlag, "notes", "", "Release notes paragraph")
	releaseCmd.Flags().BoolVar(&releaseTagFlag, "tag", false, "Create an annotated git tag for the release")
}

func runRelease(cmd *cobra.Command, args []string) error {
	version := args[0]
	out := cmd.OutOrStdout()

	cfg, err := openProject(cmd)
	if err != nil {
		return err
	}
	engine, _, err := openEngine(cfg)
	if err != nil {
		return err
	}

	tag := releaseTagFlag || cfg.Settings.GitIntegration

	result, err := engine.Release(version, releaseNotesFlag, tag)
	if err != nil {
		if errors.Is(err, changelog.ErrNoPendingChanges) {
			output.PrintFailure(cmd.ErrOrStderr(), "No unreleased changes to release")
			output.PrintDetail(cmd.ErrOrStderr(), "Record one first: chlog add <category> <description>")
			return nil
		}
		var exists *changelog.ReleaseExistsError
		if errors.As(err, &exists) {
			output.PrintFailure(cmd.ErrOrStderr(), "%v", exists)
			output.PrintDetail(cmd.ErrOrStderr(), "Pick a new version, or delete the stale record if this release never completed")
			return nil
		}
		return err
	}

	output.PrintSuccess(out, "Release %s created", result.Version)
	output.PrintDetail(out, "Date:    %s", result.Date)
	output.PrintDetail(out, "Changes: %d", result.ChangeCount)
	output.PrintDetail(out, "Record:  %s", result.ReleaseFile)

	if result.Tagged {
		output.PrintSuccess(out, "Git tag created: %s", result.Version)
	}
	if result.TagWarning != "" {
		output.PrintWarning(out, "%s", result.TagWarning)
	}
	return nil
}
