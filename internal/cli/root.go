// Package cli wires the chlog commands. Each command lives in its own
// file and registers itself on the root command from init().
package cli

import (
	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "chlog",
	Short: "Track unreleased changes and roll them into a versioned changelog",
	Long: `chlog tracks pending change entries grouped by Keep a Changelog
category and, on release, rolls them into a versioned CHANGELOG.md
section plus an immutable per-release record.

State lives under <project-root>/.changelog/: a config file, the
pending-change store and one JSON record per release.`,
	Example: `  # Bootstrap a project
  chlog init --name "My Project"

  # Record changes
  chlog add added "New export command"
  chlog add fixed "Crash on empty input" --author "Ana"

  # Inspect
  chlog show
  chlog show --all --format markdown
  chlog stats

  # Release
  chlog release v1.2.0 --notes "First stable release" --tag`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "",
		"Path to the config file (its directory becomes the project root)")
}

// Execute runs the root command. Structured errors are printed with
// category and remediation; anything else is wrapped as a runtime
// error. The caller maps a non-nil return to exit code 1.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
		} else {
			errors.PrintError(errors.Wrap(err, errors.Runtime))
		}
	}
	return err
}
