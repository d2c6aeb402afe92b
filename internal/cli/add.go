package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/errors"
	"github.com/raveheart1/chlog/internal/output"
)

var addCmd = &cobra.Command{
	Use:   "add <category> <description>",
	Short: "Record a pending change",
	Long: `Record a change in the pending store under one of the six Keep a
Changelog categories: added, changed, deprecated, removed, fixed,
security.

Examples:
  chlog add added "New export command"
  chlog add fixed "Crash on empty input" --author "Ana"`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().String("author", "", "Author of the change")
}

func runAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	category, err := changelog.ParseCategory(args[0])
	if err != nil {
		output.PrintFailure(cmd.ErrOrStderr(), "%v", err)
		return nil
	}

	description := args[1]
	if strings.TrimSpace(description) == "" {
		return errors.NewArgumentError("change description must not be empty")
	}
	author, _ := cmd.Flags().GetString("author")

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
	entry, err := doc.Add(category, description, author)
	if err != nil {
		return err
	}
	if err := store.Save(doc); err != nil {
		return err
	}

	output.PrintSuccess(out, "Change recorded: [%s] %s", category, entry.Description)
	if entry.Author != "" {
		output.PrintDetail(out, "Author: %s", entry.Author)
	}
	return nil
}
