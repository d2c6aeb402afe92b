package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap the changelog document and an empty pending store",
	Long: `Initialize a changelog project in the current directory (or the root
implied by --config).

This command:
  1. Creates .changelog/config.json with defaults if absent
  2. Writes the initial changelog document with an Unreleased section
  3. Resets the pending-change store to empty

Running init twice is safe: the result is always exactly one Unreleased
section and an empty pending store.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("name", "", "Project name (defaults to the root directory's name)")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := openProject(cmd)
	if err != nil {
		return err
	}

	if name, _ := cmd.Flags().GetString("name"); name != "" {
		if err := cfg.UpdateProject("name", name); err != nil {
			return err
		}
	}

	changelogPath, err := cfg.ResolvePath("changelog")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(changelogPath), 0755); err != nil {
		return fmt.Errorf("creating changelog directory: %w", err)
	}
	content := changelog.InitialDocument(cfg.Project.Name)
	if err := os.WriteFile(changelogPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing changelog: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	if _, err := store.Reset(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	output.PrintSuccess(out, "Changelog project initialized")
	output.PrintDetail(out, "Project:    %s", cfg.Project.Name)
	output.PrintDetail(out, "Changelog:  %s", changelogPath)
	output.PrintDetail(out, "Config:     %s", cfg.FilePath())
	output.PrintDetail(out, "Unreleased: %s", store.Path())
	return nil
}
