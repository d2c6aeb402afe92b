package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/config"
	"github.com/raveheart1/chlog/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the project configuration",
	Long: `Manage the project configuration stored at
<project-root>/.changelog/config.json.

Keys use a section.key format across three sections: project, paths
and settings. A bare key without a dot targets the project section.`,
	Example: `  chlog config show
  chlog config update paths.changelog "docs/CHANGELOG.md"
  chlog config update settings.auto_backup false
  chlog config update version 1.0.0`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configUpdateCmd = &cobra.Command{
	Use:   "update <section.key> <value>",
	Short: "Update a configuration value",
	Long: `Update one configuration value and persist it immediately.

Values looking like booleans (true/false, case-insensitive) are stored
as booleans and all-digit values as integers; anything else is stored
as a string.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigUpdate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configUpdateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := openProject(cmd)
	if err != nil {
		return err
	}

	changelogPath, _ := cfg.ResolvePath("changelog")
	unreleasedPath, _ := cfg.ResolvePath("unreleased")
	releasesDir, _ := cfg.ResolvePath("releases")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current configuration:")
	output.Rule(out, false)
	fmt.Fprintf(out, "Project: %s\n", cfg.Project.Name)
	fmt.Fprintf(out, "Version: %s\n", cfg.Project.Version)
	fmt.Fprintf(out, "Author:  %s\n", cfg.Project.Author)
	fmt.Fprintf(out, "License: %s\n", cfg.Project.License)
	fmt.Fprintln(out, "\nPaths:")
	fmt.Fprintf(out, "  changelog:  %s\n", changelogPath)
	fmt.Fprintf(out, "  unreleased: %s\n", unreleasedPath)
	fmt.Fprintf(out, "  releases:   %s\n", releasesDir)
	fmt.Fprintln(out, "\nSettings:")
	fmt.Fprintf(out, "  auto_backup:     %v\n", cfg.Settings.AutoBackup)
	fmt.Fprintf(out, "  date_format:     %s\n", cfg.Settings.DateFormat)
	fmt.Fprintf(out, "  time_format:     %s\n", cfg.Settings.TimeFormat)
	fmt.Fprintf(out, "  git_integration: %v\n", cfg.Settings.GitIntegration)
	output.Rule(out, false)
	return nil
}

func runConfigUpdate(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	cfg, err := openProject(cmd)
	if err != nil {
		return err
	}

	section, subkey := "project", key
	if i := strings.Index(key, "."); i >= 0 {
		section, subkey = key[:i], key[i+1:]
	}

	switch section {
	case "project":
		err = cfg.UpdateProject(subkey, value)
	case "paths":
		err = cfg.UpdatePath(subkey, value)
	case "settings":
		err = cfg.UpdateSetting(subkey, config.CoerceValue(value))
	default:
		output.PrintFailure(errOut, "unknown configuration section %q (valid: %s)",
			section, strings.Join(config.Sections(), ", "))
		return nil
	}
	if err != nil {
		output.PrintFailure(errOut, "could not update configuration: %v", err)
		return nil
	}

	output.PrintSuccess(out, "Configuration updated: %s = %s", key, value)
	return nil
}
