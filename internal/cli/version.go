package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show chlog version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
