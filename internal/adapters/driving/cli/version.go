package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the generator and document schema versions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("fixtodict version %s (document schema %s)\n", version, domain.SchemaVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
