package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show client and backend versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "client:  %s\n", Version)

		backend, err := application.API.Version(cmd.Context())
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "backend: unreachable (%v)\n", err)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "backend: %s\n", backend)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
