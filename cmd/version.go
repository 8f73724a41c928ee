package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X github.com/JakubFranek/Nexys-A7-Lab/cmd.version=<tag>".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Args:  cobra.NoArgs,
	Short: "Print the labtool version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "labtool %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
