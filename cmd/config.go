package cmd

import (
	"fmt"

	"github.com/JakubFranek/Nexys-A7-Lab/log"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Args:  cobra.NoArgs,
	Short: "Prints the effective configuration",
	Long: `Prints the configuration labtool runs with, after merging the defaults, the
configuration file and LABTOOL_* environment variables (including those set in .env).`,
	Run: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	p := openProject()
	log.Debug("Workspace: '%s'\n", p.ws.Root())
	out, err := yaml.Marshal(p.cfg)
	if err != nil {
		log.Fatal("Failed to encode configuration: %s.\n", err)
	}
	fmt.Print(string(out))
}
