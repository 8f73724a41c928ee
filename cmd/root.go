package cmd

import (
	"os"

	"github.com/JakubFranek/Nexys-A7-Lab/log"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "labtool",
	Short: "Documentation and simulation helper for VHDL lab projects",
	Long: `labtool keeps the documentation of VHDL components in sync with their sources
(assertion, assumption and cover tables, WaveDrom diagrams) and wraps the external
HDL tools used by the project (GHDL, SymbiYosys, Yosys, netlistsvg, VUnit, Surfer).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&log.Verbose, "verbose", "v", false, "Print debug output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file (default is labtool.yaml in the workspace root)")
	if rootCmd.Execute() != nil {
		os.Exit(1)
	}
}
