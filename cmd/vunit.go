package cmd

import (
	"github.com/JakubFranek/Nexys-A7-Lab/sim"
	"github.com/JakubFranek/Nexys-A7-Lab/tool"

	"github.com/spf13/cobra"
)

var vunitCmd = &cobra.Command{
	Use:   "vunit [runner arguments]",
	Short: "Runs the VUnit test runner",
	Long: `Runs the VUnit runner script with the output directory and the Surfer viewer set up.
All arguments are passed to the runner, for example:

  labtool vunit 'lib.debouncer_tb.*' --gui`,
	DisableFlagParsing: true,
	Run:                runVUnit,
}

func init() {
	rootCmd.AddCommand(vunitCmd)
}

func runVUnit(cmd *cobra.Command, args []string) {
	p := openProject()
	vunit := sim.VUnit(p.cfg, args)
	vunit.Dir = p.ws.Root()
	relay(tool.Run(vunit, tool.Options{}))
}
