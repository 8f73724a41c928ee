package cmd

import (
	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/sim"
	"github.com/JakubFranek/Nexys-A7-Lab/tool"

	"github.com/spf13/cobra"
)

var sbyCmd = &cobra.Command{
	Use:   "sby <directory> [task]",
	Args:  cobra.RangeArgs(1, 2),
	Short: "Runs the SymbiYosys job of a component",
	Long: `Runs the <directory>/<name>.sby SymbiYosys job, where <name> is the name of the
directory. Without a task every task of the job runs.`,
	Run: runSby,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return nil, cobra.ShellCompDirectiveFilterDirs
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
}

func init() {
	rootCmd.AddCommand(sbyCmd)
}

func runSby(cmd *cobra.Command, args []string) {
	p := openProject()
	task := ""
	if len(args) > 1 {
		task = args[1]
	}

	job := sim.Sby(p.cfg, p.rel(args[0]), task)
	job.Dir = p.ws.Root()
	relay(tool.Run(job, tool.Options{}))
	log.Success("Done.\n")
}
