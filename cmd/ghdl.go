package cmd

import (
	"os"
	"path/filepath"

	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/sim"
	"github.com/JakubFranek/Nexys-A7-Lab/tool"
	"github.com/JakubFranek/Nexys-A7-Lab/util"

	"github.com/spf13/cobra"
)

var stopTime string

var ghdlCmd = &cobra.Command{
	Use:   "ghdl <testbench>",
	Args:  cobra.ExactArgs(1),
	Short: "Simulates a testbench with GHDL",
	Long: `Cleans the simulation directory, imports every VHDL file of the source directory and
the testbench, elaborates the testbench and runs it, dumping the waveform to
<simulation directory>/<testbench>.vcd.`,
	Run: runGHDL,
}

func init() {
	ghdlCmd.Flags().StringVar(&stopTime, "stop-time", "", "Simulation stop time (default from the configuration)")
	rootCmd.AddCommand(ghdlCmd)
}

func runGHDL(cmd *cobra.Command, args []string) {
	p := openProject()
	testbench, err := filepath.Abs(args[0])
	if err != nil {
		log.Fatal("Failed to resolve '%s': %s.\n", args[0], err)
	}
	if !util.FileExists(testbench) {
		log.Fatal("Testbench '%s' does not exist.\n", args[0])
	}

	simDir := p.ws.Path(p.cfg.SimulationDir)
	if util.DirExists(simDir) {
		log.Log("Cleaning '%s'.\n", p.rel(simDir))
		if err := os.RemoveAll(simDir); err != nil {
			log.Fatal("Failed to clean '%s': %s.\n", simDir, err)
		}
	}
	if err := os.MkdirAll(simDir, util.DirMode); err != nil {
		log.Fatal("Failed to create '%s': %s.\n", simDir, err)
	}

	sources, err := sim.SourceFiles(p.ws.Path(p.cfg.SourceDir))
	if err != nil {
		log.Fatal("%s.\n", err)
	}
	log.Debug("Found %d source files.\n", len(sources))

	g := sim.GHDL{
		Config:    p.cfg,
		Root:      p.ws.Root(),
		Sources:   sources,
		Testbench: testbench,
		StopTime:  stopTime,
	}
	relay(tool.Sequence(g.Commands(), tool.Options{}))
	log.Success("Simulation of '%s' finished.\n", sim.TestbenchName(testbench))
}
