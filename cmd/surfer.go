package cmd

import (
	"os"
	"path/filepath"

	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/picker"
	"github.com/JakubFranek/Nexys-A7-Lab/sim"
	"github.com/JakubFranek/Nexys-A7-Lab/tool"
	"github.com/JakubFranek/Nexys-A7-Lab/util"

	"github.com/spf13/cobra"
)

var surferCmd = &cobra.Command{
	Use:   "surfer <pattern>",
	Args:  cobra.ExactArgs(1),
	Short: "Opens the waveform of a VUnit test in Surfer",
	Long: `Looks up the VUnit tests matching the glob pattern, lets you pick one when several
match and opens its waveform in Surfer. A *surf.ron state file found in the testbench
directory is loaded as well.`,
	Run: runSurfer,
}

func init() {
	rootCmd.AddCommand(surferCmd)
}

func runSurfer(cmd *cobra.Command, args []string) {
	p := openProject()
	cfg := p.cfg
	cfg.TestbenchDir = p.ws.Path(cfg.TestbenchDir)
	cfg.VUnitOutput = p.ws.Path(cfg.VUnitOutput)

	tests, err := sim.ReadMapping(filepath.Join(sim.TestOutputDir(cfg), sim.MappingFile))
	if err != nil {
		log.Fatal("%s. Run 'labtool vunit' first.\n", err)
	}
	matches, err := sim.MatchTests(tests, args[0])
	if err != nil {
		log.Fatal("%s.\n", err)
	}

	var test sim.Test
	switch len(matches) {
	case 0:
		log.Error("No matching tests found.\n")
		os.Exit(1)
	case 1:
		test = matches[0]
		log.Log("Found 1 matching test: %s\n", test.Name)
	default:
		log.Log("Found %d matching tests.\n", len(matches))
		names := util.MappedSlice(matches, func(t sim.Test) string { return t.Name })
		index, err := picker.Choose("Select test", names)
		if err != nil {
			log.Fatal("%s.\n", err)
		}
		test = matches[index]
	}

	state := ""
	states, err := sim.StateFiles(cfg, test.Name)
	if err != nil {
		log.Warning("%s. Proceeding without a state file...\n", err)
	}
	switch len(states) {
	case 0:
		log.Log("No state files found. Proceeding...\n")
	case 1:
		state = states[0]
		log.Log("Found 1 state file: %s\n", p.rel(state))
	default:
		index, err := picker.Choose("Select state file", util.MappedSlice(states, p.rel))
		if err != nil {
			log.Fatal("%s.\n", err)
		}
		state = states[index]
	}

	wave := sim.WaveFile(cfg, test)
	if !util.FileExists(wave) {
		log.Warning("Waveform '%s' does not exist.\n", p.rel(wave))
	}
	relay(tool.Run(sim.Surfer(p.cfg, wave, state), tool.Options{}))
}
