package cmd

import (
	"path/filepath"

	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/sim"
	"github.com/JakubFranek/Nexys-A7-Lab/svg"
	"github.com/JakubFranek/Nexys-A7-Lab/tool"
	"github.com/JakubFranek/Nexys-A7-Lab/util"

	"github.com/spf13/cobra"
)

var synthQuiet bool

var synthCmd = &cobra.Command{
	Use:   "synth <vhd file> <svg file>",
	Args:  cobra.ExactArgs(2),
	Short: "Draws the synthesized schematic of an entity",
	Long: `Synthesizes the entity named like the VHDL file with Yosys and its GHDL plugin, draws
the netlist with netlistsvg and adds a white background to the resulting SVG file.`,
	Run: runSynth,
}

func init() {
	synthCmd.Flags().BoolVarP(&synthQuiet, "quiet", "q", false, "Only print tool output on failure")
	rootCmd.AddCommand(synthCmd)
}

func runSynth(cmd *cobra.Command, args []string) {
	p := openProject()
	if !util.FileExists(args[0]) {
		log.Fatal("'%s' does not exist.\n", args[0])
	}

	s := sim.Synthesis{Config: p.cfg, Source: p.rel(args[0]), Output: p.rel(args[1])}
	cmds := s.Commands()
	for i := range cmds {
		cmds[i].Dir = p.ws.Root()
	}
	relay(tool.Sequence(cmds, tool.Options{Quiet: synthQuiet}))

	output := s.Output
	if !filepath.IsAbs(output) {
		output = p.ws.Path(output)
	}
	if _, err := svg.AddBackground(output); err != nil {
		log.Fatal("%s.\n", err)
	}
	log.Success("Created '%s'.\n", s.Output)
}
