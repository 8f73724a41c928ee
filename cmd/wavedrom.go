package cmd

import (
	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/wavedrom"

	"github.com/spf13/cobra"
)

var wavedromCmd = &cobra.Command{
	Use:   "wavedrom [directory]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Reconciles WaveDrom diagrams with the documentation referencing them",
	Long: `Adds a white background to every SVG file, removes WaveDrom diagrams no Markdown file
references, renames the referenced ones to <component>_wavedrom_<index>.svg and rewrites
the references accordingly.`,
	Run: runWavedrom,
}

func init() {
	wavedromCmd.Flags().BoolVar(&requireClean, "require-clean", false, "Refuse to run when the directory has uncommited changes")
	rootCmd.AddCommand(wavedromCmd)
}

func runWavedrom(cmd *cobra.Command, args []string) {
	p := openProject()
	root := p.dir(args)
	p.checkClean(root, requireClean)

	summary := &component.Summary{}
	log.Log("Reconciling WaveDrom diagrams in '%s'.\n", p.rel(root))
	component.Run("wavedrom", p.folders(root), summary, wavedrom.Process)
	p.finish(summary)
}
