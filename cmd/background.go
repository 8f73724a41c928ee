package cmd

import (
	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/svg"

	"github.com/spf13/cobra"
)

var backgroundCmd = &cobra.Command{
	Use:   "background [directory]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Adds a white background to every SVG file",
	Long:  `Adds a white background to every SVG file below the directory (the source directory by default).`,
	Run:   runBackground,
}

func init() {
	rootCmd.AddCommand(backgroundCmd)
}

func runBackground(cmd *cobra.Command, args []string) {
	p := openProject()
	root := p.dir(args)
	folders := p.folders(root)
	if len(folders) == 0 || folders[0].Path != root {
		folders = append([]component.Folder{component.New(root)}, folders...)
	}

	summary := &component.Summary{}
	log.Log("Adding white backgrounds in '%s'.\n", p.rel(root))
	component.Run("background", folders, summary, svg.Process)
	p.finish(summary)
}
