package cmd

import (
	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/log"

	"github.com/spf13/cobra"
)

var renameDocsCmd = &cobra.Command{
	Use:   "rename-docs [directory]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Renames <name>.md documentation files to README.md",
	Long: `Renames <name>/<name>.md to <name>/README.md in every component folder holding
<name>.vhd, so the documentation shows up when browsing the repository.`,
	Run: runRenameDocs,
}

func init() {
	rootCmd.AddCommand(renameDocsCmd)
}

func runRenameDocs(cmd *cobra.Command, args []string) {
	p := openProject()
	root := p.dir(args)

	summary := &component.Summary{}
	log.Log("Renaming documentation files in '%s'.\n", p.rel(root))
	component.Run("rename-docs", p.folders(root), summary, component.RenameDocumentation)
	p.finish(summary)
}
