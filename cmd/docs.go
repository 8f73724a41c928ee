package cmd

import (
	"github.com/JakubFranek/Nexys-A7-Lab/annotation"
	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/wavedrom"

	"github.com/spf13/cobra"
)

var requireClean bool

var docsCmd = &cobra.Command{
	Use:   "docs [directory]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Brings the documentation of every component up to date",
	Long: `Brings the documentation of every component below the directory (the source
directory by default) up to date. The passes run in this order:

  rename-docs   <name>.md is renamed to README.md
  wavedrom      unused WaveDrom diagrams are removed, used ones renamed
  covers        the Covers table is regenerated
  assumptions   the Assumptions table is regenerated
  assertions    the Assertions table is regenerated

A folder that fails one pass does not stop any other folder or pass.`,
	Run: runDocs,
}

func init() {
	docsCmd.Flags().BoolVar(&requireClean, "require-clean", false, "Refuse to run when the directory has uncommited changes")
	rootCmd.AddCommand(docsCmd)
}

func annotationPass(kind annotation.Kind) func(component.Folder) component.Result {
	return func(folder component.Folder) component.Result {
		return annotation.Document(folder, kind)
	}
}

func runDocs(cmd *cobra.Command, args []string) {
	p := openProject()
	root := p.dir(args)
	p.checkClean(root, requireClean)
	folders := p.folders(root)

	summary := &component.Summary{}
	log.Log("Renaming documentation files in '%s'.\n", p.rel(root))
	component.Run("rename-docs", folders, summary, component.RenameDocumentation)

	log.Log("Reconciling WaveDrom diagrams in '%s'.\n", p.rel(root))
	component.Run("wavedrom", folders, summary, wavedrom.Process)

	for _, kind := range annotation.Kinds {
		log.Log("Documenting %s in '%s'.\n", kind, p.rel(root))
		component.Run(kind.String(), folders, summary, annotationPass(kind))
	}

	p.finish(summary)
}
