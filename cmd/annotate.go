package cmd

import (
	"github.com/JakubFranek/Nexys-A7-Lab/annotation"
	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/log"

	"github.com/spf13/cobra"
)

var annotateKinds []string

var annotateCmd = &cobra.Command{
	Use:   "annotate [directory]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Regenerates the annotation tables in the component documentation",
	Long: `Regenerates the Covers, Assumptions and Assertions tables in the README.md of every
component below the directory (the source directory by default), and of the directory itself
when it is a component. All kinds are regenerated unless --kind selects some of them.`,
	Run: runAnnotate,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveFilterDirs
	},
}

func init() {
	annotateCmd.Flags().StringSliceVarP(&annotateKinds, "kind", "k", nil, "Kinds to regenerate: assertions, assumptions, covers")
	rootCmd.AddCommand(annotateCmd)
}

func selectedKinds() []annotation.Kind {
	if len(annotateKinds) == 0 {
		return annotation.Kinds
	}
	kinds := []annotation.Kind{}
	for _, name := range annotateKinds {
		kind, err := annotation.ParseKind(name)
		if err != nil {
			log.Fatal("%s.\n", err)
		}
		kinds = append(kinds, kind)
	}
	return kinds
}

func runAnnotate(cmd *cobra.Command, args []string) {
	kinds := selectedKinds()
	p := openProject()
	root := p.dir(args)
	folders := p.folders(root)

	summary := &component.Summary{}
	for _, kind := range kinds {
		log.Log("Documenting %s in '%s'.\n", kind, p.rel(root))
		component.Run(kind.String(), folders, summary, annotationPass(kind))
	}
	p.finish(summary)
}
