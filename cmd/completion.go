package cmd

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh]",
	Short: "Generate completion script",
	Long: `Prints a completion script for bash or zsh. Load it in the current shell with

  $ source <(labtool completion bash)

or install it once, for example to /etc/bash_completion.d/labtool or "${fpath[1]}/_labtool".`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh"},
	Args:                  cobra.ExactValidArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "zsh" {
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		}
		return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
