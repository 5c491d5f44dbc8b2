package cmd

import (
	"github.com/spf13/cobra"
	"github.com/YoutacRandS-VA/uiua/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(cfg.Prompt, envOptions()...)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
