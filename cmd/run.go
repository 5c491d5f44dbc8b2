package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/YoutacRandS-VA/uiua/parse"
	"github.com/YoutacRandS-VA/uiua/run"
)

var (
	runExpression bool
	runQuiet      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run array language code",
	Long:  `Run code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		srcs, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := run.NewEnv(envOptions()...)
		for _, src := range srcs {
			words, err := parse.Parse(src.name, src.text)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if err := env.Exec(words); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		if runQuiet {
			return
		}
		stack := env.Stack()
		for i := len(stack) - 1; i >= 0; i-- {
			fmt.Println(stack[i])
		}
	},
}

type source struct {
	name string
	text string
}

func runReadSources(args []string) ([]source, error) {
	srcs := make([]source, len(args))
	if runExpression {
		for i := range args {
			srcs[i] = source{name: fmt.Sprintf("arg:%d", i+1), text: args[i]}
		}
		return srcs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		srcs[i] = source{name: path, text: string(b)}
	}
	return srcs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as expressions instead of file paths")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false,
		"Do not print the final stack")
}
