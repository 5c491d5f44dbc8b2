package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"github.com/YoutacRandS-VA/uiua/run"
)

var cfgFile string

// config holds settings read from the optional config file.
type config struct {
	Prompt string `yaml:"prompt"`
	Seed   *int64 `yaml:"seed"`
}

var cfg = config{Prompt: "uiua> "}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "uiua",
	Short: "A stack-based array language",
	Long: `Evaluate array language programs from files, expressions, or an
interactive session.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

// Execute runs the root command and exits the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default $HOME/.uiua.yaml)")
}

func loadConfig() error {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".uiua.yaml")
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, &cfg)
}

// envOptions converts the loaded config into environment options.
func envOptions() []run.Option {
	var opts []run.Option
	if cfg.Seed != nil {
		opts = append(opts, run.WithSeed(*cfg.Seed))
	}
	return opts
}
