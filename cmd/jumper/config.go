package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.jumper/configs/jumper.yaml or ./configs/jumper.yaml and
edit the keys you want to change; missing keys keep their defaults.

Examples:
  jumper config > ~/.jumper/configs/jumper.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}
