package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-pebble/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the search
order and command line flags are applied. The output is valid YAML and can
be used as a starting point for ~/.pebble/configs/pebble.yaml.

Examples:
  pebble config
  pebble config --difficulty hard > ~/.pebble/configs/pebble.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		data, err := config.Marshal(mustLoadConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data) //nolint:errcheck
	},
}
