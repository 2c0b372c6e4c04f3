package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/storage"
)

var flagResetRuns bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved best score",
	Long: `Remove the best score from the configured backend. With --runs the
sqlite run history is cleared too.

Examples:
  pebble reset
  pebble reset --backend sqlite --runs`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetRuns, "runs", false, "Also clear run history (sqlite backend)")
}

func runReset(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	backend, err := registry.Create(cfg.Persistence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s backend: %v\n", cfg.Persistence.Backend, err)
		os.Exit(1)
	}
	defer backend.Close() //nolint:errcheck

	if err := backend.ResetBest(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Best score cleared (%s backend)\n", backend.Name())

	if !flagResetRuns {
		return
	}
	store, ok := backend.(*storage.Store)
	if !ok {
		fmt.Fprintf(os.Stderr, "The %s backend keeps no run history\n", backend.Name())
		return
	}
	if err := store.ClearRuns(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("Run history cleared")
}
