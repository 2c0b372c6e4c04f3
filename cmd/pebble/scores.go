package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-pebble/internal/platform/tui"
	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best score and run history",
	Long: `Display the best score. With the sqlite backend the top runs are
listed as well.

Examples:
  pebble scores
  pebble scores --backend sqlite
  pebble scores --backend sqlite --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pebble"})

	backend, err := registry.Create(cfg.Persistence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s backend: %v\n", cfg.Persistence.Backend, err)
		os.Exit(1)
	}
	defer backend.Close() //nolint:errcheck

	best := storage.LoadBestOrZero(backend, logger)
	runs, _ := backend.(registry.RunRecorder)
	stats, _ := backend.(tui.StatsSource)

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(runs, stats, best, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	fmt.Printf("Best: %d\n", best)
	if runs == nil {
		return
	}

	top, err := runs.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}
	fmt.Println()
	if len(top) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pebble play --backend sqlite' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, r := range top {
		mark := ""
		if r.NewBest {
			mark = " *"
		}
		fmt.Printf("  %-4d  %-8d  %-8d  %s%s\n", i+1, r.Score, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"), mark)
	}
}
