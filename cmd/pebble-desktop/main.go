// pebble-desktop runs Flappy Pebble in a window.
//
// Usage:
//
//	pebble-desktop [--config path] [--difficulty name] [--backend name] [--seed value]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/platform/desktop"
	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/score"
	"github.com/vovakirdan/flappy-pebble/internal/sim"
	"github.com/vovakirdan/flappy-pebble/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBackend    string
	flagSeed       int64
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pebble-desktop",
	Short: "Flappy Pebble in a window",
	Long: `Play Flappy Pebble in a resizable window.

Controls:
  Space/Up/W, left click, tap, gamepad A  - Jump (also starts and restarts)
  Enter, gamepad Start                    - Confirm
  P/Esc, gamepad B                        - Pause / resume
  Esc/B/Backspace, gamepad Back           - Back to menu (after game over)
  F, gamepad Y                            - Toggle fullscreen`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().StringVar(&flagBackend, "backend", "", "Best score backend: file, gdata, sqlite (default from config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log state transitions")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pebble-desktop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return err
	}
	if flagBackend != "" {
		cfg.Persistence.Backend = flagBackend
	}

	backend, err := registry.Create(cfg.Persistence)
	if err != nil {
		logger.Warn("could not open best score backend", "backend", cfg.Persistence.Backend, "error", err)
		backend = nil
	}
	best := storage.LoadBestOrZero(backend, logger)
	persister := score.NewPersister(storage.SaverOrDiscard(backend), best, logger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := persister.Close(ctx); err != nil {
			logger.Warn("best score flush did not finish", "error", err)
		}
		if backend != nil {
			backend.Close() //nolint:errcheck
		}
	}()

	world, err := sim.NewWorld(cfg, sim.Options{
		Best:   best,
		Sink:   persister,
		Logger: logger,
		Seed:   flagSeed,
	})
	if err != nil {
		return err
	}

	history, _ := backend.(registry.RunRecorder)
	return desktop.Run(world, desktop.Options{History: history, Logger: logger})
}
