// pebble is Flappy Pebble in the terminal.
//
// Usage:
//
//	pebble play      - Play in this terminal
//	pebble serve     - Start SSH server for remote play
//	pebble scores    - Show best score and run history
//	pebble config    - Print the effective configuration
//	pebble reset     - Clear the saved best score
//
// Global flags:
//
//	--config <path>      - Custom configuration YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--backend <name>     - Best score backend: file, gdata, sqlite
//	--db <path>          - SQLite database path (sqlite backend)
//	--fps <rate>         - Presentation frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/score"

	// Register best score backends
	_ "github.com/vovakirdan/flappy-pebble/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagBackend    string
	flagDBPath     string
	flagFPS        int
	flagSeed       int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pebble",
	Short: "Flappy Pebble - steer a pebble through the moai",
	Long: `Flappy Pebble is a one-button game: keep the pebble in the air and
slip it through the gaps between the moai.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Show best score and run history
  config   - Print the effective configuration
  reset    - Clear the saved best score

Examples:
  pebble play
  pebble play --difficulty hard
  pebble play --backend sqlite
  pebble serve --ssh :2222
  pebble scores --backend sqlite`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Best score backend: file, gdata, sqlite (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to SQLite database (default from config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Presentation frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadConfig resolves the configuration and applies the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	if flagBackend != "" {
		cfg.Persistence.Backend = flagBackend
	}
	if flagDBPath != "" {
		cfg.Persistence.DBPath = flagDBPath
	}
	if !registry.Exists(cfg.Persistence.Backend) {
		return cfg, fmt.Errorf("unknown backend %q (available: %v)", cfg.Persistence.Backend, registry.List())
	}
	return cfg, nil
}

// mustLoadConfig is loadConfig for commands that cannot continue without it.
func mustLoadConfig() config.Config {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// fileLogger opens ~/.pebble/pebble.log. The terminal belongs to the game
// screen, so play logs never go to stderr. On failure logs are discarded.
func fileLogger() (*log.Logger, func()) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pebble",
	})

	home, err := os.UserHomeDir()
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger, func() {}
	}
	dir := filepath.Join(home, ".pebble")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return logger, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "pebble.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger, func() {}
	}
	logger.SetOutput(f)
	return logger, func() {
		f.Close() //nolint:errcheck
	}
}

// openBackend opens the configured backend. A failure is logged and nil is
// returned so the game can still run without persistence.
func openBackend(cfg config.Config, logger *log.Logger) registry.Backend {
	backend, err := registry.Create(cfg.Persistence)
	if err != nil {
		logger.Warn("could not open best score backend", "backend", cfg.Persistence.Backend, "error", err)
		return nil
	}
	return backend
}

// closeStorage flushes the last best score and closes the backend.
func closeStorage(p *score.Persister, backend registry.Backend, logger *log.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.Close(ctx); err != nil {
		logger.Warn("best score flush did not finish", "error", err)
	}
	if backend != nil {
		backend.Close() //nolint:errcheck
	}
}
