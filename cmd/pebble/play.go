package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-pebble/internal/core"
	"github.com/vovakirdan/flappy-pebble/internal/platform/tui"
	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/score"
	"github.com/vovakirdan/flappy-pebble/internal/sim"
	"github.com/vovakirdan/flappy-pebble/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Flappy Pebble in the current terminal.

Controls:
  Space/Up/W  - Jump (also starts and restarts)
  Enter       - Confirm
  P/Esc       - Pause / resume
  Esc/B       - Back to menu (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, moai keep the configured speed

Examples:
  pebble play
  pebble play --difficulty easy
  pebble play --seed 42
  pebble play --config ./my-pebble.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	logger, closeLog := fileLogger()
	defer closeLog()

	// Open score storage; the game still works without it
	backend := openBackend(cfg, logger)
	best := storage.LoadBestOrZero(backend, logger)
	persister := score.NewPersister(storage.SaverOrDiscard(backend), best, logger)

	world, err := sim.NewWorld(cfg, sim.Options{
		Best:   best,
		Sink:   persister,
		Logger: logger,
		Seed:   flagSeed,
	})
	if err != nil {
		closeStorage(persister, backend, logger)
		fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting run", "seed", world.Seed(), "backend", cfg.Persistence.Backend)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	history, _ := backend.(registry.RunRecorder)
	runErr := tui.Run(world, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			FrameRate: flagFPS,
			Seed:      world.Seed(),
		},
		History: history,
		Logger:  logger,
	})

	// Flush before potential exit
	closeStorage(persister, backend, logger)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
