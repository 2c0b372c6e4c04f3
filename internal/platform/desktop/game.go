// Package desktop is the windowed frontend built on Ebitengine.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flappy-pebble/internal/collision"
	"github.com/vovakirdan/flappy-pebble/internal/core"
	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/sim"
	"github.com/vovakirdan/flappy-pebble/internal/state"
)

var (
	colorSky     = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	colorGround  = color.RGBA{R: 0x3c, G: 0x8d, B: 0x2f, A: 0xff}
	colorMoai    = color.RGBA{R: 0x70, G: 0x70, B: 0x78, A: 0xff}
	colorPebble  = color.RGBA{R: 0xf4, G: 0xd0, B: 0x3f, A: 0xff}
	colorCrashed = color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
	colorDim     = color.RGBA{A: 0x90}
)

// Options holds the collaborators of the desktop frontend.
type Options struct {
	History registry.RunRecorder // Optional run history
	Logger  *log.Logger
}

// Game implements ebiten.Game for one World.
type Game struct {
	runner  *sim.Runner
	history registry.RunRecorder
	logger  *log.Logger
	width   int
	height  int
}

// NewGame creates the Ebitengine game driving world.
func NewGame(world *sim.World, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		runner:  sim.NewRunner(world),
		history: opts.History,
		logger:  logger,
	}
}

// Update runs once per Ebitengine tick and advances the world by one tick
// worth of wall time.
func (g *Game) Update() error {
	edges := readEdges()
	if edges.Has(core.ActionFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	res := g.runner.Frame(time.Second/time.Duration(ebiten.TPS()), edges)
	for _, run := range res.Ended {
		g.recordRun(run)
	}
	if res.Exit {
		return ebiten.Termination
	}
	return nil
}

// recordRun saves a finished run without blocking the game loop.
func (g *Game) recordRun(run sim.RunSummary) {
	if g.history == nil || run.Score == 0 {
		return
	}
	go func() {
		_, err := g.history.SaveRun(registry.Run{
			Score:   run.Score,
			NewBest: run.NewBest,
			Seed:    run.Seed,
			Ticks:   run.Ticks,
		})
		if err != nil {
			g.logger.Warn("failed to record run", "score", run.Score, "error", err)
		}
	}()
}

// Layout reports the window size to the world, which keeps bounds
// unchanged when the size is the same.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.runner.World().Resize(float32(outsideWidth), float32(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.runner.World().Snapshot()
	screen.Fill(colorSky)

	for _, o := range snap.Obstacles {
		g.drawBox(screen, snap, o.Lower, colorMoai)
		g.drawBox(screen, snap, o.Upper, colorMoai)
	}
	if snap.Pebble != nil {
		c := colorPebble
		if snap.State == state.GameOver {
			c = colorCrashed
		}
		g.drawBox(screen, snap, snap.Pebble.Box, c)
	}
	vector.DrawFilledRect(screen, 0, float32(g.height-4), float32(g.width), 4, colorGround, false)

	hud := fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best)
	if snap.NewBest {
		hud += "  NEW BEST!"
	}
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	g.drawOverlay(screen, snap)
}

func (g *Game) drawBox(screen *ebiten.Image, snap sim.Snapshot, box core.Box, c color.Color) {
	x0, y0 := snap.Bounds.Project(box.Left(), box.Top(), g.width, g.height)
	x1, y1 := snap.Bounds.Project(box.Right(), box.Bottom(), g.width, g.height)
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, c, false)
}

func (g *Game) drawOverlay(screen *ebiten.Image, snap sim.Snapshot) {
	var lines []string
	switch snap.State {
	case state.MainMenu:
		lines = []string{"FLAPPY PEBBLE", "", "Space / click / A: start", "Esc: exit"}
	case state.Paused:
		lines = []string{"PAUSED", "", "Esc / Enter: resume"}
	case state.GameOver:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Score: %d", snap.Score)}
		if snap.NewBest {
			lines = append(lines, "New high score!")
		} else {
			lines = append(lines, fmt.Sprintf("Best: %d", snap.Best))
		}
		if snap.Cause == collision.CauseFloor {
			lines = append(lines, "(fell to the ground)")
		}
		lines = append(lines, "", "Space: play again", "Esc: main menu")
	default:
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), colorDim, false)
	const lineHeight = 16
	top := g.height/2 - len(lines)*lineHeight/2
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, g.width/2-len(l)*3, top+i*lineHeight)
	}
}

// Run opens the window and blocks until the world exits or the window is
// closed.
func Run(world *sim.World, opts Options) error {
	cfg := world.Config().Window
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(cfg.Width/2), int(cfg.Height/2))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(world.Config().Simulation.TickRate)

	err := ebiten.RunGame(NewGame(world, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
