package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/core"
	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/sim"
)

// Options holds the collaborators of a game screen.
type Options struct {
	Runtime core.RuntimeConfig   // Initial terminal size, frame rate and seed
	History registry.RunRecorder // Optional run history
	Logger  *log.Logger
}

// Model is the Bubble Tea model for one game session. It owns the runner
// and is the only code that advances the world.
type Model struct {
	runner   *sim.Runner
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	terminal config.TerminalConfig
	history  registry.RunRecorder
	logger   *log.Logger
	fps      int
	last     time.Time
	quitting bool
}

// NewModel creates a Bubble Tea model driving world.
func NewModel(world *sim.World, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	fps := opts.Runtime.FrameRate
	if fps <= 0 {
		fps = world.Config().Simulation.TickRate
	}

	m := &Model{
		runner:   sim.NewRunner(world),
		screen:   core.NewScreen(0, 0),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		terminal: world.Config().Terminal,
		history:  opts.History,
		logger:   logger,
		fps:      fps,
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	return m
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		for _, a := range m.keys.MapKey(msg) {
			m.runner.Press(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// resize fits the screen buffer to the terminal and reports the play field
// to the world as a physical size. The last terminal row holds the help bar.
func (m *Model) resize(cols, rows int) {
	fieldRows := rows - 1
	if fieldRows < 0 {
		fieldRows = 0
	}
	m.screen.Resize(cols, fieldRows)
	if cols > 0 && fieldRows > 1 {
		m.runner.World().Resize(float32(cols)*m.terminal.CellWidth, float32(fieldRows-1)*m.terminal.CellHeight)
	}
}

// handleFrame advances the simulation by the wall time since the last frame.
func (m *Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Duration(0)
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	res := m.runner.Frame(elapsed, core.InputFrame{})

	cmds := make([]tea.Cmd, 0, len(res.Ended)+1)
	for _, run := range res.Ended {
		cmds = append(cmds, m.recordRun(run))
	}

	if res.Exit {
		m.quitting = true
		cmds = append(cmds, tea.Quit)
		return m, tea.Sequence(cmds...)
	}

	cmds = append(cmds, frameCmd(m.fps))
	return m, tea.Batch(cmds...)
}

// recordRun saves a finished run off the update loop. Runs without a
// single pass are not recorded.
func (m *Model) recordRun(run sim.RunSummary) tea.Cmd {
	if m.history == nil || run.Score == 0 {
		return nil
	}
	history, logger := m.history, m.logger
	return func() tea.Msg {
		_, err := history.SaveRun(registry.Run{
			Score:   run.Score,
			NewBest: run.NewBest,
			Seed:    run.Seed,
			Ticks:   run.Ticks,
		})
		if err != nil {
			logger.Warn("failed to record run", "score", run.Score, "error", err)
		}
		return nil
	}
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.runner.World().Snapshot())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// World returns the driven world.
func (m *Model) World() *sim.World {
	return m.runner.World()
}

// Run starts the Bubble Tea program for world and blocks until the world
// reaches Exit or the terminal closes.
func Run(world *sim.World, opts Options) error {
	p := tea.NewProgram(
		NewModel(world, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
