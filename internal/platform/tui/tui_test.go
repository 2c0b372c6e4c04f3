package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-pebble/internal/collision"
	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/core"
	"github.com/vovakirdan/flappy-pebble/internal/registry"
	"github.com/vovakirdan/flappy-pebble/internal/sim"
	"github.com/vovakirdan/flappy-pebble/internal/state"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []core.Action
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionJump}},
		{"w jumps", runeKey('w'), []core.Action{core.ActionJump}},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"escape pauses and cancels", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionPause, core.ActionCancel}},
		{"p pauses", runeKey('p'), []core.Action{core.ActionPause}},
		{"q quits", runeKey('q'), []core.Action{core.ActionQuit}},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}},
		{"unbound key", runeKey('z'), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keys.MapKey(tt.msg))
		})
	}
}

func newWorld(t *testing.T) *sim.World {
	t.Helper()
	w, err := sim.NewWorld(config.DefaultConfig(), sim.Options{
		Seed:   7,
		Logger: log.New(io.Discard),
	})
	require.NoError(t, err)
	return w
}

func TestDrawSnapshotMenu(t *testing.T) {
	w := newWorld(t)
	screen := core.NewScreen(80, 24)

	DrawSnapshot(screen, w.Snapshot())
	out := screen.String()

	assert.Contains(t, out, "FLAPPY PEBBLE")
	assert.Contains(t, out, "Start game")
	assert.NotContains(t, out, string(PebbleChar), "no pebble before a run starts")
	assert.True(t, strings.HasPrefix(screen.Row(23), " Score: 0  Best: 0"))
}

func TestDrawSnapshotPlaying(t *testing.T) {
	w := newWorld(t)
	w.Step(core.FrameOf(core.ActionConfirm))
	require.Equal(t, state.Playing, w.State())

	screen := core.NewScreen(80, 24)
	DrawSnapshot(screen, w.Snapshot())
	out := screen.String()

	assert.Contains(t, out, string(PebbleChar))
	assert.Contains(t, screen.Row(22), string(FloorChar))
	assert.NotContains(t, out, "FLAPPY PEBBLE")
}

func TestDrawSnapshotTinyScreen(t *testing.T) {
	w := newWorld(t)
	screen := core.NewScreen(10, 1)

	assert.NotPanics(t, func() { DrawSnapshot(screen, w.Snapshot()) })
}

func TestCauseText(t *testing.T) {
	assert.Equal(t, "fell to the ground", causeText(collision.CauseFloor))
	assert.Equal(t, "hit a moai", causeText(collision.CauseUpper))
	assert.Equal(t, "hit a moai", causeText(collision.CauseLower))
}

func TestButtonLabel(t *testing.T) {
	buttons := state.ButtonsFor(state.DefaultButtons, state.GameOver)
	require.NotEmpty(t, buttons)

	assert.Equal(t, "Restart", buttons[0].Name)
	assert.Contains(t, buttonLabel(buttons[0]), "Play again")
}

func TestModelQuitsThroughWorld(t *testing.T) {
	w := newWorld(t)
	m := NewModel(w, Options{Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, FrameRate: 30}, Logger: log.New(io.Discard)})

	m.Update(runeKey('q'))
	start := time.Now()
	m.handleFrame(start)
	assert.Equal(t, state.MainMenu, w.State(), "no tick has run yet")

	_, cmd := m.handleFrame(start.Add(100 * time.Millisecond))

	assert.Equal(t, state.Exit, w.State())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

type memRuns struct {
	runs []registry.Run
}

func (m *memRuns) SaveRun(r registry.Run) (int64, error) {
	m.runs = append(m.runs, r)
	return int64(len(m.runs)), nil
}

func (m *memRuns) TopRuns(limit int) ([]registry.Run, error) {
	if limit < len(m.runs) {
		return m.runs[:limit], nil
	}
	return m.runs, nil
}

func TestRecordRunSkipsEmptyRuns(t *testing.T) {
	runs := &memRuns{}
	m := NewModel(newWorld(t), Options{History: runs, Logger: log.New(io.Discard)})

	assert.Nil(t, m.recordRun(sim.RunSummary{Score: 0}))

	cmd := m.recordRun(sim.RunSummary{Score: 5, NewBest: true, Ticks: 300})
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, runs.runs, 1)
	assert.Equal(t, uint32(5), runs.runs[0].Score)
	assert.True(t, runs.runs[0].NewBest)
}

func TestScoreboardView(t *testing.T) {
	runs := &memRuns{}
	runs.SaveRun(registry.Run{Score: 12, Ticks: 900})
	runs.SaveRun(registry.Run{Score: 3, Ticks: 200})

	m := NewScoreboardModel(runs, nil, 12, 100, 30)
	out := m.View()

	assert.Contains(t, out, "BEST RUNS")
	assert.Contains(t, out, "Best: 12")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "#2")

	empty := NewScoreboardModel(nil, nil, 0, 100, 30)
	assert.Contains(t, empty.View(), "sqlite backend")
}
