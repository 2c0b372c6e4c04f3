package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-pebble/internal/collision"
	"github.com/vovakirdan/flappy-pebble/internal/core"
	"github.com/vovakirdan/flappy-pebble/internal/sim"
	"github.com/vovakirdan/flappy-pebble/internal/state"
	"github.com/vovakirdan/flappy-pebble/internal/viewport"
)

// Visual characters for rendering
const (
	PebbleChar = '●'
	MoaiChar   = '█'
	FloorChar  = '═'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawSnapshot draws a world snapshot into the screen buffer. The last row
// is the status line.
func DrawSnapshot(dst *core.Screen, snap sim.Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 {
		return
	}
	fieldH := dst.Height() - 1

	for _, o := range snap.Obstacles {
		drawWorldBox(dst, snap.Bounds, fieldH, o.Lower, MoaiChar, core.ColorGray)
		drawWorldBox(dst, snap.Bounds, fieldH, o.Upper, MoaiChar, core.ColorGray)
	}
	if snap.Pebble != nil {
		color := core.ColorBrightYellow
		if snap.State == state.GameOver {
			color = core.ColorRed
		}
		drawWorldBox(dst, snap.Bounds, fieldH, snap.Pebble.Box, PebbleChar, color)
	}
	dst.DrawHLine(0, fieldH-1, dst.Width(), FloorChar, core.ColorGreen)

	drawStatus(dst, snap, fieldH)
	drawOverlay(dst, snap, fieldH)
}

// drawWorldBox fills the cells covered by a world-space box.
func drawWorldBox(dst *core.Screen, b viewport.Bounds, fieldH int, box core.Box, fill rune, c core.Color) {
	x0, y0 := b.Project(box.Left(), box.Top(), dst.Width(), fieldH)
	x1, y1 := b.Project(box.Right(), box.Bottom(), dst.Width(), fieldH)

	left := int(math.Floor(float64(x0)))
	top := int(math.Floor(float64(y0)))
	right := int(math.Ceil(float64(x1)))
	bottom := int(math.Ceil(float64(y1)))

	r := core.NewRect(left, top, core.Max(1, right-left), core.Max(1, bottom-top))
	// Keep the status row clear
	if r.Bottom() > fieldH {
		r.H = fieldH - r.Y
	}
	dst.DrawRect(r, fill, c)
}

func drawStatus(dst *core.Screen, snap sim.Snapshot, y int) {
	status := fmt.Sprintf(" Score: %d  Best: %d", snap.Score, snap.Best)
	color := core.ColorWhite
	if snap.NewBest {
		status += "  NEW BEST!"
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(0, y, status, color)
}

// drawOverlay draws the dialog for non-playing states.
func drawOverlay(dst *core.Screen, snap sim.Snapshot, fieldH int) {
	var lines []string
	switch snap.State {
	case state.MainMenu:
		lines = []string{"FLAPPY PEBBLE", ""}
	case state.Paused:
		lines = []string{"PAUSED", ""}
	case state.GameOver:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Score: %d", snap.Score)}
		if snap.NewBest {
			lines = append(lines, "New high score!")
		} else {
			lines = append(lines, fmt.Sprintf("Best: %d", snap.Best))
		}
		if snap.Cause != collision.CauseNone {
			lines = append(lines, "("+causeText(snap.Cause)+")")
		}
		lines = append(lines, "")
	default:
		return
	}
	for _, b := range snap.Buttons {
		lines = append(lines, buttonLabel(b))
	}

	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	box := core.NewRect((dst.Width()-width-4)/2, (fieldH-len(lines)-2)/2, width+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCyan)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColored(box.X+2+(width-len([]rune(l)))/2, box.Y+1+i, l, c)
	}
}

func causeText(c collision.Cause) string {
	switch c {
	case collision.CauseFloor:
		return "fell to the ground"
	case collision.CauseLower, collision.CauseUpper:
		return "hit a moai"
	default:
		return c.String()
	}
}

// buttonLabel returns the menu text for a button, e.g. "[enter] Start game".
func buttonLabel(b state.Button) string {
	names := map[string]string{
		"StartGame": "Start game",
		"Exit":      "Exit",
		"Pause":     "Pause",
		"Unpause":   "Resume",
		"Restart":   "Play again",
		"MainMenu":  "Main menu",
	}
	label, ok := names[b.Name]
	if !ok {
		label = b.Name
	}

	var keys []string
	for _, a := range b.Actions {
		keys = append(keys, actionKey(a))
	}
	return fmt.Sprintf("[%s] %s", strings.Join(keys, "/"), label)
}

func actionKey(a core.Action) string {
	switch a {
	case core.ActionJump:
		return "space"
	case core.ActionPause, core.ActionCancel:
		return "esc"
	case core.ActionConfirm:
		return "enter"
	case core.ActionQuit:
		return "q"
	default:
		return a.String()
	}
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
