// Package viewport converts physical viewport sizes into the logical world
// bounds used by the simulation.
package viewport

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flappy-pebble/internal/config"
)

// ErrInvalidSize is returned when a reported viewport size is unusable.
var ErrInvalidSize = errors.New("viewport: invalid size")

// Bounds is the visible world rectangle. It is always symmetric around the
// origin.
type Bounds struct {
	MinX, MaxX float32
	MinY, MaxY float32
}

// NewBounds returns bounds of the given logical width and height.
func NewBounds(width, height float32) Bounds {
	return Bounds{
		MinX: -width / 2,
		MaxX: width / 2,
		MinY: -height / 2,
		MaxY: height / 2,
	}
}

// Width returns the logical width.
func (b Bounds) Width() float32 {
	return b.MaxX - b.MinX
}

// Height returns the logical height.
func (b Bounds) Height() float32 {
	return b.MaxY - b.MinY
}

// HalfExtent returns the smaller of the half width and the half height.
func (b Bounds) HalfExtent() float32 {
	return min(b.MaxX, b.MaxY)
}

// Project maps a world point to a screen of the given size in frontend
// units. Screen y grows downward.
func (b Bounds) Project(x, y float32, screenW, screenH int) (float32, float32) {
	sx := (x - b.MinX) / b.Width() * float32(screenW)
	sy := (b.MaxY - y) / b.Height() * float32(screenH)
	return sx, sy
}

// MinVisible returns the smallest logical area that must stay visible:
// two obstacle widths plus the spacing horizontally, and the gap height
// range plus the vertical gap plus room for the pebble above and below it.
// Pebble height stands in for obstacle height so the default window is shown at scale 1.
func MinVisible(cfg config.Config) (width, height float32) {
	width = 2*cfg.Moai.Width + cfg.Moai.HorizontalSpacing
	height = (cfg.Moai.GapMax - cfg.Moai.GapMin) + 2*cfg.Pebble.Height + cfg.Moai.VerticalGap
	return width, height
}

// Tracker derives logical bounds from physical viewport sizes.
type Tracker struct {
	minW, minH float32
	scale      float32
	bounds     Bounds
}

// NewTracker creates a tracker that keeps at least minW x minH logical units
// visible, starting at the given physical size.
func NewTracker(minW, minH, physW, physH float32) (*Tracker, error) {
	t := &Tracker{minW: minW, minH: minH}
	if _, err := t.Resize(physW, physH); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTrackerFromConfig creates a tracker sized from the window configuration.
func NewTrackerFromConfig(cfg config.Config) (*Tracker, error) {
	w, h := MinVisible(cfg)
	return NewTracker(w, h, cfg.Window.Width, cfg.Window.Height)
}

// Resize recomputes the bounds for a new physical size. The physical viewport
// is shown 1:1 unless it is smaller than the minimum visible area, in which
// case it is scaled down uniformly. Invalid sizes leave the bounds unchanged.
func (t *Tracker) Resize(physW, physH float32) (Bounds, error) {
	if !(physW > 0) || !(physH > 0) {
		return t.bounds, fmt.Errorf("%w: %gx%g", ErrInvalidSize, physW, physH)
	}

	scale := min(float32(1), physW/t.minW, physH/t.minH)

	t.scale = scale
	t.bounds = NewBounds(physW/scale, physH/scale)
	return t.bounds, nil
}

// Bounds returns the current logical bounds.
func (t *Tracker) Bounds() Bounds {
	return t.bounds
}

// Scale returns physical units per logical unit (at most 1).
func (t *Tracker) Scale() float32 {
	return t.scale
}
