// Package config provides YAML-based game configuration loading, validation
// and difficulty management.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of the game.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Simulation  SimulationConfig  `yaml:"simulation"`
	Pebble      PebbleConfig      `yaml:"pebble"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Moai        MoaiConfig        `yaml:"moai"`
	Score       ScoreConfig       `yaml:"score"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Terminal    TerminalConfig    `yaml:"terminal"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// WindowConfig defines the initial physical viewport.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// SimulationConfig defines the fixed-timestep scheduler.
type SimulationConfig struct {
	TickRate         int `yaml:"tick_rate"`           // Fixed ticks per second
	MaxTicksPerFrame int `yaml:"max_ticks_per_frame"` // Cap on catch-up ticks
}

// PebbleConfig defines the player actor.
type PebbleConfig struct {
	Width        float32 `yaml:"width"`
	Height       float32 `yaml:"height"`
	StartYMin    float32 `yaml:"start_y_min"`
	StartYMax    float32 `yaml:"start_y_max"`
	JumpVelocity float32 `yaml:"jump_velocity"` // Upward impulse v0
}

// PhysicsConfig defines world physics.
type PhysicsConfig struct {
	Gravity float32 `yaml:"gravity"` // Constant vertical acceleration, negative is down
}

// MoaiConfig defines obstacle pair geometry and scheduling.
type MoaiConfig struct {
	Width             float32 `yaml:"width"`
	Height            float32 `yaml:"height"`
	HorizontalSpacing float32 `yaml:"horizontal_spacing"`
	VerticalGap       float32 `yaml:"vertical_gap"`
	GapMin            float32 `yaml:"gap_min"` // Lowest gap center height
	GapMax            float32 `yaml:"gap_max"` // Highest gap center height
	MoveSpeed         float32 `yaml:"move_speed"`
}

// HalfWidth returns half of the obstacle width.
func (m MoaiConfig) HalfWidth() float32 {
	return m.Width / 2
}

// LatchMode selects when a run is considered a new best.
type LatchMode string

const (
	// LatchOnIncrement latches as soon as the current score exceeds the best.
	LatchOnIncrement LatchMode = "increment"
	// LatchOnRunEnd only compares scores when the run ends.
	LatchOnRunEnd LatchMode = "run_end"
)

// ScoreConfig defines score tracking behavior.
type ScoreConfig struct {
	Latch LatchMode `yaml:"latch"`
}

// PersistenceConfig selects and configures the best-score backend.
type PersistenceConfig struct {
	Backend string `yaml:"backend"`  // "file", "gdata" or "sqlite"
	Path    string `yaml:"path"`     // Record file for the file backend
	AppName string `yaml:"app_name"` // Namespace for the gdata backend
	DBPath  string `yaml:"db_path"`  // Database for the sqlite backend
}

// TerminalConfig maps terminal cells to physical viewport units.
type TerminalConfig struct {
	CellWidth  float32 `yaml:"cell_width"`
	CellHeight float32 `yaml:"cell_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to move speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	switch preset {
	case "":
		return nil
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	default:
		return fmt.Errorf("config: unknown difficulty preset %q", preset)
	}
	return nil
}

// Validate checks that the configuration describes a playable world.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}

	positive("window.width", c.Window.Width)
	positive("window.height", c.Window.Height)
	positive("pebble.width", c.Pebble.Width)
	positive("pebble.height", c.Pebble.Height)
	positive("moai.width", c.Moai.Width)
	positive("moai.height", c.Moai.Height)
	positive("moai.horizontal_spacing", c.Moai.HorizontalSpacing)
	positive("moai.vertical_gap", c.Moai.VerticalGap)
	positive("moai.move_speed", c.Moai.MoveSpeed)
	positive("terminal.cell_width", c.Terminal.CellWidth)
	positive("terminal.cell_height", c.Terminal.CellHeight)

	if c.Simulation.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tick_rate must be positive, got %d", c.Simulation.TickRate))
	}
	if c.Simulation.MaxTicksPerFrame <= 0 {
		errs = append(errs, fmt.Errorf("simulation.max_ticks_per_frame must be positive, got %d", c.Simulation.MaxTicksPerFrame))
	}
	if c.Pebble.StartYMin >= c.Pebble.StartYMax {
		errs = append(errs, fmt.Errorf("pebble start range [%g, %g) is empty", c.Pebble.StartYMin, c.Pebble.StartYMax))
	}
	if c.Moai.GapMin >= c.Moai.GapMax {
		errs = append(errs, fmt.Errorf("moai gap range [%g, %g) is empty", c.Moai.GapMin, c.Moai.GapMax))
	}
	switch c.Score.Latch {
	case LatchOnIncrement, LatchOnRunEnd:
	default:
		errs = append(errs, fmt.Errorf("score.latch must be %q or %q, got %q", LatchOnIncrement, LatchOnRunEnd, c.Score.Latch))
	}
	if c.Persistence.Backend == "" {
		errs = append(errs, errors.New("persistence.backend must be set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
