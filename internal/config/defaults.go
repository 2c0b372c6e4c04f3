package config

import (
	_ "embed"
)

//go:embed defaults/pebble.yaml
var defaultPebbleYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It matches defaults/pebble.yaml and is used if the embedded file is unusable.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Flappy Pebble :D",
			Width:  3072,
			Height: 1024,
		},
		Simulation: SimulationConfig{
			TickRate:         60,
			MaxTicksPerFrame: 8,
		},
		Pebble: PebbleConfig{
			Width:        90,
			Height:       52,
			StartYMin:    -300,
			StartYMax:    300,
			JumpVelocity: 400,
		},
		Physics: PhysicsConfig{
			Gravity: -400,
		},
		Moai: MoaiConfig{
			Width:             100,
			Height:            1345,
			HorizontalSpacing: 800,
			VerticalGap:       300,
			GapMin:            -200,
			GapMax:            200,
			MoveSpeed:         200,
		},
		Score: ScoreConfig{
			Latch: LatchOnIncrement,
		},
		Persistence: PersistenceConfig{
			Backend: "file",
			Path:    "~/.pebble/best_score",
			AppName: "flappy-pebble",
			DBPath:  "~/.pebble/pebble.db",
		},
		Terminal: TerminalConfig{
			CellWidth:  16,
			CellHeight: 32,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPebbleYAML
}
