package core

// RuntimeConfig contains frontend parameters that are decided at launch
// rather than read from the game configuration file.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in frontend units (cells or pixels)
	ScreenH   int   // Screen height in frontend units
	FrameRate int   // Presentation frames per second; the simulation keeps its own tick rate
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}
