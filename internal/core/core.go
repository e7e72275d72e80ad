// Package core provides the platform-facing primitives the engine and the
// terminal presentation share: the screen cell buffer, abstract input
// actions, and the runtime configuration handed to a session at start.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// RuntimeConfig contains configuration passed to a session at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic serve angles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means the platform layer substitutes the clock
	}
}
