package core

// Default play-field size in logical units.
const (
	DefaultFieldWidth  = 800.0
	DefaultFieldHeight = 800.0
)

// RuntimeConfig contains configuration passed to games at initialization.
// The logical play field is independent of the host's screen size.
type RuntimeConfig struct {
	FieldW   float64 // Play-field width in logical units
	FieldH   float64 // Play-field height in logical units
	ScreenW  int     // Terminal width in characters (terminal host only)
	ScreenH  int     // Terminal height in characters (terminal host only)
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   DefaultFieldWidth,
		FieldH:   DefaultFieldHeight,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the host.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the interface a host drives once per frame.
// Games contain pure logic; the host handles input mapping, timing and display.
type Game interface {
	// ID returns a short identifier used in logs and CLI output.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
