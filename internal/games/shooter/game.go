package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Game adapts GameState to the core.Game interface driven by the hosts.
type Game struct {
	state   *GameState
	runtime core.RuntimeConfig
}

// Ensure Game implements core.Game
var _ core.Game = (*Game)(nil)

// New creates a new shooter game instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroid Shooter"
}

// Reset starts a new round with a generator seeded from the runtime config.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.FieldW <= 0 {
		runtime.FieldW = core.DefaultFieldWidth
	}
	if runtime.FieldH <= 0 {
		runtime.FieldH = core.DefaultFieldHeight
	}
	g.runtime = runtime
	g.state = NewGameState(runtime.FieldW, runtime.FieldH, rand.New(rand.NewSource(runtime.Seed)))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.state.Tick(in)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.IsOver(),
	}
}

// Snapshot returns a read-only copy of the round for graphical hosts.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Sim exposes the underlying simulation state.
func (g *Game) Sim() *GameState {
	return g.state
}
