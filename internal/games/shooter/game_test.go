package shooter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestGameResetDefaultsField(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})

	w, h := g.Sim().FieldSize()
	assert.Equal(t, core.DefaultFieldWidth, w)
	assert.Equal(t, core.DefaultFieldHeight, h)
	assert.Equal(t, core.GameState{}, g.State())
}

func TestGameCustomField(t *testing.T) {
	g := New()
	cfg := testRuntime(1)
	cfg.FieldW, cfg.FieldH = 640, 480
	g.Reset(cfg)

	snap := g.Snapshot()
	assert.Equal(t, 640.0, snap.FieldW)
	assert.Equal(t, 480.0, snap.FieldH)
}

func TestGameDeterminism(t *testing.T) {
	play := func() (core.GameState, Snapshot) {
		g := New()
		g.Reset(testRuntime(2024))
		var state core.GameState
		for tick := range 2000 {
			state = g.Step(scriptedInput(tick)).State
			if state.GameOver {
				break
			}
		}
		return state, g.Snapshot()
	}

	state1, snap1 := play()
	state2, snap2 := play()
	assert.Equal(t, state1, state2)
	assert.Equal(t, snap1, snap2)
}

func TestGameStepReportsGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Sim().Obstacles = []Obstacle{NewObstacle(core.Vec(100, 100), core.Vec(0, 0))}

	result := g.Step(core.NewInputFrame())
	assert.True(t, result.State.GameOver)

	result = g.Step(core.FrameOf(core.ActionRestart))
	assert.False(t, result.State.GameOver)
	assert.Zero(t, result.State.Score)
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	sim := g.Sim()
	sim.Projectiles = []Projectile{NewProjectile(core.Vec(400, 400))}
	sim.Obstacles = []Obstacle{NewObstacle(core.Vec(790, 10), core.Vec(0, 1))}

	screen := core.NewScreen(80, 25)
	g.Render(screen)

	// 24 field rows below the HUD: y=100 maps to row 3, drawn at 4
	assert.Equal(t, ShipChar, screen.Get(10, 4))
	assert.Equal(t, core.ColorBrightWhite, screen.GetCell(10, 4).Color)
	assert.Equal(t, ProjectileChar, screen.Get(40, 13))
	assert.Equal(t, ObstacleChar, screen.Get(79, 1))
	assert.True(t, strings.HasPrefix(screen.Row(0), " Score: 0"))
	assert.Contains(t, screen.Row(0), "X: 100.00, Y: 100.00")
}

func TestGameRenderClipsOutsideField(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Sim().Ship.Position = core.Vec(-50, -50)

	screen := core.NewScreen(80, 25)
	g.Render(screen)

	assert.NotContains(t, screen.String(), string(ShipChar))
}

func TestGameRenderGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Sim().Obstacles = []Obstacle{NewObstacle(core.Vec(100, 100), core.Vec(0, 0))}
	g.Step(core.NewInputFrame())
	require.True(t, g.State().GameOver)

	screen := core.NewScreen(80, 25)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Press R to play again")
}

func TestGameRenderBeforeReset(t *testing.T) {
	g := New()
	screen := core.NewScreen(10, 3)
	screen.Set(0, 0, 'X')

	g.Render(screen)

	assert.Equal(t, strings.Repeat(" ", 10), screen.Row(0))
}
