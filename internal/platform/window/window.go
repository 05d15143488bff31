// Package window provides the Ebiten desktop host for the shooter.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

const (
	obstacleRadius   = 20
	projectileWidth  = 2
	projectileHeight = 10
	shipStroke       = 1
)

var (
	projectileColor = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	obstacleColor   = color.White
	shipColor       = color.White
)

// shipOutline is the ship polygon relative to its position, drawn as a closed loop.
var shipOutline = []core.Vector2{
	{X: 0, Y: -10},
	{X: 5, Y: 5},
	{X: 0, Y: 0},
	{X: -5, Y: 5},
}

// keyBindings lists the keys polled for each action every frame.
var keyBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyK, ebiten.KeyArrowUp}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyJ, ebiten.KeyArrowDown}},
	{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyH, ebiten.KeyArrowLeft}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyL, ebiten.KeyArrowRight}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
}

// Options configures the desktop window.
type Options struct {
	Title string
	Scale float64
}

// Host implements ebiten.Game, which has Update, Draw and Layout methods.
type Host struct {
	// game is the simulation being driven.
	game *shooter.Game
	// runtime holds the play-field size and tick rate.
	runtime core.RuntimeConfig
	// logger receives round lifecycle events.
	logger *log.Logger
	// frame is reused between updates.
	frame core.InputFrame
	// state is the game state after the most recent update.
	state core.GameState
	// roundID tags log entries for the current round.
	roundID string
}

// NewHost creates a host around game and resets it with runtime.
func NewHost(game *shooter.Game, runtime core.RuntimeConfig, logger *log.Logger) *Host {
	game.Reset(runtime)
	h := &Host{
		game:    game,
		runtime: runtime,
		logger:  logger,
		frame:   core.NewInputFrame(),
		roundID: uuid.NewString(),
	}
	h.logger.Info("round started", "round", h.roundID, "seed", runtime.Seed)
	return h
}

// readInput fills frame with the actions whose keys are held, as reported by isDown.
func readInput(frame core.InputFrame, isDown func(ebiten.Key) bool) {
	frame.Clear()
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if isDown(k) {
				frame.Set(b.action)
				break
			}
		}
	}
}

// Update advances the simulation by one tick.
func (h *Host) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		h.logger.Info("quit", "round", h.roundID, "score", h.state.Score)
		return ebiten.Termination
	}

	readInput(h.frame, ebiten.IsKeyPressed)

	prev := h.state
	h.state = h.game.Step(h.frame).State

	switch {
	case !prev.GameOver && h.state.GameOver:
		h.logger.Info("round over", "round", h.roundID, "score", h.state.Score, "ticks", h.game.Snapshot().Tick)
	case prev.GameOver && !h.state.GameOver:
		h.roundID = uuid.NewString()
		h.logger.Info("round started", "round", h.roundID, "restart", true)
	}
	return nil
}

// Draw renders the current snapshot.
func (h *Host) Draw(screen *ebiten.Image) {
	snap := h.game.Snapshot()

	for _, p := range snap.Obstacles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), obstacleRadius, obstacleColor, true)
	}
	for _, p := range snap.Projectiles {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), projectileWidth, projectileHeight, projectileColor, false)
	}
	drawShip(screen, snap.Ship)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualTPS()), 10, 30)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("X: %.2f, Y: %.2f", snap.Ship.X, snap.Ship.Y), 10, 50)

	if snap.GameOver {
		ebitenutil.DebugPrintAt(screen, "Game Over - Press R to play again", 300, 240)
	}
}

func drawShip(screen *ebiten.Image, pos core.Vector2) {
	for i, a := range shipOutline {
		b := shipOutline[(i+1)%len(shipOutline)]
		vector.StrokeLine(screen,
			float32(pos.X+a.X), float32(pos.Y+a.Y),
			float32(pos.X+b.X), float32(pos.Y+b.Y),
			shipStroke, shipColor, true)
	}
}

// Layout returns the logical play-field size; Ebiten scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return int(h.runtime.FieldW), int(h.runtime.FieldH)
}

// Run opens the window and blocks until it is closed or Esc is pressed.
func Run(game *shooter.Game, runtime core.RuntimeConfig, opts Options, logger *log.Logger) error {
	if runtime.FieldW <= 0 {
		runtime.FieldW = core.DefaultFieldWidth
	}
	if runtime.FieldH <= 0 {
		runtime.FieldH = core.DefaultFieldHeight
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(runtime.FieldW*scale), int(runtime.FieldH*scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(runtime.TickRate)

	host := NewHost(game, runtime, logger)
	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
