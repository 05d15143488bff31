package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Terminal glyphs
const (
	ShipChar       = 'A'
	ProjectileChar = '|'
	ObstacleChar   = 'O'
)

// hudRows is the number of rows above the play field reserved for the HUD.
const hudRows = 1

// Render projects the logical play field onto the character screen.
// Row 0 holds the HUD; the remaining rows are the play field scaled to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}
	RenderSnapshot(dst, g.state.Snapshot())
}

// RenderSnapshot draws snap into dst. Positions outside the field are clipped.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	for _, p := range snap.Obstacles {
		if x, y, ok := project(dst, snap, p); ok {
			dst.SetColored(x, y, ObstacleChar, core.ColorWhite)
		}
	}
	for _, p := range snap.Projectiles {
		if x, y, ok := project(dst, snap, p); ok {
			dst.SetColored(x, y, ProjectileChar, core.ColorBrightGreen)
		}
	}
	if x, y, ok := project(dst, snap, snap.Ship); ok {
		dst.SetColored(x, y, ShipChar, core.ColorBrightWhite)
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightYellow)
	dst.DrawTextColored(14, 0, fmt.Sprintf("X: %.2f, Y: %.2f", snap.Ship.X, snap.Ship.Y), core.ColorGray)

	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to play again", snap.Score))
	}
}

// project maps a logical position to a screen cell below the HUD.
// ok is false when the position falls outside the visible field.
func project(dst *core.Screen, snap Snapshot, p core.Vector2) (x, y int, ok bool) {
	if snap.FieldW <= 0 || snap.FieldH <= 0 {
		return 0, 0, false
	}
	cols := float64(dst.Width())
	rows := float64(dst.Height() - hudRows)
	fx := math.Floor(p.X / snap.FieldW * cols)
	fy := math.Floor(p.Y / snap.FieldH * rows)
	if fx < 0 || fx >= cols || fy < 0 || fy >= rows {
		return 0, 0, false
	}
	return int(fx), int(fy) + hudRows, true
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
