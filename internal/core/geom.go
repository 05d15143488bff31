// Package core provides fundamental types and utilities shared by the game
// simulation and its hosts. It has no external dependencies (especially no
// Bubble Tea or Ebiten) so game logic stays pure and testable.
package core

import "math"

// Vector2 is a 2D point or velocity in logical play-field units.
type Vector2 struct {
	X, Y float64
}

// Vec creates a new vector.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vector2) float64 {
	return a.Sub(b).Len()
}

// Rect represents an axis-aligned rectangle of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w by h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}
