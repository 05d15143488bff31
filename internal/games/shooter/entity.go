// Package shooter implements a top-down arcade shooter: the player steers a
// ship, fires projectiles upward and dodges obstacles that fall from the top
// of the play field. A collision between the ship and an obstacle ends the round.
package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Gameplay constants. Distances and speeds are in logical units per tick.
const (
	ShipSpawnX      = 100.0
	ShipSpawnY      = 100.0
	ShipSpeed       = 4.0
	ProjectileSpeed = 5.0  // Projectiles travel straight up
	CollideDist     = 22.0 // Sum of the approximate entity radii
)

// Body is the kinematic state shared by every entity kind.
type Body struct {
	Position core.Vector2
	Velocity core.Vector2
}

// Advance moves the body by one tick of its velocity.
func (b *Body) Advance() {
	b.Position = b.Position.Add(b.Velocity)
}

// Ship is the player-controlled entity.
type Ship struct {
	Body
}

// NewShip returns a motionless ship at the spawn point.
func NewShip() Ship {
	return Ship{Body{Position: core.Vec(ShipSpawnX, ShipSpawnY)}}
}

// Steer replaces the ship velocity with the directional input of this tick.
// Each axis is set independently, so diagonals are not normalized. When both
// directions of an axis are held the later assignment wins (down, right).
func (s *Ship) Steer(in core.InputFrame) {
	var v core.Vector2
	if in.Has(core.ActionUp) {
		v.Y = -ShipSpeed
	}
	if in.Has(core.ActionDown) {
		v.Y = ShipSpeed
	}
	if in.Has(core.ActionLeft) {
		v.X = -ShipSpeed
	}
	if in.Has(core.ActionRight) {
		v.X = ShipSpeed
	}
	s.Velocity = v
}

// Projectile is a shot fired by the ship.
type Projectile struct {
	Body
}

// NewProjectile creates a projectile at pos moving straight up.
func NewProjectile(pos core.Vector2) Projectile {
	return Projectile{Body{Position: pos, Velocity: core.Vec(0, -ProjectileSpeed)}}
}

// Obstacle is a hazard falling through the play field.
type Obstacle struct {
	Body
}

// NewObstacle creates an obstacle with the given position and velocity.
func NewObstacle(pos, vel core.Vector2) Obstacle {
	return Obstacle{Body{Position: pos, Velocity: vel}}
}
