package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// CollisionSystem performs proximity checks between entity groups.
// Two entities collide when their distance is strictly below Threshold.
type CollisionSystem struct {
	Threshold float64
}

// NewCollisionSystem returns a collision system using CollideDist.
func NewCollisionSystem() CollisionSystem {
	return CollisionSystem{Threshold: CollideDist}
}

// Collides reports whether two points are within the proximity threshold.
func (c CollisionSystem) Collides(a, b core.Vector2) bool {
	return core.Dist(a, b) < c.Threshold
}

// ShipHit reports whether any obstacle touches the ship.
func (c CollisionSystem) ShipHit(ship Ship, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if c.Collides(ship.Position, o.Position) {
			return true
		}
	}
	return false
}

// Marks records which entities died during a collision pass.
// Indices match the collections passed to Shots.
type Marks struct {
	Projectiles []bool
	Obstacles   []bool
}

// reset sizes the masks for the given collections and clears them.
func (m *Marks) reset(projectiles, obstacles int) {
	m.Projectiles = resize(m.Projectiles, projectiles)
	m.Obstacles = resize(m.Obstacles, obstacles)
}

func resize(mask []bool, n int) []bool {
	if cap(mask) < n {
		return make([]bool, n)
	}
	mask = mask[:n]
	clear(mask)
	return mask
}

// Shots runs the projectile-obstacle pass and returns the number of hits.
// Projectiles form the outer loop and obstacles the inner loop. A live pair
// within range marks both entities dead; dead entities are skipped for the
// rest of the pass, so each projectile and each obstacle scores at most once
// per tick. Nothing is removed here; callers compact using m.
func (c CollisionSystem) Shots(projectiles []Projectile, obstacles []Obstacle, m *Marks) int {
	m.reset(len(projectiles), len(obstacles))

	hits := 0
	for i, p := range projectiles {
		for j, o := range obstacles {
			if m.Obstacles[j] {
				continue
			}
			if c.Collides(p.Position, o.Position) {
				m.Projectiles[i] = true
				m.Obstacles[j] = true
				hits++
				break
			}
		}
	}
	return hits
}
