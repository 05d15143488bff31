package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Obstacle spawn parameters.
const (
	SpawnChance   = 0.02 // Per-tick probability of a new obstacle
	ObstacleMinVX = -2.0
	ObstacleMaxVX = 2.0
	ObstacleMinVY = 1.0
	ObstacleMaxVY = 3.0
)

// RandSource is the random number generator the spawner draws from.
// *math/rand.Rand satisfies it.
type RandSource interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// Spawner decides once per tick whether a new obstacle enters the play field.
// It owns its random source; the source is never re-seeded between calls.
type Spawner struct {
	rng    RandSource
	chance float64
	fieldW float64
}

// NewSpawner creates a spawner for a play field of the given width.
func NewSpawner(rng RandSource, fieldW float64) *Spawner {
	return &Spawner{
		rng:    rng,
		chance: SpawnChance,
		fieldW: fieldW,
	}
}

// Chance returns the per-tick spawn probability.
func (sp *Spawner) Chance() float64 {
	return sp.chance
}

// Spawn runs one Bernoulli trial and appends a new obstacle to dst on success.
// The obstacle starts on the top edge at a uniformly random column.
func (sp *Spawner) Spawn(dst []Obstacle) []Obstacle {
	if sp.rng.Float64() >= sp.chance {
		return dst
	}

	pos := core.Vec(sp.uniform(0, sp.fieldW), 0)
	vel := core.Vec(
		sp.uniform(ObstacleMinVX, ObstacleMaxVX),
		sp.uniform(ObstacleMinVY, ObstacleMaxVY),
	)
	return append(dst, NewObstacle(pos, vel))
}

// uniform returns a value in [lo, hi).
func (sp *Spawner) uniform(lo, hi float64) float64 {
	return lo + sp.rng.Float64()*(hi-lo)
}
