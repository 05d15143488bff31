package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Phase is the lifecycle state of a round.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState owns every entity of a round together with the score and phase.
// No entity is referenced outside of it; hosts read Snapshot instead.
type GameState struct {
	Ship        Ship
	Score       int
	Projectiles []Projectile
	Obstacles   []Obstacle
	Phase       Phase
	Ticks       int // Ticks simulated in the current round

	fieldW, fieldH float64
	spawner        *Spawner
	collisions     CollisionSystem
	marks          Marks
}

// NewGameState creates a fresh round on a fieldW x fieldH play field.
// The spawner draws from rng for the lifetime of the state.
func NewGameState(fieldW, fieldH float64, rng RandSource) *GameState {
	s := &GameState{
		fieldW:     fieldW,
		fieldH:     fieldH,
		spawner:    NewSpawner(rng, fieldW),
		collisions: NewCollisionSystem(),
	}
	s.Reset()
	return s
}

// Reset reinitializes every round field. The random source is kept.
func (s *GameState) Reset() {
	s.Ship = NewShip()
	s.Score = 0
	s.Projectiles = s.Projectiles[:0]
	s.Obstacles = s.Obstacles[:0]
	s.Phase = PhasePlaying
	s.Ticks = 0
}

// IsOver reports whether the round has ended.
func (s *GameState) IsOver() bool {
	return s.Phase == PhaseGameOver
}

// FieldSize returns the play-field dimensions.
func (s *GameState) FieldSize() (w, h float64) {
	return s.fieldW, s.fieldH
}

// InField reports whether p lies inside the half-open play field.
func (s *GameState) InField(p core.Vector2) bool {
	return p.X >= 0 && p.X < s.fieldW && p.Y >= 0 && p.Y < s.fieldH
}

// Tick advances the simulation by one frame.
//
// While game over only the restart action is honored. While playing, the
// ship-obstacle check runs first against the positions of the previous tick;
// a hit ends the round and nothing else happens this tick.
func (s *GameState) Tick(in core.InputFrame) {
	if s.Phase == PhaseGameOver {
		if in.Has(core.ActionRestart) {
			s.Reset()
		}
		return
	}

	s.Ticks++

	if s.collisions.ShipHit(s.Ship, s.Obstacles) {
		s.Phase = PhaseGameOver
		return
	}

	s.Ship.Steer(in)
	if in.Has(core.ActionFire) {
		s.Projectiles = append(s.Projectiles, NewProjectile(s.Ship.Position))
	}
	s.Ship.Advance()

	for i := range s.Projectiles {
		s.Projectiles[i].Advance()
	}
	s.Projectiles = compact(s.Projectiles, func(_ int, p Projectile) bool {
		return p.Position.Y > 0
	})

	// Obstacles can only be outside the field here if they were placed there
	// directly; drop them before they get a chance to move back in.
	s.Obstacles = compact(s.Obstacles, func(_ int, o Obstacle) bool {
		return s.InField(o.Position)
	})
	s.Obstacles = s.spawner.Spawn(s.Obstacles)
	for i := range s.Obstacles {
		s.Obstacles[i].Advance()
	}

	s.Score += s.collisions.Shots(s.Projectiles, s.Obstacles, &s.marks)

	s.Projectiles = compact(s.Projectiles, func(i int, p Projectile) bool {
		return !s.marks.Projectiles[i] && p.Position.Y > 0
	})
	s.Obstacles = compact(s.Obstacles, func(i int, o Obstacle) bool {
		return !s.marks.Obstacles[i] && s.InField(o.Position)
	})
}

// compact filters items in place, keeping those for which keep returns true.
// keep receives the index the item had before compaction.
func compact[T any](items []T, keep func(i int, item T) bool) []T {
	kept := items[:0]
	for i, item := range items {
		if keep(i, item) {
			kept = append(kept, item)
		}
	}
	return kept
}
