package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Snapshot is a read-only copy of everything a host needs to draw a frame.
// It shares no memory with the GameState it was taken from.
type Snapshot struct {
	Tick        int
	FieldW      float64
	FieldH      float64
	Ship        core.Vector2
	Projectiles []core.Vector2
	Obstacles   []core.Vector2
	Score       int
	GameOver    bool
}

// Snapshot returns the current state for rendering.
func (s *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.Ticks,
		FieldW:      s.fieldW,
		FieldH:      s.fieldH,
		Ship:        s.Ship.Position,
		Projectiles: make([]core.Vector2, len(s.Projectiles)),
		Obstacles:   make([]core.Vector2, len(s.Obstacles)),
		Score:       s.Score,
		GameOver:    s.IsOver(),
	}
	for i, p := range s.Projectiles {
		snap.Projectiles[i] = p.Position
	}
	for i, o := range s.Obstacles {
		snap.Obstacles[i] = o.Position
	}
	return snap
}
