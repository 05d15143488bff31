package shooter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestCollides(t *testing.T) {
	c := NewCollisionSystem()

	tests := []struct {
		name     string
		a, b     core.Vector2
		expected bool
	}{
		{"same point", core.Vec(100, 100), core.Vec(100, 100), true},
		{"just inside", core.Vec(0, 0), core.Vec(21.99, 0), true},
		{"exactly at threshold", core.Vec(0, 0), core.Vec(22, 0), false},
		{"far apart", core.Vec(0, 0), core.Vec(100, 100), false},
		{"diagonal inside", core.Vec(0, 0), core.Vec(15, 15), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Collides(tc.a, tc.b))
		})
	}
}

func TestShipHit(t *testing.T) {
	c := NewCollisionSystem()
	ship := NewShip()

	assert.False(t, c.ShipHit(ship, nil))
	assert.False(t, c.ShipHit(ship, []Obstacle{
		NewObstacle(core.Vec(122, 100), core.Vec(0, 0)),
	}))
	assert.True(t, c.ShipHit(ship, []Obstacle{
		NewObstacle(core.Vec(500, 500), core.Vec(0, 0)),
		NewObstacle(core.Vec(110, 110), core.Vec(0, 0)),
	}))
}

func TestShotsSinglePair(t *testing.T) {
	c := NewCollisionSystem()
	var m Marks

	projectiles := []Projectile{{Body{Position: core.Vec(50, 50)}}}
	obstacles := []Obstacle{NewObstacle(core.Vec(50, 51), core.Vec(0, 0))}

	hits := c.Shots(projectiles, obstacles, &m)

	assert.Equal(t, 1, hits)
	assert.Equal(t, []bool{true}, m.Projectiles)
	assert.Equal(t, []bool{true}, m.Obstacles)
}

func TestShotsMatchPolicy(t *testing.T) {
	c := NewCollisionSystem()

	tests := []struct {
		name         string
		projectiles  []core.Vector2
		obstacles    []core.Vector2
		hits         int
		deadProj     []bool
		deadObstacle []bool
	}{
		{
			name:         "projectile in range of two obstacles scores once",
			projectiles:  []core.Vector2{core.Vec(100, 100)},
			obstacles:    []core.Vector2{core.Vec(100, 110), core.Vec(100, 90)},
			hits:         1,
			deadProj:     []bool{true},
			deadObstacle: []bool{true, false},
		},
		{
			name:         "two projectiles on one obstacle score once",
			projectiles:  []core.Vector2{core.Vec(100, 100), core.Vec(100, 105)},
			obstacles:    []core.Vector2{core.Vec(100, 110)},
			hits:         1,
			deadProj:     []bool{true, false},
			deadObstacle: []bool{true},
		},
		{
			name:         "second projectile takes the remaining obstacle",
			projectiles:  []core.Vector2{core.Vec(100, 100), core.Vec(100, 101)},
			obstacles:    []core.Vector2{core.Vec(100, 110), core.Vec(100, 90)},
			hits:         2,
			deadProj:     []bool{true, true},
			deadObstacle: []bool{true, true},
		},
		{
			name:         "no match",
			projectiles:  []core.Vector2{core.Vec(0, 10)},
			obstacles:    []core.Vector2{core.Vec(400, 400)},
			hits:         0,
			deadProj:     []bool{false},
			deadObstacle: []bool{false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			projectiles := make([]Projectile, len(tc.projectiles))
			for i, p := range tc.projectiles {
				projectiles[i] = NewProjectile(p)
			}
			obstacles := make([]Obstacle, len(tc.obstacles))
			for i, o := range tc.obstacles {
				obstacles[i] = NewObstacle(o, core.Vec(0, 1))
			}

			var m Marks
			assert.Equal(t, tc.hits, c.Shots(projectiles, obstacles, &m))
			assert.Equal(t, tc.deadProj, m.Projectiles)
			assert.Equal(t, tc.deadObstacle, m.Obstacles)
		})
	}
}

func TestMarksReuse(t *testing.T) {
	c := NewCollisionSystem()
	var m Marks

	c.Shots(
		[]Projectile{NewProjectile(core.Vec(0, 10)), NewProjectile(core.Vec(50, 50))},
		[]Obstacle{NewObstacle(core.Vec(50, 51), core.Vec(0, 0))},
		&m,
	)
	assert.Equal(t, []bool{false, true}, m.Projectiles)

	// A later pass must not see stale marks
	c.Shots([]Projectile{NewProjectile(core.Vec(0, 10))}, nil, &m)
	assert.Equal(t, []bool{false}, m.Projectiles)
	assert.Empty(t, m.Obstacles)
}
