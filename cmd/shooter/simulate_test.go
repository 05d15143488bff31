package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

func simConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestScriptFrame(t *testing.T) {
	s := script{fireEvery: 3, strafe: true}

	tests := []struct {
		tick  int
		fire  bool
		right bool
	}{
		{0, true, true},
		{1, false, true},
		{3, true, true},
		{49, false, true},
		{50, false, false},
		{99, true, false},
		{100, false, true},
	}

	for _, tt := range tests {
		frame := s.frame(tt.tick)
		assert.Equal(t, tt.fire, frame.Has(core.ActionFire), "fire at tick %d", tt.tick)
		assert.Equal(t, tt.right, frame.Has(core.ActionRight), "right at tick %d", tt.tick)
		assert.Equal(t, !tt.right, frame.Has(core.ActionLeft), "left at tick %d", tt.tick)
	}
}

func TestScriptIdle(t *testing.T) {
	frame := script{}.frame(0)

	for _, a := range []core.Action{core.ActionFire, core.ActionLeft, core.ActionRight} {
		assert.False(t, frame.Has(a))
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	s := script{fireEvery: 5, strafe: true}

	a := simulate(shooter.New(), simConfig(42), 2000, s)
	b := simulate(shooter.New(), simConfig(42), 2000, s)

	assert.Equal(t, a, b)
	assert.LessOrEqual(t, a.Tick, 2000)
	assert.Positive(t, a.Tick)
}

func TestSimulateZeroTicks(t *testing.T) {
	snap := simulate(shooter.New(), simConfig(1), 0, script{})

	assert.Zero(t, snap.Tick)
	assert.Equal(t, core.Vec(shooter.ShipSpawnX, shooter.ShipSpawnY), snap.Ship)
	assert.False(t, snap.GameOver)
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	snap := shooter.Snapshot{Tick: 12, Score: 3, Ship: core.Vec(1, 2), GameOver: true}

	printSummary(&buf, 42, snap)

	out := buf.String()
	assert.Contains(t, out, "seed:        42")
	assert.Contains(t, out, "ticks:       12")
	assert.Contains(t, out, "score:       3")
	assert.Contains(t, out, "ship:        1.00, 2.00")
	assert.Contains(t, out, "game over:   true")
}

func TestNewLogger(t *testing.T) {
	t.Run("fallback writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closer, err := newLogger(config.LogSettings{Level: "warn"}, &buf)
		require.NoError(t, err)
		defer closer.Close()

		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shooter.log")
		logger, closer, err := newLogger(config.LogSettings{Level: "info", File: path}, nil)
		require.NoError(t, err)

		logger.Info("round started", "round", "abc")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "round started")
	})

	t.Run("bad level", func(t *testing.T) {
		_, _, err := newLogger(config.LogSettings{Level: "loud"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}
