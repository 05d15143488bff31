// Package config provides YAML-based settings loading for the shooter hosts.
// Settings cover the play field, timing, logging and the window; gameplay
// tuning is fixed in the game package.
package config

import "github.com/vovakirdan/tui-shooter/internal/core"

// Settings contains all host configuration.
type Settings struct {
	Field   FieldSettings   `yaml:"field"`
	Runtime RuntimeSettings `yaml:"runtime"`
	Log     LogSettings     `yaml:"log"`
	Window  WindowSettings  `yaml:"window"`
}

// FieldSettings defines the logical play-field size.
type FieldSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RuntimeSettings defines simulation timing.
type RuntimeSettings struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"` // 0 = seed from the clock
}

// LogSettings defines logger output.
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// WindowSettings defines the graphical window.
type WindowSettings struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

// RuntimeConfig converts the settings into the config passed to games.
// Screen dimensions are filled in by the terminal host.
func (s Settings) RuntimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.FieldW = s.Field.Width
	cfg.FieldH = s.Field.Height
	cfg.TickRate = s.Runtime.TickRate
	cfg.Seed = s.Runtime.Seed
	return cfg
}
