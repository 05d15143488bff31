package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Field: FieldSettings{
			Width:  800,
			Height: 800,
		},
		Runtime: RuntimeSettings{
			TickRate: 60,
			Seed:     0,
		},
		Log: LogSettings{
			Level: "info",
		},
		Window: WindowSettings{
			Title: "Asteroid Shooter",
			Scale: 1.0,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
