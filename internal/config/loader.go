package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where settings were loaded from.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// localSettingsPath is checked relative to the working directory.
const localSettingsPath = "configs/shooter.yaml"

// Load loads settings and reports which source was used.
// Search order: customPath -> ~/.shooter/config.yaml -> ./configs/shooter.yaml -> embedded default.
// Files are decoded on top of DefaultSettings, so omitted keys keep their defaults.
func Load(customPath string) (Settings, string, error) {
	// Custom path must exist and be valid
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Settings{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Settings{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Broken user or local files fall through to the next source
	if userPath := userSettingsPath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	if data, err := os.ReadFile(localSettingsPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	if cfg, err := Parse(defaultSettingsYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultSettings(), SourceBuiltin, nil
}

// Parse decodes YAML settings over the defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// Validate checks that the settings can drive a game.
func (s Settings) Validate() error {
	var errs []error
	if s.Field.Width <= 0 || s.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %gx%g", s.Field.Width, s.Field.Height))
	}
	if s.Runtime.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", s.Runtime.TickRate))
	}
	if s.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window scale must be positive, got %g", s.Window.Scale))
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", s.Log.Level))
	}
	return errors.Join(errs...)
}

// userSettingsPath returns the path to the user settings file, or empty if home is unavailable.
func userSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "config.yaml")
}
