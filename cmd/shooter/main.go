// shooter is an arcade space shooter that runs in the terminal or in a desktop window.
//
// Usage:
//
//	shooter play        - Play in the terminal
//	shooter window      - Play in a desktop window
//	shooter simulate    - Run a headless, scripted round and print a summary
//	shooter controls    - Show key bindings
//
// Global flags:
//
//	--config <path>      - Settings file (default search: ~/.shooter/config.yaml, ./configs/shooter.yaml)
//	--fps <rate>         - Tick rate
//	--seed <value>       - RNG seed for reproducible gameplay (0 = time based)
//	--width, --height    - Play-field size in logical units
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagWidth    float64
	flagHeight   float64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Asteroid Shooter - dodge and shoot falling obstacles",
	Long: `Asteroid Shooter is a small arcade game: steer the ship, shoot the
obstacles drifting down the field and avoid touching them.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run a headless scripted round
  controls  - Show key bindings

Examples:
  shooter play
  shooter play --seed 42 --fps 30
  shooter window --config ./my-shooter.yaml
  shooter simulate --ticks 5000 --fire-every 10 --strafe`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to settings YAML")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (overrides runtime.tick_rate)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.Float64Var(&flagWidth, "width", 0, "Play-field width (overrides field.width)")
	pf.Float64Var(&flagHeight, "height", 0, "Play-field height (overrides field.height)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(controlsCmd)
}

// loadSettings resolves the settings file and applies any flags the user set.
func loadSettings(cmd *cobra.Command) (config.Settings, string, error) {
	settings, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		settings.Runtime.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		settings.Runtime.Seed = flagSeed
	}
	if flags.Changed("width") {
		settings.Field.Width = flagWidth
	}
	if flags.Changed("height") {
		settings.Field.Height = flagHeight
	}
	if flags.Changed("log-level") {
		settings.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		settings.Log.File = flagLogFile
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, "", fmt.Errorf("invalid settings: %w", err)
	}
	return settings, source, nil
}

// newLogger builds the process logger. The returned closer releases the log file, if any.
func newLogger(s config.LogSettings, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(s.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var (
		w      = fallback
		closer io.Closer = io.NopCloser(nil)
	)
	if s.File != "" {
		f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
		Level:           level,
	})
	return logger, closer, nil
}

// setup loads settings and the logger shared by every command.
func setup(cmd *cobra.Command) (config.Settings, *log.Logger, io.Closer, error) {
	settings, source, err := loadSettings(cmd)
	if err != nil {
		return config.Settings{}, nil, nil, err
	}

	logger, closer, err := newLogger(settings.Log, cmd.ErrOrStderr())
	if err != nil {
		return config.Settings{}, nil, nil, err
	}
	logger.Debug("settings loaded", "source", source)
	return settings, logger, closer, nil
}
