package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal.

Controls:
  W/K/Up     - Move up
  S/J/Down   - Move down
  A/H/Left   - Move left
  D/L/Right  - Move right
  Space      - Fire
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot to ~/.shooter/screenshots
  Q/Ctrl+C   - Quit

Examples:
  shooter play
  shooter play --seed 42
  shooter play --log-file shooter.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	settings, logger, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := settings.RuntimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// The terminal program owns stderr while running, so only a log file sees play events.
	hostLogger := logger
	if settings.Log.File == "" {
		hostLogger = log.New(io.Discard)
	}

	if err := tui.Run(shooter.New(), cfg, hostLogger); err != nil {
		logger.Error("terminal host failed", "err", err)
		return fmt.Errorf("run game: %w", err)
	}
	logger.Debug("terminal host exited")
	return nil
}
