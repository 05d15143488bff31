package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the play field (scaled by window.scale).

Controls are the same as in the terminal, except Esc closes the window.

Examples:
  shooter window
  shooter window --width 600 --height 600`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	settings, logger, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := window.Options{
		Title: settings.Window.Title,
		Scale: settings.Window.Scale,
	}
	if err := window.Run(shooter.New(), settings.RuntimeConfig(), opts, logger); err != nil {
		logger.Error("window host failed", "err", err)
		return fmt.Errorf("run window: %w", err)
	}
	logger.Debug("window host exited")
	return nil
}
