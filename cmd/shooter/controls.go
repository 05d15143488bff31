package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show key bindings",
	Args:  cobra.NoArgs,
	Run:   runControls,
}

func runControls(cmd *cobra.Command, _ []string) {
	h := help.New()
	h.ShowAll = true

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Controls:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, h.View(tui.DefaultKeyMap()))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Arrow keys also move the ship. Esc closes the desktop window.")
}
