// Package tui provides the Bubble Tea host for the shooter.
// It handles the terminal loop, key bindings and screen rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fpsMeter tracks an exponentially smoothed frame rate from tick timestamps.
type fpsMeter struct {
	last time.Time
	fps  float64
}

// observe records a tick at t and returns the updated estimate.
func (f *fpsMeter) observe(t time.Time) float64 {
	if !f.last.IsZero() {
		if dt := t.Sub(f.last).Seconds(); dt > 0 {
			instant := 1 / dt
			if f.fps == 0 {
				f.fps = instant
			} else {
				f.fps = 0.9*f.fps + 0.1*instant
			}
		}
	}
	f.last = t
	return f.fps
}
