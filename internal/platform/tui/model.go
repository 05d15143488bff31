package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// footerRows is the number of terminal rows reserved for the key help line.
const footerRows = 1

// Model is the Bubble Tea model for running the shooter.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	fps        *fpsMeter
	roundID    string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all log output.
func NewModel(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerRows),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		fps:        &fpsMeter{},
		roundID:    uuid.NewString(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("round started", "round", m.roundID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "round", m.roundID, "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// Only the terminal projection changes; the simulation keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.fps.observe(now)

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case !prev.GameOver && m.gameState.GameOver:
		m.logger.Info("round over", "round", m.roundID, "score", m.gameState.Score)
	case prev.GameOver && !m.gameState.GameOver:
		m.roundID = uuid.NewString()
		m.logger.Info("round started", "round", m.roundID, "restart", true)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".shooter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawFPS()

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// drawFPS writes the measured frame rate into the right end of the HUD row.
func (m Model) drawFPS() {
	label := fmt.Sprintf("FPS: %.0f", m.fps.fps)
	x := m.screen.Width() - len(label) - 1
	if x < 0 {
		return
	}
	m.screen.DrawTextColored(x, 0, label, core.ColorGray)
}

// GameState returns the state observed after the most recent tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// RoundID returns the identifier used to tag log entries for the current round.
func (m Model) RoundID() string {
	return m.roundID
}

// Run starts the Bubble Tea program with the given game.
func Run(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
