package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pursuit/internal/core"
	"github.com/vovakirdan/pursuit/internal/engine"
	"github.com/vovakirdan/pursuit/internal/input"
)

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// RepeatMsg carries one repeated move from the held-direction repeater.
type RepeatMsg core.Direction

// waitForRepeat blocks until the repeater emits. It returns nil once the
// repeater is closed, which ends the wait loop.
func waitForRepeat(r *input.Repeater) tea.Cmd {
	return func() tea.Msg {
		dir, ok := <-r.C
		if !ok {
			return nil
		}
		return RepeatMsg(dir)
	}
}

// Model is the Bubble Tea model for a pursuit session.
type Model struct {
	game     *engine.Game
	player   string
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     *KeyMapper
	help     help.Model
	repeater *input.Repeater
	renderer *ScreenRenderer
	ticking  bool // A tick is scheduled
	quitting bool
	status   string
}

// NewModel creates a model that starts game for player on Init.
func NewModel(game *engine.Game, player string, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		player:   player,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		keys:     NewKeyMapper(),
		help:     h,
		repeater: input.NewRepeater(input.DefaultPeriod),
		renderer: defaultScreenRenderer,
		ticking:  true,
	}
}

// Init starts the session, the tick loop and the repeat listener.
func (m Model) Init() tea.Cmd {
	m.game.Start(m.player)
	return tea.Batch(tickCmd(m.config.TickRate), waitForRepeat(m.repeater))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case RepeatMsg:
		m.game.Move(core.Direction(msg))
		return m, waitForRepeat(m.repeater)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, dir := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.Close()
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.status = "screenshot failed: " + err.Error()
		} else {
			m.status = "saved " + path
		}
	case core.ActionMove:
		m.game.Move(dir)
	case core.ActionHold:
		m.repeater.Start(dir)
	case core.ActionStop:
		m.repeater.Stop()
	case core.ActionAcknowledge:
		if m.game.Acknowledge() {
			return m.resume()
		}
	case core.ActionRestart:
		if m.game.Restart() {
			m.repeater.Stop()
			m.status = ""
			return m.resume()
		}
	case core.ActionNone:
		if key.Matches(msg, m.keys.Keys().Help) {
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// handleTick processes simulation ticks. Once the session leaves Running no
// further tick is scheduled until resume.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Step() == engine.StateRunning {
		return m, tickCmd(m.config.TickRate)
	}
	m.ticking = false
	m.repeater.Stop()
	return m, nil
}

// resume restarts the tick loop if it stopped and the game is running again.
func (m Model) resume() (tea.Model, tea.Cmd) {
	if m.ticking || m.game.State() != engine.StateRunning {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// Close stops any held repeat and ends the repeat listener. Copies of the
// model share the repeater, so closing one closes all. Safe to call twice.
func (m Model) Close() {
	m.repeater.Close()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".pursuit", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.Maze().Name, timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// footer renders the help line and the last status message.
func (m Model) footer() string {
	f := helpStyle.Render(m.help.View(m.keys.Keys()))
	if m.status != "" {
		f = lipgloss.JoinVertical(lipgloss.Left, f, statusStyle.Render(m.status))
	}
	return f
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-lipgloss.Height(footer), 1))
	m.game.Render(m.screen)

	return m.renderer.Render(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for one session.
func Run(game *engine.Game, player string, cfg core.RuntimeConfig) error {
	model := NewModel(game, player, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	model.Close()
	return err
}
