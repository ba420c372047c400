package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memerun/internal/core"
	"github.com/vovakirdan/memerun/internal/registry"
)

// footerRows is the space under the playfield used by the help line.
const footerRows = 1

// flushedMsg reports that pending background work finished after a quit.
type flushedMsg struct{ err error }

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	clock    *core.Clock
	frame    *core.InputFrame
	state    core.GameState
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for game. A zero seed is replaced with the
// current time.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}
	frame := core.NewInputFrame()
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		config: cfg,
		clock:  core.NewClock(cfg.TickRate),
		frame:  &frame,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case flushedMsg:
		if msg.err != nil {
			m.logger.Warn("pending score submission not confirmed", "err", msg.err)
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		return m.quit()
	}
	m.frame.Set(action)
	return m, nil
}

// quit stops the session and waits for pending work before exiting.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	stop := core.NewInputFrame()
	stop.Set(core.ActionQuit)
	m.state = m.game.Step(stop).State

	sess, ok := m.game.(registry.Session)
	if !ok {
		return m, tea.Quit
	}
	return m, func() tea.Msg {
		return flushedMsg{err: sess.Flush()}
	}
}

// handleTick runs at most one step per due tick. Input collected between
// steps is delivered with the step and then cleared.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if m.clock.Due(now) {
		m.state = m.game.Step(*m.frame).State
		m.frame.Clear()
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".memerun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the playfield and the help footer.
func (m Model) View() string {
	if m.quitting {
		return "Saving score...\n"
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the state observed after the last step.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts a full-screen program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(game, cfg, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
