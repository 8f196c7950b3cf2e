package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-arcade/internal/core"
	"github.com/vovakirdan/dragon-arcade/internal/registry"
	"github.com/vovakirdan/dragon-arcade/internal/storage"
)

// footerRows is the height of the help line under the playfield.
const footerRows = 1

// Model is the Bubble Tea model that runs a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	recorder   *Recorder
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	holds      *HoldTracker
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	now        func() time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. A nil logger
// discards log output; a nil store disables run history.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		recorder:   NewRecorder(logger, store),
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		holds:      NewHoldTracker(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init starts the game and the tick loop.
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game keys only mark the input frame;
// the session sees them on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.logger.Info("interrupted")
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("cannot save screenshot", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}
	m.inputFrame.Set(action)
	m.holds.Press(action, m.now())
	return m, nil
}

// handleResize keeps the game running; the renderer scales to any size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, a := range m.holds.Expire(m.now()) {
		m.inputFrame.Release(a)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		m.recorder.Record(ev)
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text under
// ~/.arcade/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the playfield and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
