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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/game"
	"github.com/vovakirdan/blocky/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a Blocky game.
type Model struct {
	game        *game.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	recordSaved bool // Whether the current finished game has been stored
}

// NewModel creates a game from opts and starts it. A nil store disables
// result saving and a nil logger discards log output.
func NewModel(opts game.Options, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g, err := game.New(opts, logger)
	if err != nil {
		return Model{}, err
	}
	if err := g.Reset(cfg); err != nil {
		return Model{}, err
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.recordSaved = false
	} else if !m.recordSaved {
		m.saveRecord()
		m.recordSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRecord stores the finished game. Failures are logged and play
// continues.
func (m Model) saveRecord() {
	if m.store == nil {
		return
	}
	id, err := m.store.SaveGame(m.game.Record())
	if err != nil {
		m.logger.Warn("could not save game", "err", err)
		return
	}
	m.logger.Info("game saved", "id", id)
}

// saveScreenshot writes the current screen as plain text under
// ~/.blocky/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".blocky", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}

	name := fmt.Sprintf("blocky_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
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
	if m.help.ShowAll {
		return m.help.View(m.keys)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the game the model drives.
func (m Model) Game() *game.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local game.
func Run(opts game.Options, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model, err := NewModel(opts, store, logger, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
