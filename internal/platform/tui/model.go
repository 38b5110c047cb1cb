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

	"github.com/vovakirdan/tui-worms/internal/core"
	"github.com/vovakirdan/tui-worms/internal/registry"
	"github.com/vovakirdan/tui-worms/internal/storage"
)

// holdDuration is how long a walk key counts as held after its last key
// event. Terminals only report presses and auto-repeats, never releases.
const holdDuration = 150 * time.Millisecond

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model that runs one game. It is used for
// local play and inside SSH sessions.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	inputFrame  core.InputFrame
	held        map[core.Action]int // walk actions still held, in ticks
	gameState   core.GameState
	quitting    bool
	backToMenu  bool
	exitOnBack  bool // back ends the program; the caller shows the menu
	resultSaved bool
}

// NewGameModel creates a model for game. The bottom row is kept for help.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH = max(cfg.ScreenH-1, 1)

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if !m.gameState.GameOver && !m.gameState.Paused {
			m.inputFrame.Set(core.ActionPause)
			return m, nil
		}
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.hold(action)
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// hold marks a walk action as held and releases the opposite one.
func (m *GameModel) hold(a core.Action) {
	opposite := core.ActionLeft
	if a == core.ActionLeft {
		opposite = core.ActionRight
	}
	delete(m.held, opposite)
	m.held[a] = m.config.TicksFor(holdDuration)
}

// handleResize processes window resize events. The field keeps its size;
// only the view is rescaled.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-1, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.inputFrame.Clear()
		clear(m.held)
		return m, tickCmd(m.config)
	}

	for a, left := range m.held {
		m.inputFrame.Set(a)
		if left <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = left - 1
		}
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config)
}

// saveResult stores the score and, for games that keep one, the match
// record. Failures are logged; the game continues regardless.
func (m *GameModel) saveResult() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "err", err)
		}
	}

	reporter, ok := m.game.(registry.MatchReporter)
	if !ok {
		return
	}
	res, ok := reporter.MatchResult()
	if !ok {
		return
	}
	id, err := m.store.SaveMatch(storage.MatchRecord{
		GameID:    m.game.ID(),
		Winner:    res.Winner,
		Turns:     res.Turns,
		Destroyed: res.Destroyed,
		Duration:  res.Duration,
	})
	if err != nil {
		m.logger.Warn("could not save match", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("match saved", "id", id, "winner", res.Winner, "turns", res.Turns)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".worms", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	_, err := RunModel(game, store, cfg, logger)
	return err
}

// RunModel runs a single game and returns the final model so callers can
// tell a quit from a return to the menu.
func RunModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (GameModel, error) {
	model := NewGameModel(game, store, cfg, logger)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := finalModel.(GameModel); ok {
		return m, nil
	}
	return model, nil
}
