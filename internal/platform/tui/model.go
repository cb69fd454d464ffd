// Package tui provides the Bubble Tea integration for hangart.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hangart/internal/core"
	"github.com/vovakirdan/hangart/internal/games/hangman"
	"github.com/vovakirdan/hangart/internal/registry"
	"github.com/vovakirdan/hangart/internal/storage"
)

// snapshotter is implemented by games that expose round details for history.
type snapshotter interface {
	Snapshot() hangman.Snapshot
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	embedded   bool // Esc returns to the caller instead of quitting
	quitting   bool
	backToMenu bool
	saved      bool // Whether the result of the current round has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset immediately so the first frame shows a round.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		logger:     log.New(io.Discard),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// WithLogger returns a copy of the model that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Placement is computed at render time, so the round survives a resize
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input and steps the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.inputFrame.Clear()
	switch m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if !result.State.GameOver {
		m.saved = false
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		m.saveResult()
		m.saved = true
	}

	return m, nil
}

// saveResult records the finished round. Storage errors are logged only.
func (m *Model) saveResult() {
	r := resultFor(m.game, m.gameState)
	m.logger.Info("round finished", "game", r.GameID, "won", r.Won, "score", r.Score)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(r); err != nil {
		m.logger.Error("cannot save result", "error", err)
	}
}

// resultFor builds a history record for the current round of game.
func resultFor(game registry.Game, state core.GameState) storage.Result {
	r := storage.Result{
		GameID: game.ID(),
		Won:    state.Won,
		Score:  state.Score,
	}
	if s, ok := game.(snapshotter); ok {
		snap := s.Snapshot()
		r.Word = snap.Word
		r.Misses = len([]rune(snap.Misses))
		r.Lives = snap.Lives
		r.ArtPoints = snap.ArtPoints
		r.ArtVisible = snap.ArtVisible
	}
	return r
}

// saveScreenshot writes the current screen to ~/.hangart/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".hangart", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, hangman.StatusLines)
}

// State returns the state after the last processed key.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
