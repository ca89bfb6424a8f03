package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// Options configures a play session.
type Options struct {
	Game    config.DodgeConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; nil disables score saving
	Logger  *log.Logger    // Optional; nil discards log output
	Player  string         // Recorded with saved scores
}

// Model is the Bubble Tea model for one Block Dodge session.
type Model struct {
	game       *dodge.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	player     string
	board      *ScoreboardModel // Non-nil while the scoreboard is shown
	lastSaved  int64            // ID of the score saved for the current run
	scoreSaved bool             // Whether score has been saved for current game over
	quitting   bool
}

// NewModel creates a new Bubble Tea model and starts the first run.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   dodge.New(opts.Game, rand.New(rand.NewSource(cfg.Seed))),
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:  opts.Store,
		logger: logger,
		keys:   NewKeyMapper(),
		help:   h,
		config: cfg,
		player: opts.Player,
	}
}

// playHeight returns the rows available to the playfield.
func playHeight(screenH int) int {
	return core.Max(screenH-helpHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "player", m.player, "seed", m.config.Seed)
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

// handleKey applies input immediately; the game never waits for a tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.board != nil {
		return m.updateBoard(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "player", m.player, "score", m.game.State().Score)
		return m, tea.Quit

	case core.ActionScores:
		if m.game.State().GameOver {
			board := NewScoreboardModel(m.store, m.game.ID(), m.game.Title(), m.config.ScreenW, m.config.ScreenH).
				WithHighlight(m.lastSaved)
			m.board = &board
		}

	case core.ActionRestart:
		if m.game.State().GameOver {
			m.game.HandleAction(action)
			m.scoreSaved = false
			m.lastSaved = 0
			m.logger.Info("restart", "player", m.player)
		}

	case core.ActionLeft, core.ActionRight:
		m.game.HandleAction(action)
	}

	return m, nil
}

// updateBoard forwards input to the scoreboard until the user leaves it.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board := next.(ScoreboardModel)

	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}

	m.board = &board
	return m, cmd
}

// handleResize processes window resize events.
// The playfield is scaled to the new size; the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	if m.board != nil {
		return m.updateBoard(msg)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	state := m.game.Tick()

	// Save score on game over (once)
	if state.GameOver && !m.scoreSaved {
		m.scoreSaved = true
		m.recordGameOver()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordGameOver logs the finished run and persists it.
func (m *Model) recordGameOver() {
	snap := m.game.Snapshot()
	m.logger.Info("game over",
		"player", m.player,
		"score", snap.Score,
		"level", snap.Level,
		"dodged", snap.Stats.Dodged,
	)

	if m.store == nil || snap.Score <= 0 {
		return
	}

	id, err := m.store.SaveScore(storage.ScoreEntry{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    snap.Score,
		Dodged:   snap.Stats.Dodged,
		PowerUps: snap.Stats.SlowCollected + snap.Stats.ShieldCollected,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.lastSaved = id
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.board != nil {
		return m.board.View()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Game exposes the running game, mainly for tests.
func (m Model) Game() *dodge.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
