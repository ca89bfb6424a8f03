package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// doomedConfig returns a field where every obstacle spans the full width,
// so the first obstacle always reaches the player.
func doomedConfig() config.DodgeConfig {
	cfg := config.Default()
	cfg.Obstacles.Width = cfg.Field.Width
	cfg.Obstacles.SpawnChance = 0
	cfg.PowerUps.SpawnChance = 0
	return cfg
}

func newTestModel(t *testing.T, cfg config.DodgeConfig, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Game:    cfg,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Store:   store,
		Player:  "tester",
	})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func tickUntilGameOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 1000; i++ {
		m = send(t, m, TickMsg{})
		if m.Game().State().GameOver {
			return m
		}
	}
	t.Fatal("game did not end within 1000 ticks")
	return m
}

func TestModelMovesImmediately(t *testing.T) {
	m := newTestModel(t, config.Default(), nil)
	startX := m.Game().Snapshot().Player.X

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Game().Snapshot().Player.X; got != startX-5 {
		t.Errorf("after left, x = %v, want %v", got, startX-5)
	}

	m = send(t, m, runeKey('d'))
	m = send(t, m, runeKey('d'))
	if got := m.Game().Snapshot().Player.X; got != startX+5 {
		t.Errorf("after two rights, x = %v, want %v", got, startX+5)
	}
}

func TestModelTickAdvancesScore(t *testing.T) {
	m := newTestModel(t, config.Default(), nil)

	for i := 0; i < 10; i++ {
		m = send(t, m, TickMsg{})
	}

	if got := m.Game().State().Score; got != 10 {
		t.Errorf("score after 10 ticks = %d, want 10", got)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	m := newTestModel(t, doomedConfig(), nil)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	for i := 0; i < 5; i++ {
		m = send(t, m, TickMsg{})
	}
	m = send(t, m, space)
	if got := m.Game().State().Score; got != 5 {
		t.Fatalf("restart while running reset the score to %d", got)
	}

	m = tickUntilGameOver(t, m)
	m = send(t, m, space)

	state := m.Game().State()
	if state.GameOver {
		t.Error("expected restart after game over")
	}
	if state.Score != 0 {
		t.Errorf("score after restart = %d, want 0", state.Score)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, doomedConfig(), store)
	m = tickUntilGameOver(t, m)
	final := m.Game().State().Score

	// Further ticks must not save again
	for i := 0; i < 10; i++ {
		m = send(t, m, TickMsg{})
	}

	scores, err := store.TopScores("dodge", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected 1 saved score, got %d", len(scores))
	}
	if scores[0].Score != final {
		t.Errorf("saved score = %d, want %d", scores[0].Score, final)
	}
	if scores[0].Player != "tester" {
		t.Errorf("saved player = %q, want tester", scores[0].Player)
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, doomedConfig(), store)
	tab := tea.KeyMsg{Type: tea.KeyTab}

	// Tab is ignored while running
	m = send(t, m, tab)
	if m.board != nil {
		t.Fatal("scoreboard opened while the game was running")
	}

	m = tickUntilGameOver(t, m)
	m = send(t, m, tab)
	if m.board == nil {
		t.Fatal("expected scoreboard after tab on game over")
	}
	if view := m.View(); !strings.Contains(view, "HIGH SCORES") {
		t.Errorf("scoreboard view missing title:\n%s", view)
	}

	// Movement keys go to the scoreboard, not the game
	x := m.Game().Snapshot().Player.X
	m = send(t, m, runeKey('a'))
	if m.Game().Snapshot().Player.X != x {
		t.Error("game received input while scoreboard was open")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.board != nil {
		t.Error("expected esc to close the scoreboard")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.Default(), nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg from quit command")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("expected empty view after quit, got %q", view)
	}
}

func TestModelViewLayout(t *testing.T) {
	m := newTestModel(t, config.Default(), nil)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 24 {
		t.Errorf("view has %d lines, want 24 (playfield plus help)", len(lines))
	}
	if !strings.Contains(view, "Score: 0") {
		t.Error("view missing score label")
	}
	if !strings.Contains(lines[len(lines)-1], "quit") {
		t.Errorf("last line should be help, got %q", lines[len(lines)-1])
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if got := len(strings.Split(m.View(), "\n")); got != 12 {
		t.Errorf("after resize view has %d lines, want 12", got)
	}
}
