// Package window runs Block Dodge in a desktop window using Ebitengine.
package window

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/window/canvas"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// Options configures a window session.
type Options struct {
	Game     config.DodgeConfig
	TickRate int
	Seed     int64
	Scale    int            // Window pixels per playfield unit
	Store    *storage.Store // Optional; nil disables score saving
	Logger   *log.Logger    // Optional; nil discards log output
	Player   string
}

// Window is the ebiten.Game host for one run.
type Window struct {
	game       *dodge.Game
	store      *storage.Store
	logger     *log.Logger
	face       font.Face
	player     string
	scoreSaved bool
}

// keyBindings maps ebiten keys to actions.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
	repeat bool
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyH, ebiten.KeyA}, core.ActionLeft, true},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyL, ebiten.KeyD}, core.ActionRight, true},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionRestart, false},
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, core.ActionQuit, false},
}

// New creates the window host and starts the first run.
func New(opts Options) *Window {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Window{
		game:   dodge.New(opts.Game, rand.New(rand.NewSource(seed))),
		store:  opts.Store,
		logger: logger,
		face:   basicfont.Face7x13,
		player: opts.Player,
	}
}

// Update applies input immediately, then advances the simulation one tick.
func (w *Window) Update() error {
	for _, b := range keyBindings {
		if !pressed(b.keys, b.repeat) {
			continue
		}
		if b.action == core.ActionQuit {
			w.logger.Info("quit", "score", w.game.State().Score)
			return ebiten.Termination
		}
		if b.action == core.ActionRestart && w.game.State().GameOver {
			w.scoreSaved = false
			w.logger.Info("restart")
		}
		w.game.HandleAction(b.action)
	}

	if state := w.game.Tick(); state.GameOver && !w.scoreSaved {
		w.scoreSaved = true
		w.recordGameOver()
	}
	return nil
}

// pressed reports whether any key fires this tick.
func pressed(keys []ebiten.Key, repeat bool) bool {
	for _, k := range keys {
		if !repeat {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
			continue
		}
		if core.RepeatFires(inpututil.KeyPressDuration(k), core.RepeatDelay, core.RepeatInterval) {
			return true
		}
	}
	return false
}

func (w *Window) recordGameOver() {
	snap := w.game.Snapshot()
	w.logger.Info("game over", "score", snap.Score, "level", snap.Level, "dodged", snap.Stats.Dodged)

	if w.store == nil || snap.Score <= 0 {
		return
	}
	if _, err := w.store.SaveScore(storage.ScoreEntry{
		GameID:   w.game.ID(),
		Player:   w.player,
		Score:    snap.Score,
		Dodged:   snap.Stats.Dodged,
		PowerUps: snap.Stats.SlowCollected + snap.Stats.ShieldCollected,
	}); err != nil {
		w.logger.Warn("could not save score", "error", err)
	}
}

// Draw paints the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	scene := canvas.Build(w.game.Snapshot())

	screen.Fill(scene.Background)
	for _, r := range scene.Rects {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
	for _, l := range scene.Labels {
		w.drawLabel(screen, l)
	}
}

func (w *Window) drawLabel(screen *ebiten.Image, l canvas.Label) {
	x := l.X
	switch l.Align {
	case canvas.AlignCenter:
		x -= text.BoundString(w.face, l.Text).Dx() / 2
	case canvas.AlignRight:
		x -= text.BoundString(w.face, l.Text).Dx()
	}
	text.Draw(screen, l.Text, w.face, x, l.Y, l.Color)
}

// Layout keeps the logical screen at playfield size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	cfg := w.game.Config()
	return int(cfg.Field.Width), int(cfg.Field.Height)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w := New(opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	cfg := w.game.Config()
	ebiten.SetWindowSize(int(cfg.Field.Width)*scale, int(cfg.Field.Height)*scale)
	ebiten.SetWindowTitle(w.game.Title())
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	w.logger.Info("window opened", "player", w.player)
	return ebiten.RunGame(w)
}
