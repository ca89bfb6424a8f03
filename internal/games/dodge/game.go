// Package dodge implements Block Dodge, a single-screen avoidance game.
// The player slides a block left and right while obstacles fall from the top;
// falling power-ups grant slow motion or a temporary shield.
package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Game owns the authoritative state of one Block Dodge run.
// It is not safe for concurrent use; hosts call it from a single goroutine.
type Game struct {
	cfg        config.DodgeConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner

	player    Player
	obstacles []Obstacle
	powerUps  []PowerUp

	score      int
	rate       float64 // Current fall rate
	slowMotion Effect
	shield     Effect
	gameOver   bool
	stats      Stats
}

// New creates a game from a validated configuration and starts the first run.
func New(cfg config.DodgeConfig, rng RandSource) *Game {
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		obstacles:  make([]Obstacle, 0, 16),
		powerUps:   make([]PowerUp, 0, 4),
	}
	g.spawner = NewSpawner(rng, &g.cfg)
	g.Reset()
	return g
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Block Dodge"
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

// Reset restores the initial state and spawns the first obstacle.
// It works in any state; input adapters only call it after game over.
func (g *Game) Reset() {
	g.player = Player{
		X:     g.cfg.Player.StartX,
		Y:     g.cfg.Player.StartY,
		W:     g.cfg.Player.Width,
		H:     g.cfg.Player.Height,
		Speed: g.cfg.Player.Speed,
	}
	g.obstacles = g.obstacles[:0]
	g.powerUps = g.powerUps[:0]
	g.score = 0
	g.rate = g.difficulty.Base()
	g.slowMotion = Effect{}
	g.shield = Effect{}
	g.gameOver = false
	g.stats = Stats{}

	g.obstacles = append(g.obstacles, g.spawner.SpawnObstacle())
}

// MovePlayer shifts the player one step, clamped to the field.
// Movement is applied immediately and is allowed after game over.
func (g *Game) MovePlayer(dir Direction) {
	switch dir {
	case DirLeft:
		g.player.X -= g.player.Speed
	case DirRight:
		g.player.X += g.player.Speed
	}
	g.player.X = core.ClampF(g.player.X, 0, g.cfg.Field.Width-g.player.W)
}

// HandleAction applies an input intent.
// Restart is ignored unless the game is over.
func (g *Game) HandleAction(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.MovePlayer(DirLeft)
	case core.ActionRight:
		g.MovePlayer(DirRight)
	case core.ActionRestart:
		if g.gameOver {
			g.Reset()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}
