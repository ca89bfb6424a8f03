package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Phase is the top-level game state.
type Phase string

const (
	PhaseRunning  Phase = "running"
	PhaseGameOver Phase = "game_over"
)

// Snapshot is a read-only copy of the game state for renderers.
// It shares no memory with the game.
type Snapshot struct {
	FieldW, FieldH float64
	Player         core.Box
	Invincible     bool
	ShieldTicks    int
	SlowMotion     bool
	SlowTicks      int
	Obstacles      []core.Box
	PowerUps       []PowerUp
	Score          int
	Rate           float64
	Level          int // Difficulty increments applied so far
	Phase          Phase
	Stats          Stats
}

// GameOver reports whether the run has ended.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]core.Box, len(g.obstacles))
	for i, o := range g.obstacles {
		obstacles[i] = o.Box()
	}
	powerUps := make([]PowerUp, len(g.powerUps))
	copy(powerUps, g.powerUps)

	phase := PhaseRunning
	if g.gameOver {
		phase = PhaseGameOver
	}

	return Snapshot{
		FieldW:      g.cfg.Field.Width,
		FieldH:      g.cfg.Field.Height,
		Player:      g.player.Box(),
		Invincible:  g.shield.Active,
		ShieldTicks: g.shield.Remaining,
		SlowMotion:  g.slowMotion.Active,
		SlowTicks:   g.slowMotion.Remaining,
		Obstacles:   obstacles,
		PowerUps:    powerUps,
		Score:       g.score,
		Rate:        g.rate,
		Level:       g.difficulty.Level(g.score),
		Phase:       phase,
		Stats:       g.stats,
	}
}
