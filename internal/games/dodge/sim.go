package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Tick advances the simulation by one frame.
// It does nothing once the game is over.
func (g *Game) Tick() core.GameState {
	if g.gameOver {
		return g.State()
	}

	g.moveObstacles()
	g.movePowerUps()
	g.prune()
	g.spawn()

	g.slowMotion.Decay()
	g.shield.Decay()

	g.score++
	g.rate = g.difficulty.Advance(g.rate, g.score)

	return g.State()
}

// obstacleSpeed returns how far obstacles fall this tick.
func (g *Game) obstacleSpeed() float64 {
	if g.slowMotion.Active {
		return g.rate / 2
	}
	return g.rate
}

// moveObstacles drops every obstacle and checks it against the player.
// All obstacles move even after a hit.
func (g *Game) moveObstacles() {
	speed := g.obstacleSpeed()
	playerBox := g.player.Box()

	for i := range g.obstacles {
		g.obstacles[i].Y += speed

		if !g.shield.Active && playerBox.Intersects(g.obstacles[i].Box()) {
			g.gameOver = true
		}
	}
}

// movePowerUps drops every power-up and applies the ones the player touches.
// Power-ups ignore slow motion.
func (g *Game) movePowerUps() {
	playerBox := g.player.Box()
	duration := g.cfg.PowerUps.Duration

	for i := range g.powerUps {
		p := &g.powerUps[i]
		p.Y += g.rate

		if !playerBox.Intersects(p.Box()) {
			continue
		}

		switch p.Kind {
		case PowerUpSlowMotion:
			g.slowMotion.Activate(duration)
			g.stats.SlowCollected++
		case PowerUpShield:
			g.shield.Activate(duration)
			g.stats.ShieldCollected++
		}
		// Consumed: push off the field so prune drops it this tick
		p.Y = g.cfg.Field.Height
	}
}

// prune removes everything that has reached the bottom of the field.
func (g *Game) prune() {
	fieldH := g.cfg.Field.Height

	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.Y < fieldH {
			kept = append(kept, o)
		} else {
			g.stats.Dodged++
		}
	}
	g.obstacles = kept

	keptPowerUps := g.powerUps[:0]
	for _, p := range g.powerUps {
		if p.Y < fieldH {
			keptPowerUps = append(keptPowerUps, p)
		}
	}
	g.powerUps = keptPowerUps
}

// spawn runs both spawn trials; both may succeed in the same tick.
func (g *Game) spawn() {
	if o, ok := g.spawner.MaybeSpawnObstacle(); ok {
		g.obstacles = append(g.obstacles, o)
	}
	if p, ok := g.spawner.MaybeSpawnPowerUp(); ok {
		g.powerUps = append(g.powerUps, p)
	}
}
