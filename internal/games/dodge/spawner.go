package dodge

import "github.com/vovakirdan/tui-dodge/internal/config"

// RandSource supplies uniform random numbers in [0, 1).
// *math/rand.Rand satisfies it; tests substitute scripted sources.
type RandSource interface {
	Float64() float64
}

// Spawner creates new obstacles and power-ups at the top of the field.
type Spawner struct {
	rng RandSource
	cfg *config.DodgeConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng RandSource, cfg *config.DodgeConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// SpawnObstacle creates an obstacle at a random x along the top edge.
func (s *Spawner) SpawnObstacle() Obstacle {
	w := s.cfg.Obstacles.Width
	return Obstacle{
		X: s.rng.Float64() * (s.cfg.Field.Width - w),
		Y: 0,
		W: w,
		H: s.cfg.Obstacles.Height,
	}
}

// MaybeSpawnObstacle runs one obstacle spawn trial.
func (s *Spawner) MaybeSpawnObstacle() (Obstacle, bool) {
	if s.rng.Float64() >= s.cfg.Obstacles.SpawnChance {
		return Obstacle{}, false
	}
	return s.SpawnObstacle(), true
}

// MaybeSpawnPowerUp runs one power-up spawn trial.
// Position is drawn before kind; each kind has an even chance.
func (s *Spawner) MaybeSpawnPowerUp() (PowerUp, bool) {
	if s.rng.Float64() >= s.cfg.PowerUps.SpawnChance {
		return PowerUp{}, false
	}

	w := s.cfg.PowerUps.Width
	p := PowerUp{
		X:    s.rng.Float64() * (s.cfg.Field.Width - w),
		Y:    0,
		W:    w,
		H:    s.cfg.PowerUps.Height,
		Kind: PowerUpShield,
	}
	if s.rng.Float64() > 0.5 {
		p.Kind = PowerUpSlowMotion
	}
	return p, true
}
