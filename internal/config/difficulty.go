package config

// DifficultyManager applies the fall-rate step rule.
// The rate only ever grows; it never depends on anything but the score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Base returns the starting fall rate.
func (d *DifficultyManager) Base() float64 {
	return d.cfg.BaseRate
}

// Advance returns the rate after the score has just become score.
// The rate steps up on the exact tick the score hits a multiple of Every.
func (d *DifficultyManager) Advance(rate float64, score int) float64 {
	if d.cfg.Every <= 0 || score <= 0 {
		return rate
	}
	if score%d.cfg.Every == 0 {
		return rate + d.cfg.Increment
	}
	return rate
}

// Level returns how many increments have been applied by the given score.
func (d *DifficultyManager) Level(score int) int {
	if d.cfg.Every <= 0 || score <= 0 {
		return 0
	}
	return score / d.cfg.Every
}

