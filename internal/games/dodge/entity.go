package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Direction is a horizontal move command for the player.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Player is the block the user steers along the bottom of the field.
type Player struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	Speed float64 // Distance per move command
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Obstacle is a falling block that ends the game on contact.
type Obstacle struct {
	X, Y float64
	W, H float64
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// PowerUpKind selects the effect a power-up grants.
type PowerUpKind int

const (
	PowerUpSlowMotion PowerUpKind = iota // Halves obstacle fall speed
	PowerUpShield                        // Obstacles cannot end the game
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSlowMotion:
		return "slow"
	case PowerUpShield:
		return "shield"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpSlowMotion:
		return 'S'
	case PowerUpShield:
		return 'O'
	default:
		return '?'
	}
}

// PowerUp is a falling collectible.
type PowerUp struct {
	X, Y float64
	W, H float64
	Kind PowerUpKind
}

// Box returns the power-up's collision box.
func (p PowerUp) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Effect is a timed boolean flag counted down once per tick.
type Effect struct {
	Active    bool
	Remaining int // Ticks left while Active
}

// Activate turns the effect on and restarts its countdown.
// Re-activating an active effect does not stack.
func (e *Effect) Activate(duration int) {
	e.Active = true
	e.Remaining = duration
}

// Decay counts down one tick and clears the effect when time runs out.
func (e *Effect) Decay() {
	if !e.Active {
		return
	}
	e.Remaining--
	if e.Remaining <= 0 {
		e.Active = false
		e.Remaining = 0
	}
}

// Stats are per-run counters shown on the game over panel and stored with scores.
type Stats struct {
	Dodged          int // Obstacles that fell off the bottom of the field
	SlowCollected   int
	ShieldCollected int
}
