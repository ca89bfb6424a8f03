package dodge

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	Render(dst, g.Snapshot())
}

// Render projects a snapshot onto a cell screen, scaling the playfield to fit.
// It never changes game state.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.FieldW <= 0 || snap.FieldH <= 0 {
		return
	}

	p := projection{
		sx: float64(dst.Width()) / snap.FieldW,
		sy: float64(dst.Height()) / snap.FieldH,
	}

	// Draw player
	playerColor := core.ColorRed
	if snap.Invincible {
		playerColor = core.ColorGreen
	}
	dst.FillRect(p.cells(snap.Player), PlayerChar, playerColor)

	// Draw obstacles
	for _, o := range snap.Obstacles {
		dst.FillRect(p.cells(o), ObstacleChar, core.ColorYellow)
	}

	// Draw power-ups
	for _, pu := range snap.PowerUps {
		dst.FillRect(p.cells(pu.Box()), pu.Kind.Glyph(), powerUpColor(pu.Kind))
	}

	// Draw HUD
	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	drawEffects(dst, snap)

	if snap.GameOver() {
		drawGameOver(dst, snap)
	}
}

// powerUpColor returns the fill color for a power-up kind.
func powerUpColor(k PowerUpKind) core.Color {
	if k == PowerUpSlowMotion {
		return core.ColorBrightBlue
	}
	return core.ColorBrightRed
}

// projection maps playfield units to screen cells.
type projection struct {
	sx, sy float64
}

// cells returns the cell rectangle covering a box. Every visible box
// occupies at least one cell.
func (p projection) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * p.sx))
	y0 := int(math.Floor(b.Y * p.sy))
	x1 := int(math.Ceil(b.Right() * p.sx))
	y1 := int(math.Ceil(b.Bottom() * p.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// drawEffects writes the active effects and fall speed in the top-right corner.
func drawEffects(dst *core.Screen, snap Snapshot) {
	x := dst.Width() - 1

	text := fmt.Sprintf(" Spd: %.1f ", snap.Rate)
	x -= len(text)
	dst.DrawTextColor(x, 0, text, core.ColorGray)

	if snap.Invincible {
		text = fmt.Sprintf(" SHIELD %d ", snap.ShieldTicks)
		x -= len(text)
		dst.DrawTextColor(x, 0, text, core.ColorGreen)
	}
	if snap.SlowMotion {
		text = fmt.Sprintf(" SLOW %d ", snap.SlowTicks)
		x -= len(text)
		dst.DrawTextColor(x, 0, text, core.ColorBrightBlue)
	}
}

// drawGameOver draws the final score panel in the center of the screen.
func drawGameOver(dst *core.Screen, snap Snapshot) {
	lines := []string{
		"Game Over!",
		fmt.Sprintf("Final Score: %d", snap.Score),
		fmt.Sprintf("Dodged: %d  Slow: %d  Shield: %d",
			snap.Stats.Dodged, snap.Stats.SlowCollected, snap.Stats.ShieldCollected),
		"Space to restart  |  Q to quit",
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	// Title, rule, then details
	dst.DrawTextColor(boxX+(boxW-len(lines[0]))/2, boxY+1, lines[0], core.ColorBrightWhite)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '─')
	for i, l := range lines[1:] {
		dst.DrawTextCentered(boxY+3+i, l)
	}
}
