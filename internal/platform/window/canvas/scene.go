// Package canvas lays out a Block Dodge frame for pixel frontends.
// It turns a snapshot into filled rectangles and text labels in playfield
// coordinates, one unit per pixel, so drawing backends stay trivial.
package canvas

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// Palette colors.
var (
	ColorBackground = color.RGBA{0x0f, 0x17, 0x2a, 0xff}
	ColorPlayer     = color.RGBA{0xf4, 0x3f, 0x5e, 0xff}
	ColorShielded   = color.RGBA{0x34, 0xd3, 0x99, 0xff}
	ColorObstacle   = color.RGBA{0xfb, 0xbf, 0x24, 0xff}
	ColorSlow       = color.RGBA{0x60, 0xa5, 0xfa, 0xff}
	ColorShield     = color.RGBA{0xf8, 0x71, 0x71, 0xff}
	ColorText       = color.RGBA{0xf8, 0xfa, 0xfc, 0xff}
	ColorBanner     = color.RGBA{0, 0, 0, 0xb3} // Black at 70% opacity
	ColorBannerText = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Game-over banner geometry.
const (
	BannerHeight = 100
	ScoreX       = 10
	ScoreY       = 20
)

// Align controls how a label is anchored on its X coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Rect is a filled rectangle.
type Rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// Label is a line of text. Y is the baseline.
type Label struct {
	Text  string
	X, Y  int
	Align Align
	Color color.RGBA
}

// Scene is everything needed to draw one frame, in paint order.
type Scene struct {
	Width, Height int
	Background    color.RGBA
	Rects         []Rect
	Labels        []Label
}

// Build lays out a frame for the snapshot.
func Build(snap dodge.Snapshot) Scene {
	s := Scene{
		Width:      int(snap.FieldW),
		Height:     int(snap.FieldH),
		Background: ColorBackground,
		Rects:      make([]Rect, 0, 1+len(snap.Obstacles)+len(snap.PowerUps)+1),
	}

	s.Rects = append(s.Rects, rect(snap.Player.X, snap.Player.Y, snap.Player.W, snap.Player.H, PlayerColor(snap.Invincible)))
	for _, o := range snap.Obstacles {
		s.Rects = append(s.Rects, rect(o.X, o.Y, o.W, o.H, ColorObstacle))
	}
	for _, p := range snap.PowerUps {
		s.Rects = append(s.Rects, rect(p.X, p.Y, p.W, p.H, PowerUpColor(p.Kind)))
	}

	s.Labels = append(s.Labels, Label{
		Text:  fmt.Sprintf("Score: %d", snap.Score),
		X:     ScoreX,
		Y:     ScoreY,
		Color: ColorText,
	})
	if effects := effectsText(snap); effects != "" {
		s.Labels = append(s.Labels, Label{
			Text:  effects,
			X:     s.Width - ScoreX,
			Y:     ScoreY,
			Align: AlignRight,
			Color: ColorText,
		})
	}

	if snap.GameOver() {
		mid := s.Height / 2
		s.Rects = append(s.Rects, Rect{
			X:     0,
			Y:     float32(mid - BannerHeight/2),
			W:     float32(s.Width),
			H:     BannerHeight,
			Color: ColorBanner,
		})
		s.Labels = append(s.Labels,
			Label{Text: "Game Over!", X: s.Width / 2, Y: mid, Align: AlignCenter, Color: ColorBannerText},
			Label{Text: fmt.Sprintf("Final Score: %d", snap.Score), X: s.Width / 2, Y: mid + 30, Align: AlignCenter, Color: ColorBannerText},
		)
	}

	return s
}

// PlayerColor returns the player fill, green while shielded.
func PlayerColor(invincible bool) color.RGBA {
	if invincible {
		return ColorShielded
	}
	return ColorPlayer
}

// PowerUpColor returns the fill for a power-up kind.
func PowerUpColor(k dodge.PowerUpKind) color.RGBA {
	if k == dodge.PowerUpSlowMotion {
		return ColorSlow
	}
	return ColorShield
}

func effectsText(snap dodge.Snapshot) string {
	switch {
	case snap.Invincible && snap.SlowMotion:
		return fmt.Sprintf("SHIELD %d  SLOW %d", snap.ShieldTicks, snap.SlowTicks)
	case snap.Invincible:
		return fmt.Sprintf("SHIELD %d", snap.ShieldTicks)
	case snap.SlowMotion:
		return fmt.Sprintf("SLOW %d", snap.SlowTicks)
	}
	return ""
}

func rect(x, y, w, h float64, c color.RGBA) Rect {
	return Rect{X: float32(x), Y: float32(y), W: float32(w), H: float32(h), Color: c}
}
