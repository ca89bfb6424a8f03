package canvas

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

func baseSnapshot() dodge.Snapshot {
	return dodge.Snapshot{
		FieldW: 500,
		FieldH: 500,
		Player: core.NewBox(240, 400, 20, 20),
		Obstacles: []core.Box{
			core.NewBox(10, 30, 50, 20),
		},
		PowerUps: []dodge.PowerUp{
			{X: 100, Y: 60, W: 20, H: 20, Kind: dodge.PowerUpSlowMotion},
			{X: 300, Y: 90, W: 20, H: 20, Kind: dodge.PowerUpShield},
		},
		Score: 42,
		Phase: dodge.PhaseRunning,
	}
}

func TestBuildRunning(t *testing.T) {
	s := Build(baseSnapshot())

	if s.Width != 500 || s.Height != 500 {
		t.Errorf("scene size = %dx%d, want 500x500", s.Width, s.Height)
	}
	if len(s.Rects) != 4 {
		t.Fatalf("got %d rects, want 4", len(s.Rects))
	}

	want := []Rect{
		{X: 240, Y: 400, W: 20, H: 20, Color: ColorPlayer},
		{X: 10, Y: 30, W: 50, H: 20, Color: ColorObstacle},
		{X: 100, Y: 60, W: 20, H: 20, Color: ColorSlow},
		{X: 300, Y: 90, W: 20, H: 20, Color: ColorShield},
	}
	for i, w := range want {
		if s.Rects[i] != w {
			t.Errorf("rect %d = %+v, want %+v", i, s.Rects[i], w)
		}
	}

	if len(s.Labels) != 1 {
		t.Fatalf("got %d labels, want 1", len(s.Labels))
	}
	score := s.Labels[0]
	if score.Text != "Score: 42" || score.X != ScoreX || score.Y != ScoreY || score.Align != AlignLeft {
		t.Errorf("score label = %+v", score)
	}
}

func TestBuildInvincibleAndEffects(t *testing.T) {
	snap := baseSnapshot()
	snap.Invincible = true
	snap.ShieldTicks = 120
	snap.SlowMotion = true
	snap.SlowTicks = 7

	s := Build(snap)

	if s.Rects[0].Color != ColorShielded {
		t.Errorf("player color = %v, want shielded green", s.Rects[0].Color)
	}
	if len(s.Labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(s.Labels))
	}
	eff := s.Labels[1]
	if eff.Text != "SHIELD 120  SLOW 7" || eff.Align != AlignRight || eff.X != 490 {
		t.Errorf("effects label = %+v", eff)
	}
}

func TestBuildGameOver(t *testing.T) {
	snap := baseSnapshot()
	snap.Phase = dodge.PhaseGameOver

	s := Build(snap)

	banner := s.Rects[len(s.Rects)-1]
	want := Rect{X: 0, Y: 200, W: 500, H: BannerHeight, Color: ColorBanner}
	if banner != want {
		t.Errorf("banner = %+v, want %+v", banner, want)
	}

	var title, final *Label
	for i := range s.Labels {
		switch s.Labels[i].Text {
		case "Game Over!":
			title = &s.Labels[i]
		case "Final Score: 42":
			final = &s.Labels[i]
		}
	}
	if title == nil || final == nil {
		t.Fatalf("missing game over labels: %+v", s.Labels)
	}
	if title.X != 250 || title.Y != 250 || title.Align != AlignCenter {
		t.Errorf("title label = %+v", *title)
	}
	if final.Y != 280 {
		t.Errorf("final score baseline = %d, want 280", final.Y)
	}
}

func TestPowerUpColor(t *testing.T) {
	if PowerUpColor(dodge.PowerUpSlowMotion) != ColorSlow {
		t.Error("slow power-up should be blue")
	}
	if PowerUpColor(dodge.PowerUpShield) != ColorShield {
		t.Error("shield power-up should be red")
	}
}
