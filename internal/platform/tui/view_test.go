package tui

import (
	"testing"

	"github.com/breakline/arkanoid/internal/config"
	"github.com/breakline/arkanoid/internal/core"
	"github.com/breakline/arkanoid/internal/engine"
	"github.com/breakline/arkanoid/internal/geom"
	"github.com/breakline/arkanoid/internal/levels"
)

func TestViewportRoundTrip(t *testing.T) {
	vp := newViewport(960, 640, 80, 24)

	// A field point mapped to a cell and back stays in the same cell.
	cx, cy := vp.toCell(480, 320)
	x, y := vp.toField(cx, cy)
	cx2, cy2 := vp.toCell(x, y)

	if cx != cx2 || cy != cy2 {
		t.Errorf("round trip moved cell: (%d,%d) -> (%d,%d)", cx, cy, cx2, cy2)
	}
}

func TestViewportCorners(t *testing.T) {
	vp := newViewport(960, 640, 80, 24)

	cx, cy := vp.toCell(0, 0)
	if cx != 0 || cy != hudRows {
		t.Errorf("field origin maps to (%d,%d), want (0,%d)", cx, cy, hudRows)
	}

	cx, _ = vp.toCell(959.9, 639.9)
	if cx >= 80 {
		t.Errorf("right edge maps off-screen: %d", cx)
	}
}

func TestViewportSpanNeverEmpty(t *testing.T) {
	vp := newViewport(960, 640, 80, 24)

	// A ball far smaller than one cell still spans one cell.
	x0, y0, x1, y1 := vp.cellSpan(geom.NewRect(100, 100, 2, 2))
	if x1 < x0 || y1 < y0 {
		t.Errorf("empty span: (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
}

func TestDrawSessionPhases(t *testing.T) {
	cfg := config.DefaultGameConfig()
	provider := levels.NewFileProvider("", cfg.Bricks.Rows, cfg.Bricks.Columns)
	sess := engine.NewSession(cfg, provider, nil, 1)

	screen := core.NewScreen(80, 24)
	vp := newViewport(cfg.Field.Width, cfg.Field.Height, 80, 24)

	// Menu renders the play button label and the leaderboard.
	drawSession(screen, sess, vp, 120, []int{120, 90, 40}, false)
	if !screenContains(screen, "PLAY") {
		t.Error("menu should show the PLAY button")
	}
	if !screenContains(screen, "HIGH SCORE 120") {
		t.Error("menu should show the high score")
	}
	if !screenContains(screen, "1. 120") {
		t.Error("menu should list the top scores")
	}

	// Playing renders the HUD.
	in := core.NewInputFrame()
	in.Set(core.ActionPrimary)
	sess.HandleInput(in)
	screen.Clear()
	drawSession(screen, sess, vp, 120, nil, false)
	if !screenContains(screen, "SCORE 0") {
		t.Error("playing should show the score HUD")
	}

	// Paused shows the overlay on top of the field.
	in.Clear()
	in.Set(core.ActionPrimary) // serve
	sess.HandleInput(in)
	in.Clear()
	in.Set(core.ActionPrimary) // pause
	sess.HandleInput(in)
	screen.Clear()
	drawSession(screen, sess, vp, 120, nil, false)
	if !screenContains(screen, "PAUSED") {
		t.Error("paused should show the pause overlay")
	}
}

func TestParticleLifecycle(t *testing.T) {
	ps := NewParticleSystem(1)

	ps.HandleEvents([]engine.Event{
		{Kind: engine.EventBrickBreak, X: 100, Y: 100, Color: 2},
	})
	if ps.Count() != burstSize {
		t.Fatalf("burst spawned %d particles, want %d", ps.Count(), burstSize)
	}

	// All fragments expire within their max lifetime.
	for i := 0; i < 80; i++ {
		ps.Update(0.016)
	}
	if ps.Count() != 0 {
		t.Errorf("%d particles alive after expiry window", ps.Count())
	}
}

func TestParticleClear(t *testing.T) {
	ps := NewParticleSystem(1)
	ps.HandleEvents([]engine.Event{{Kind: engine.EventLifeLost, X: 10, Y: 10}})
	ps.Clear()
	if ps.Count() != 0 {
		t.Errorf("Clear left %d particles", ps.Count())
	}
}

func screenContains(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		row := make([]rune, 0, s.Width())
		for x := 0; x < s.Width(); x++ {
			row = append(row, s.Get(x, y))
		}
		if containsRunes(row, []rune(text)) {
			return true
		}
	}
	return false
}

func containsRunes(haystack, needle []rune) bool {
	if len(needle) == 0 {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
