package tui

import (
	"fmt"

	"github.com/breakline/arkanoid/internal/core"
	"github.com/breakline/arkanoid/internal/engine"
	"github.com/breakline/arkanoid/internal/geom"
)

// viewport maps virtual field coordinates onto screen cells. The playfield
// occupies the whole screen below the HUD row.
type viewport struct {
	fieldW, fieldH float64
	screenW        int
	screenH        int
	topRows        int
}

const (
	hudRows             = 1
	menuLeaderboardSize = 5
)

func newViewport(fieldW, fieldH float64, screenW, screenH int) viewport {
	return viewport{
		fieldW:  fieldW,
		fieldH:  fieldH,
		screenW: screenW,
		screenH: screenH,
		topRows: hudRows,
	}
}

// toCell converts a field point to a screen cell.
func (v viewport) toCell(x, y float64) (int, int) {
	playH := v.screenH - v.topRows
	if playH < 1 {
		playH = 1
	}
	cx := int(x / v.fieldW * float64(v.screenW))
	cy := v.topRows + int(y/v.fieldH*float64(playH))
	return cx, cy
}

// toField converts a screen cell back to field coordinates, using the cell
// center so small terminals stay symmetric.
func (v viewport) toField(cx, cy int) (float64, float64) {
	playH := v.screenH - v.topRows
	if playH < 1 {
		playH = 1
	}
	x := (float64(cx) + 0.5) / float64(v.screenW) * v.fieldW
	y := (float64(cy-v.topRows) + 0.5) / float64(playH) * v.fieldH
	return x, y
}

// cellSpan converts a field rect to an inclusive screen cell span, always at
// least one cell so thin entities stay visible.
func (v viewport) cellSpan(r geom.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.toCell(r.X, r.Y)
	x1, y1 = v.toCell(r.Right(), r.Bottom())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

// drawSession renders the playfield, HUD and any phase overlay. The caller
// owns clearing the screen so it can paint a backdrop first.
func drawSession(s *core.Screen, sess *engine.Session, vp viewport, highScore int, topScores []int, muted bool) {
	switch sess.Phase() {
	case engine.PhaseMenu:
		drawMenu(s, sess, vp, highScore, topScores)
		return
	case engine.PhasePlaying, engine.PhasePaused, engine.PhaseOver:
		drawPlayfield(s, sess, vp)
		drawHUD(s, sess, highScore, muted)
	}

	switch sess.Phase() {
	case engine.PhasePaused:
		drawOverlay(s, "PAUSED", "space to resume, esc for menu")
	case engine.PhaseOver:
		title := "GAME OVER"
		if sess.Outcome() == engine.OutcomeWon {
			title = "YOU WIN!"
		}
		drawOverlay(s, title, fmt.Sprintf("final score %d. space to play again", sess.Score()))
	}
}

func drawPlayfield(s *core.Screen, sess *engine.Session, vp viewport) {
	for _, b := range sess.Bricks() {
		if !b.Alive {
			continue
		}
		x0, y0, x1, y1 := vp.cellSpan(b.Rect)
		ch := '█'
		if b.Special {
			ch = '▓'
		}
		s.FillRect(x0, y0, x1-x0+1, y1-y0+1, ch, core.BrickColor(b.Color))
	}

	for _, c := range sess.Collectibles() {
		if !c.Alive {
			continue
		}
		cx, cy := vp.toCell(c.Rect.CenterX(), c.Rect.CenterY())
		s.SetColored(cx, cy, '◆', core.ColorBrightYellow)
	}

	paddle := sess.Paddle()
	x0, y0, x1, _ := vp.cellSpan(paddle.Rect)
	s.FillRect(x0, y0, x1-x0+1, 1, '▀', core.ColorBrightWhite)

	ball := sess.Ball()
	bx, by := vp.toCell(ball.Rect.CenterX(), ball.Rect.CenterY())
	s.SetColored(bx, by, '●', core.ColorBrightCyan)
}

func drawHUD(s *core.Screen, sess *engine.Session, highScore int, muted bool) {
	left := fmt.Sprintf(" SCORE %d", sess.Score())
	s.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	mid := fmt.Sprintf("LVL %d/%d", sess.Level(), sess.Config().Gameplay.MaxLevels)
	s.DrawTextCenteredColored(0, mid, core.ColorGray)

	lives := ""
	for i := 0; i < sess.Lives(); i++ {
		lives += "♥"
	}
	right := fmt.Sprintf("HI %d  %s ", highScore, lives)
	if muted {
		right = "[mute] " + right
	}
	s.DrawTextColored(s.Width()-len([]rune(right)), 0, right, core.ColorBrightRed)
}

func drawMenu(s *core.Screen, sess *engine.Session, vp viewport, highScore int, topScores []int) {
	h := s.Height()

	titleY := h / 5
	s.DrawTextCenteredColored(titleY, "A R K A N O I D", core.ColorBrightCyan)

	if highScore > 0 {
		s.DrawTextCenteredColored(titleY+2, fmt.Sprintf("HIGH SCORE %d", highScore), core.ColorBrightYellow)
	}

	// The clickable play button mirrors the engine's menu hit region.
	region := sess.PlayRegion()
	x0, y0, x1, y1 := vp.cellSpan(region)
	s.DrawBox(x0, y0, x1-x0+1, y1-y0+1)
	midY := (y0 + y1) / 2
	s.DrawTextCenteredColored(midY, "PLAY", core.ColorBrightGreen)

	s.DrawTextCenteredColored(y1+2, "space or click to play", core.ColorGray)
	s.DrawTextCenteredColored(y1+3, "a/d or arrows move, m mutes, esc quits", core.ColorGray)

	line := y1 + 5
	for i, score := range topScores {
		if i >= menuLeaderboardSize || line >= h {
			break
		}
		s.DrawTextCenteredColored(line, fmt.Sprintf("%d. %d", i+1, score), core.ColorGray)
		line++
	}
}

// drawOverlay prints a two-line banner over the frozen playfield.
func drawOverlay(s *core.Screen, title, subtitle string) {
	y := s.Height() / 2
	s.DrawTextCenteredColored(y-1, title, core.ColorBrightYellow)
	s.DrawTextCenteredColored(y+1, subtitle, core.ColorGray)
}
