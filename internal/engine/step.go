package engine

import (
	"math"

	"github.com/breakline/arkanoid/internal/geom"
)

// MaxStepSeconds caps the simulation delta per step. A frame hitch larger
// than this would let the ball tunnel through bricks, so the step is clamped
// rather than subdivided.
const MaxStepSeconds = 0.05

// Collectible tuning, from the original game: pickups fall at a fixed rate,
// widen the paddle by a fixed amount, and the paddle never exceeds half the
// field width.
const (
	collectibleSize      = 20.0
	collectibleFallSpeed = 60.0
	paddleWidenAmount    = 40.0
)

// Step advances the simulation by dt seconds and returns the events that
// occurred. The returned slice is reused by the next call; consume it before
// stepping again. Steps are skipped entirely unless the session is actively
// playing.
func (s *Session) Step(dt float64) []Event {
	s.events = s.events[:0]

	if s.phase != PhasePlaying {
		return s.events
	}
	if dt > MaxStepSeconds {
		dt = MaxStepSeconds
	}

	s.stepPaddle(dt)
	s.stepBall(dt)

	if !s.ball.Held {
		s.collideWalls()
		s.collidePaddle()
		s.collideBricks()
		s.checkBallLost()
	}
	s.checkLevelClear()
	s.stepCollectibles(dt)

	return s.events
}

// stepPaddle applies the input-driven velocity intent and clamps the paddle
// to the field.
func (s *Session) stepPaddle(dt float64) {
	s.paddle.VelocityX = s.moveDir * s.cfg.Paddle.Speed
	s.paddle.Rect.X = geom.Clamp(
		s.paddle.Rect.X+s.paddle.VelocityX*dt,
		0,
		s.cfg.Field.Width-s.paddle.Rect.W,
	)
}

// stepBall advances the ball, or snaps it to the paddle while held.
func (s *Session) stepBall(dt float64) {
	if s.ball.Held {
		s.snapBallToPaddle()
		return
	}
	s.ball.Rect.X += s.ball.DirX * s.ball.Speed * dt
	s.ball.Rect.Y += s.ball.DirY * s.ball.Speed * dt
}

// collideWalls bounces the ball off the left, right and top field edges,
// clamping position so the ball never escapes the field.
func (s *Session) collideWalls() {
	if s.ball.Rect.X <= 0 {
		s.ball.Rect.X = 0
		s.ball.DirX = math.Abs(s.ball.DirX)
		s.emit(Event{Kind: EventWallBounce})
	}
	if s.ball.Rect.Right() >= s.cfg.Field.Width {
		s.ball.Rect.X = s.cfg.Field.Width - s.ball.Rect.W
		s.ball.DirX = -math.Abs(s.ball.DirX)
		s.emit(Event{Kind: EventWallBounce})
	}
	if s.ball.Rect.Y <= 0 {
		s.ball.Rect.Y = 0
		s.ball.DirY = math.Abs(s.ball.DirY)
		s.emit(Event{Kind: EventWallBounce})
	}
}

// collidePaddle deflects a downward-moving ball off the paddle. The bounce
// angle is proportional to where the ball struck: dead center goes straight
// up, the outer edge deflects by the configured maximum from vertical. The
// ball is repositioned just above the paddle so the hit cannot re-trigger on
// the next step.
func (s *Session) collidePaddle() {
	if s.ball.DirY <= 0 || !geom.Overlaps(s.ball.Rect, s.paddle.Rect) {
		return
	}

	impact := (s.ball.Rect.CenterX() - s.paddle.Rect.CenterX()) / (s.paddle.Rect.W / 2)
	impact = geom.Clamp(impact, -1, 1)

	angle := impact * (s.cfg.Ball.MaxBounceDeg * math.Pi / 180)
	s.ball.DirX = math.Sin(angle)
	s.ball.DirY = -math.Cos(angle)
	s.ball.Speed *= s.cfg.Ball.PaddleGrowth
	s.ball.Rect.Y = s.paddle.Rect.Y - s.ball.Rect.H - 1

	s.emit(Event{Kind: EventPaddleBounce})
}

// collideBricks destroys at most one brick per step: the first live brick
// the ball overlaps in row-major scan order. Resolution pushes the ball out
// along the minimum-penetration axis and reflects the matching direction
// component.
func (s *Session) collideBricks() {
	idx := s.firstHitBrick()
	if idx < 0 {
		return
	}
	brick := &s.bricks[idx]

	axis, amount := geom.MinPenetration(s.ball.Rect, brick.Rect)
	switch axis {
	case geom.AxisLeft:
		s.ball.Rect.X -= amount
		s.ball.DirX = -math.Abs(s.ball.DirX)
	case geom.AxisRight:
		s.ball.Rect.X += amount
		s.ball.DirX = math.Abs(s.ball.DirX)
	case geom.AxisTop:
		s.ball.Rect.Y -= amount
		s.ball.DirY = -math.Abs(s.ball.DirY)
	case geom.AxisBottom:
		s.ball.Rect.Y += amount
		s.ball.DirY = math.Abs(s.ball.DirY)
	}

	brick.Alive = false
	s.bricksRemaining--
	s.score += s.cfg.Bricks.Score * s.level
	s.ball.Speed *= s.cfg.Ball.BrickGrowth

	_, cols := s.GridSize()
	s.emit(Event{
		Kind:  EventBrickBreak,
		Row:   idx / cols,
		Col:   idx % cols,
		Color: brick.Color,
		X:     brick.Rect.CenterX(),
		Y:     brick.Rect.CenterY(),
	})

	if brick.Special {
		brick.Special = false
		s.spawnCollectible(brick.Rect.CenterX(), brick.Rect.CenterY())
	}
}

// firstHitBrick returns the index of the first live brick overlapping the
// ball in row-major order, or -1 if there is none.
func (s *Session) firstHitBrick() int {
	for i := range s.bricks {
		if s.bricks[i].Alive && geom.Overlaps(s.ball.Rect, s.bricks[i].Rect) {
			return i
		}
	}
	return -1
}

// spawnCollectible drops a pickup centered on (x, y).
func (s *Session) spawnCollectible(x, y float64) {
	s.collectibles = append(s.collectibles, Collectible{
		Rect:  geom.NewRect(x-collectibleSize/2, y-collectibleSize/2, collectibleSize, collectibleSize),
		VY:    collectibleFallSpeed,
		Alive: true,
	})
}

// checkBallLost handles the ball falling past the bottom edge: a life is
// lost, and either the session terminates or the ball re-arms on a
// recentered paddle at initial speed.
func (s *Session) checkBallLost() {
	if s.ball.Rect.Y <= s.cfg.Field.Height {
		return
	}

	s.lives--
	if s.lives < 0 {
		s.lives = 0
	}
	s.emit(Event{Kind: EventLifeLost, X: s.ball.Rect.CenterX(), Y: s.cfg.Field.Height})

	if s.lives <= 0 {
		s.terminate(OutcomeLost)
		return
	}
	s.centerPaddle()
	s.rearmBall()
}

// checkLevelClear advances to the next level when the grid is cleared, or
// ends the session in victory past the final level.
func (s *Session) checkLevelClear() {
	if s.phase != PhasePlaying || s.bricksRemaining > 0 {
		return
	}

	s.level++
	s.emit(Event{Kind: EventLevelCleared, Level: s.level})

	if s.level > s.cfg.Gameplay.MaxLevels {
		s.terminate(OutcomeWon)
		return
	}
	s.resetLevel(s.level)
}

// stepCollectibles advances falling pickups and applies paddle catches.
// Purely additive: collectibles never affect ball collision outcomes.
func (s *Session) stepCollectibles(dt float64) {
	for i := range s.collectibles {
		c := &s.collectibles[i]
		if !c.Alive {
			continue
		}
		c.Rect.Y += c.VY * dt

		if c.Rect.Y > s.cfg.Field.Height {
			c.Alive = false
			continue
		}
		if geom.Overlaps(c.Rect, s.paddle.Rect) {
			c.Alive = false
			s.widenPaddle()
			s.emit(Event{Kind: EventCollectibleCaught, X: c.Rect.CenterX(), Y: c.Rect.CenterY()})
		}
	}
}

// widenPaddle grows the paddle, capped at half the field width.
func (s *Session) widenPaddle() {
	s.paddle.Rect.W += paddleWidenAmount
	if s.paddle.Rect.W > s.cfg.Field.Width/2 {
		s.paddle.Rect.W = s.cfg.Field.Width / 2
	}
	s.paddle.Rect.X = geom.Clamp(s.paddle.Rect.X, 0, s.cfg.Field.Width-s.paddle.Rect.W)
}
