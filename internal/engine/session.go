package engine

import (
	"math"
	"math/rand"

	"github.com/breakline/arkanoid/internal/config"
	"github.com/breakline/arkanoid/internal/core"
	"github.com/breakline/arkanoid/internal/geom"
	"github.com/breakline/arkanoid/internal/levels"
)

// Phase is the session's top-level state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseOver // Terminal; Outcome distinguishes defeat from victory
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome distinguishes how a finished session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// Session is one play-through of the game: the single source of truth for
// all entity and bookkeeping state. It is owned by the frame loop and must
// only be touched from that goroutine.
type Session struct {
	cfg      config.GameConfig
	provider levels.Provider
	recorder ScoreRecorder
	rng      *rand.Rand

	phase   Phase
	outcome Outcome

	score           int
	lives           int
	level           int
	bricksRemaining int

	paddle       Paddle
	ball         Ball
	bricks       []Brick // Row-major, rows*cols
	collectibles []Collectible

	moveDir float64 // Input-driven paddle intent for the next step, -1..1
	events  []Event // Scratch buffer reused across steps
}

// NewSession creates a session in the Menu phase. provider must not be nil;
// recorder may be nil (scores are then simply not persisted).
func NewSession(cfg config.GameConfig, provider levels.Provider, recorder ScoreRecorder, seed int64) *Session {
	s := &Session{
		cfg:      cfg,
		provider: provider,
		recorder: recorder,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.Reset()
	return s
}

// Reset performs a full game reset: score 0, initial lives, level 1, bricks
// repopulated, ball held, menu shown.
func (s *Session) Reset() {
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.level = 1
	s.phase = PhaseMenu
	s.outcome = OutcomeNone
	s.paddle = Paddle{
		Rect: geom.NewRect(
			(s.cfg.Field.Width-s.cfg.Paddle.Width)/2,
			s.cfg.Field.Height-s.cfg.Paddle.BottomOffset,
			s.cfg.Paddle.Width,
			s.cfg.Paddle.Height,
		),
	}
	s.resetLevel(s.level)
}

// resetLevel repopulates the brick grid from the level provider, recenters
// the paddle and re-arms the ball. Score and lives are untouched.
func (s *Session) resetLevel(level int) {
	layout := s.provider.LayoutFor(level)

	rows, cols := s.cfg.Bricks.Rows, s.cfg.Bricks.Columns
	slotW := s.cfg.Field.Width / float64(cols)
	pad := s.cfg.Bricks.Padding

	s.bricks = make([]Brick, rows*cols)
	alive := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := layout.At(r, c)
			brick := Brick{
				Rect: geom.NewRect(
					float64(c)*slotW+pad/2,
					s.cfg.Bricks.TopOffset+float64(r)*(s.cfg.Bricks.Height+pad),
					slotW-pad,
					s.cfg.Bricks.Height-pad,
				),
				Alive:   cell.Alive,
				Color:   cell.Color,
				Special: cell.Special,
			}
			if brick.Alive {
				alive++
			}
			s.bricks[r*cols+c] = brick
		}
	}
	s.bricksRemaining = alive

	s.centerPaddle()
	s.rearmBall()
	s.collectibles = s.collectibles[:0]
}

// centerPaddle returns the paddle to the middle of the field, preserving its
// current width.
func (s *Session) centerPaddle() {
	s.paddle.Rect.X = (s.cfg.Field.Width - s.paddle.Rect.W) / 2
	s.paddle.Rect.Y = s.cfg.Field.Height - s.cfg.Paddle.BottomOffset
	s.paddle.VelocityX = 0
}

// rearmBall puts the ball back on the paddle at initial speed, aimed
// straight up, waiting to be served.
func (s *Session) rearmBall() {
	size := s.cfg.Ball.Size
	s.ball = Ball{
		Rect:  geom.NewRect(0, 0, size, size),
		DirX:  0,
		DirY:  -1,
		Speed: s.cfg.Ball.Speed,
		Held:  true,
	}
	s.snapBallToPaddle()
}

// snapBallToPaddle centers the held ball just above the paddle.
func (s *Session) snapBallToPaddle() {
	s.ball.Rect.X = s.paddle.Rect.X + (s.paddle.Rect.W-s.ball.Rect.W)/2
	s.ball.Rect.Y = s.paddle.Rect.Y - s.ball.Rect.H - 2
}

// serve releases the held ball at a random angle within the configured
// spread from vertical. The angle comes from the session's seeded RNG, so a
// given seed replays identically.
func (s *Session) serve() {
	spread := s.cfg.Ball.ServeSpreadDeg * math.Pi / 180
	angle := (s.rng.Float64()*2 - 1) * spread
	s.ball.DirX = math.Sin(angle)
	s.ball.DirY = -math.Abs(math.Cos(angle))
	s.ball.Held = false
}

// startPlay enters the Playing phase from the menu, rebuilding the current
// level's bricks and re-arming the ball. Score, lives and level carry over,
// which makes the soft escape-to-menu path resumable at the same level. A
// finished session cannot be resumed: once an outcome is recorded, entering
// play starts a fresh game.
func (s *Session) startPlay() {
	if s.outcome != OutcomeNone {
		s.Reset()
	} else {
		s.resetLevel(s.level)
	}
	s.phase = PhasePlaying
}

// restart performs a full reset and goes straight into play.
func (s *Session) restart() {
	s.Reset()
	s.startPlay()
}

// terminate ends the session with the given outcome and reports the final
// score to the recorder exactly once.
func (s *Session) terminate(outcome Outcome) {
	s.phase = PhaseOver
	s.outcome = outcome
	if s.recorder != nil {
		s.recorder.Record(s.score)
	}
	kind := EventSessionLost
	if outcome == OutcomeWon {
		kind = EventSessionWon
	}
	s.emit(Event{Kind: kind, Score: s.score})
}

// HandleInput applies one frame of input to the state machine. It returns
// true when the caller should quit the outer loop (hard quit, or escape
// pressed while the menu is showing).
//
// The primary action is context sensitive, resolved by a single
// (phase, ballHeld) table: it starts play from the menu, serves a held
// ball, pauses free play, resumes from pause, and restarts a finished
// session.
func (s *Session) HandleInput(in core.InputFrame) (quit bool) {
	if in.Has(core.ActionQuit) {
		return true
	}

	if in.Has(core.ActionEscape) {
		switch s.phase {
		case PhaseMenu:
			return true
		default:
			s.phase = PhaseMenu
		}
	}

	if in.Has(core.ActionRestart) && (s.phase == PhaseMenu || s.phase == PhaseOver) {
		s.restart()
	}

	if in.Has(core.ActionPrimary) {
		s.primaryAction()
	}

	// Paddle control is live in every phase where it is meaningful.
	var dir float64
	if in.Has(core.ActionLeft) {
		dir -= 1
	}
	if in.Has(core.ActionRight) {
		dir += 1
	}
	s.moveDir = dir

	if in.PointerMoved {
		s.paddle.Rect.X = geom.Clamp(
			in.PointerX-s.paddle.Rect.W/2,
			0,
			s.cfg.Field.Width-s.paddle.Rect.W,
		)
		if s.ball.Held {
			s.snapBallToPaddle()
		}
	}

	if in.Clicked && (s.phase == PhaseMenu || s.phase == PhaseOver) {
		if s.PlayRegion().Contains(in.ClickX, in.ClickY) {
			s.primaryAction()
		}
	}

	return false
}

// primaryAction resolves the context-sensitive primary key.
func (s *Session) primaryAction() {
	switch s.phase {
	case PhaseMenu:
		s.startPlay()
	case PhaseOver:
		s.restart()
	case PhasePaused:
		s.phase = PhasePlaying
	case PhasePlaying:
		if s.ball.Held {
			s.serve()
		} else {
			s.phase = PhasePaused
		}
	}
}

// PlayRegion is the menu's clickable "play" area, in field coordinates.
func (s *Session) PlayRegion() geom.Rect {
	const w, h = 220, 72
	return geom.NewRect(
		(s.cfg.Field.Width-w)/2,
		s.cfg.Field.Height*0.25+180,
		w,
		h,
	)
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Accessors used by the presentation layer and tests. The returned slices
// alias session state and must not be mutated.

// Phase returns the current state-machine phase.
func (s *Session) Phase() Phase { return s.phase }

// Outcome returns how a finished session ended (OutcomeNone while running).
func (s *Session) Outcome() Outcome { return s.outcome }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// BricksRemaining returns the count of live bricks in the current level.
func (s *Session) BricksRemaining() int { return s.bricksRemaining }

// Paddle returns the current paddle state.
func (s *Session) Paddle() Paddle { return s.paddle }

// Ball returns the current ball state.
func (s *Session) Ball() Ball { return s.ball }

// Bricks returns the row-major brick grid.
func (s *Session) Bricks() []Brick { return s.bricks }

// Collectibles returns the falling pickups currently in flight.
func (s *Session) Collectibles() []Collectible { return s.collectibles }

// GridSize returns the brick grid dimensions.
func (s *Session) GridSize() (rows, cols int) {
	return s.cfg.Bricks.Rows, s.cfg.Bricks.Columns
}

// BrickAt returns the brick at (row, col), or nil if out of range.
func (s *Session) BrickAt(row, col int) *Brick {
	rows, cols := s.GridSize()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return nil
	}
	return &s.bricks[row*cols+col]
}

// Config returns the session's configuration.
func (s *Session) Config() config.GameConfig { return s.cfg }
