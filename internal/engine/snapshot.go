package engine

import "math"

// Snapshot captures the full simulation state using primitive types, for
// determinism tests and session bookkeeping. Float fields are stored as raw
// IEEE-754 bits so that two snapshots hash equal only when the simulations
// are bit-identical.
type Snapshot struct {
	Phase   int
	Outcome int

	Score           int
	Lives           int
	Level           int
	BricksRemaining int

	PaddleX, PaddleW uint64
	BallX, BallY     uint64
	BallDirX         uint64
	BallDirY         uint64
	BallSpeed        uint64
	BallHeld         bool

	// Brick states, row-major: bit 0 alive, bit 1 special.
	BrickData []uint8

	CollectibleCount int
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	brickData := make([]uint8, len(s.bricks))
	for i, b := range s.bricks {
		var v uint8
		if b.Alive {
			v |= 1
		}
		if b.Special {
			v |= 2
		}
		brickData[i] = v
	}

	live := 0
	for _, c := range s.collectibles {
		if c.Alive {
			live++
		}
	}

	return Snapshot{
		Phase:           int(s.phase),
		Outcome:         int(s.outcome),
		Score:           s.score,
		Lives:           s.lives,
		Level:           s.level,
		BricksRemaining: s.bricksRemaining,

		PaddleX: math.Float64bits(s.paddle.Rect.X),
		PaddleW: math.Float64bits(s.paddle.Rect.W),

		BallX:     math.Float64bits(s.ball.Rect.X),
		BallY:     math.Float64bits(s.ball.Rect.Y),
		BallDirX:  math.Float64bits(s.ball.DirX),
		BallDirY:  math.Float64bits(s.ball.DirY),
		BallSpeed: math.Float64bits(s.ball.Speed),
		BallHeld:  s.ball.Held,

		BrickData:        brickData,
		CollectibleCount: live,
	}
}

// Hash folds the snapshot into a single value for cheap equality checks in
// determinism tests.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}

	mix(uint64(snap.Phase))
	mix(uint64(snap.Outcome))
	mix(uint64(snap.Score))
	mix(uint64(snap.Lives))
	mix(uint64(snap.Level))
	mix(uint64(snap.BricksRemaining))
	mix(snap.PaddleX)
	mix(snap.PaddleW)
	mix(snap.BallX)
	mix(snap.BallY)
	mix(snap.BallDirX)
	mix(snap.BallDirY)
	mix(snap.BallSpeed)
	if snap.BallHeld {
		mix(1)
	}
	for _, v := range snap.BrickData {
		mix(uint64(v))
	}
	mix(uint64(snap.CollectibleCount))

	return h
}
