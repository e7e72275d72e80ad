// Package engine implements the arkanoid physics and game-state core: ball,
// paddle and brick collision resolution, score/life/level bookkeeping, and
// the menu/play/pause/over state machine. It is pure simulation -- rendering,
// audio and persistence are collaborators behind small interfaces.
package engine

import "github.com/breakline/arkanoid/internal/geom"

// Paddle is the player's paddle. It is owned exclusively by the session and
// stays clamped to the horizontal field bounds.
type Paddle struct {
	Rect      geom.Rect
	VelocityX float64
}

// Ball is the single game ball. While Held, its position is slaved to the
// paddle each tick and the direction is ignored for movement. Once served,
// (DirX, DirY) is a unit vector and Speed is the scalar multiplied in on
// each advance.
type Ball struct {
	Rect       geom.Rect
	DirX, DirY float64
	Speed      float64
	Held       bool
}

// Brick is one cell of the level grid. A brick is destroyed at most once;
// it is never resurrected within a level.
type Brick struct {
	Rect    geom.Rect
	Alive   bool
	Color   int // Palette index, 0..9
	Special bool
}

// Collectible is a falling power-up dropped by a special brick. Catching it
// with the paddle widens the paddle.
type Collectible struct {
	Rect  geom.Rect
	VY    float64
	Alive bool
}
