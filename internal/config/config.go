// Package config provides YAML-based game configuration loading and
// difficulty presets for the arkanoid engine. All tuning constants live
// here; the engine itself carries no magic numbers.
package config

// GameConfig contains every tunable parameter of a game session.
// Distances and speeds are expressed in field units (the engine simulates a
// fixed virtual field; the presentation layer scales to the terminal).
type GameConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BrickConfig    `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// FieldConfig defines the virtual play-field dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Field units per second under key input

	// BottomOffset is the distance from the field's bottom edge to the
	// paddle's top edge.
	BottomOffset float64 `yaml:"bottom_offset"`
}

// BallConfig defines ball geometry and speed behavior.
type BallConfig struct {
	Size  float64 `yaml:"size"`  // Side length of the square ball rect
	Speed float64 `yaml:"speed"` // Initial scalar speed, field units per second

	// PaddleGrowth and BrickGrowth are per-collision speed multipliers,
	// applied on paddle hits and brick hits respectively. They are
	// configured independently; growth is multiplicative and uncapped.
	PaddleGrowth float64 `yaml:"paddle_growth"`
	BrickGrowth  float64 `yaml:"brick_growth"`

	// MaxBounceDeg is the maximum deflection from vertical, in degrees,
	// when the ball strikes the paddle's outer edge.
	MaxBounceDeg float64 `yaml:"max_bounce_deg"`

	// ServeSpreadDeg is the half-range of the random serve angle, in
	// degrees from vertical.
	ServeSpreadDeg float64 `yaml:"serve_spread_deg"`
}

// BrickConfig defines the brick grid layout and scoring.
type BrickConfig struct {
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`

	// TopOffset is the distance from the field's top edge to the first
	// brick row.
	TopOffset float64 `yaml:"top_offset"`

	// Score is the base score per destroyed brick; the engine multiplies
	// it by the current level.
	Score int `yaml:"score"`
}

// GameplayConfig defines session-level rules.
type GameplayConfig struct {
	Lives           int `yaml:"lives"`
	MaxLevels       int `yaml:"max_levels"`
	LeaderboardSize int `yaml:"leaderboard_size"`
}

// DifficultyPreset is a named difficulty level applied over a loaded config.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset; unknown strings map to empty.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset adjusts the gameplay parameters for a difficulty preset.
// "fixed" and "normal" leave the loaded config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 180
		cfg.Ball.Speed = 340
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 100
		cfg.Ball.Speed = 500
	}
}
