package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration, used as the
// last-resort fallback if the embedded YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Field: FieldConfig{
			Width:  960,
			Height: 640,
		},
		Paddle: PaddleConfig{
			Width:        140,
			Height:       18,
			Speed:        800,
			BottomOffset: 64,
		},
		Ball: BallConfig{
			Size:           14,
			Speed:          420,
			PaddleGrowth:   1.0,
			BrickGrowth:    1.015,
			MaxBounceDeg:   75,
			ServeSpreadDeg: 60,
		},
		Bricks: BrickConfig{
			Rows:      7,
			Columns:   12,
			Height:    28,
			Padding:   4,
			TopOffset: 80,
			Score:     10,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			MaxLevels:       10,
			LeaderboardSize: 5,
		},
	}
}
