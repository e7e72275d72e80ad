package audio

import (
	"github.com/breakline/arkanoid/internal/engine"
)

// HandleEvents maps a step's event batch onto sound effects.
func (p *Player) HandleEvents(events []engine.Event) {
	for _, e := range events {
		switch e.Kind {
		case engine.EventWallBounce:
			p.WallBounce()
		case engine.EventPaddleBounce:
			p.PaddleBounce()
		case engine.EventBrickBreak:
			p.BrickBreak(e.Color)
		case engine.EventCollectibleCaught:
			p.CollectibleCaught()
		case engine.EventLifeLost:
			p.LifeLost()
		case engine.EventLevelCleared:
			p.LevelCleared()
		case engine.EventSessionWon:
			p.SessionWon()
		case engine.EventSessionLost:
			p.SessionLost()
		}
	}
}
