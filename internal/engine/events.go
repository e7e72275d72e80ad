package engine

// EventKind identifies a discrete engine event emitted during a step.
// The presentation layer consumes events to trigger sounds and particles;
// the engine never depends on whether anyone listens.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventPaddleBounce
	EventBrickBreak
	EventCollectibleCaught
	EventLifeLost
	EventLevelCleared
	EventSessionWon
	EventSessionLost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleBounce:
		return "paddle-bounce"
	case EventBrickBreak:
		return "brick-break"
	case EventCollectibleCaught:
		return "collectible-caught"
	case EventLifeLost:
		return "life-lost"
	case EventLevelCleared:
		return "level-cleared"
	case EventSessionWon:
		return "session-won"
	case EventSessionLost:
		return "session-lost"
	default:
		return "unknown"
	}
}

// Event is a discrete outcome of one simulation step.
// Row/Col/Color and X/Y are set for brick breaks (X/Y is the brick center,
// where particles spawn); Level is set for level-cleared; Score is set for
// the terminal events.
type Event struct {
	Kind  EventKind
	Row   int
	Col   int
	Color int
	X, Y  float64
	Level int
	Score int
}

// ScoreRecorder receives the final score of a finished session.
// Implementations must tolerate repeated process runs; the engine guarantees
// at most one Record call per session.
type ScoreRecorder interface {
	Record(score int)
}
