package core

// Action is a semantic input event, abstracted from physical key presses and
// mouse events. The platform maps terminal input to actions; the engine's
// state machine consumes them.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left
	ActionRight          // D, Right arrow - move paddle right
	ActionPrimary        // Space - context sensitive: start / serve / pause-toggle
	ActionEscape         // Esc - soft return to menu, or quit from the menu
	ActionRestart        // R - full game reset
	ActionMute           // M - toggle audio
	ActionQuit           // Q, Ctrl+C - hard quit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPrimary:
		return "Primary"
	case ActionEscape:
		return "Escape"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick: the set of discrete
// actions triggered since the previous tick, plus optional pointer events.
type InputFrame struct {
	Actions map[Action]bool

	// PointerX is the pointer's horizontal position in field coordinates.
	// Valid only when PointerMoved is true.
	PointerX     float64
	PointerMoved bool

	// ClickX/ClickY carry a pointer click in field coordinates.
	// Valid only when Clicked is true.
	ClickX, ClickY float64
	Clicked        bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records a pointer-move event at the given field x.
func (f *InputFrame) SetPointer(x float64) {
	f.PointerX = x
	f.PointerMoved = true
}

// SetClick records a pointer click at the given field position.
func (f *InputFrame) SetClick(x, y float64) {
	f.ClickX = x
	f.ClickY = y
	f.Clicked = true
}

// Clear resets all actions and pointer state for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerMoved = false
	f.Clicked = false
}
