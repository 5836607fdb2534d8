package core

// Action represents a semantic game action, abstracted from physical key presses.
// Drivers translate keys (Ebiten, raylib, terminal) into actions so the game
// never sees a key code.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space - start, jump, restart
	ActionQuit              // Q, Ctrl+C - exit (terminal renditions)
	ActionScreenshot        // Ctrl+S - dump the terminal frame to disk
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// An action is present only on the tick its key went from released to pressed.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// JumpFrame is shorthand for a frame holding only ActionJump.
func JumpFrame() InputFrame {
	f := NewInputFrame()
	f.Set(ActionJump)
	return f
}
