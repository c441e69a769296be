package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, H, Left arrow
	ActionUp             // W, K, Up arrow
	ActionRight          // D, L, Right arrow
	ActionDown           // S, J, Down arrow
	ActionRestart        // R key - restart after game over
	ActionPause          // P - pause/unpause (handled by the host)
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input sampled for one simulation tick.
// Directional input keeps only the most recent press, so several key
// presses between two ticks still produce at most one turn.
type InputFrame struct {
	// Actions maps non-directional actions to whether they were triggered.
	Actions map[Action]bool

	dir    Direction
	hasDir bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
// Directional actions replace any earlier direction in the same frame.
func (f *InputFrame) Set(a Action) {
	if d, ok := a.Direction(); ok {
		f.dir = d
		f.hasDir = true
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if d, ok := a.Direction(); ok {
		return f.hasDir && f.dir == d
	}
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the sampled direction, if any.
func (f InputFrame) Direction() (Direction, bool) {
	return f.dir, f.hasDir
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.hasDir = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.dir = f.dir
	clone.hasDir = f.hasDir
	return clone
}

// Direction maps a directional action to a grid direction.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionLeft:
		return DirLeft, true
	case ActionUp:
		return DirUp, true
	case ActionRight:
		return DirRight, true
	case ActionDown:
		return DirDown, true
	default:
		return 0, false
	}
}
