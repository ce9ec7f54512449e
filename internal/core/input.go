package core

// Action represents a platform-level intent, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionRestart        // R after game over
	ActionFinish         // Enter after game over
	ActionQuit           // Ctrl+C, Esc
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionFinish:
		return "Finish"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did between two ticks.
// Actions are a set; Keys keeps raw key presses in arrival order so a game
// can apply them one by one when the tick fires.
type InputFrame struct {
	Actions map[Action]bool
	Keys    []string
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

// Press appends a raw key to the frame.
func (f *InputFrame) Press(key string) {
	f.Keys = append(f.Keys, key)
}

// Pending reports whether any raw key is waiting.
func (f InputFrame) Pending() bool {
	return len(f.Keys) > 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}
