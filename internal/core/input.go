package core

// Action is a semantic input intent, independent of physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Move the cursor up
	ActionDown            // Move the cursor down
	ActionLeft            // Move the cursor left
	ActionRight           // Move the cursor right
	ActionSelect          // Pick the block under the cursor
	ActionCancel          // Drop the current pick
	ActionRestart         // Regenerate the board from its seed
	ActionNewBoard        // Generate a board with a fresh seed
	ActionLoad            // Generate a board from InputFrame.Seed
	ActionSave            // Record a report, then start a fresh board
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionNewBoard:
		return "NewBoard"
	case ActionLoad:
		return "Load"
	case ActionSave:
		return "Save"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input collected during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool

	// Seed is the board seed requested by ActionLoad.
	Seed int64
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

// Load requests a board generated from seed.
func (f *InputFrame) Load(seed int64) {
	f.Set(ActionLoad)
	f.Seed = seed
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Seed = 0
}
