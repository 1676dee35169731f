package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // W, Up arrow - move the cursor up
	ActionDown                  // S, Down arrow - move the cursor down
	ActionLeft                  // A, Left arrow - move the cursor left
	ActionRight                 // D, Right arrow - move the cursor right
	ActionLevelUp               // [ - select a larger block
	ActionLevelDown             // ] - select a smaller block
	ActionRotateCW              // E - rotate clockwise
	ActionRotateCCW             // Q - rotate counter-clockwise
	ActionSwapHorizontal        // H - swap left/right
	ActionSwapVertical          // V - swap top/bottom
	ActionSmash                 // X - smash
	ActionCombine               // C - combine
	ActionPaint                 // F - paint
	ActionPass                  // Tab - pass the turn
	ActionTrigger               // Space, click - let the computer player move
	ActionPause                 // P - pause/unpause
	ActionRestart               // R - new game
	ActionQuit                  // Ctrl+C, Esc - exit
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
	case ActionLevelUp:
		return "LevelUp"
	case ActionLevelDown:
		return "LevelDown"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSwapHorizontal:
		return "SwapHorizontal"
	case ActionSwapVertical:
		return "SwapVertical"
	case ActionSmash:
		return "Smash"
	case ActionCombine:
		return "Combine"
	case ActionPaint:
		return "Paint"
	case ActionPass:
		return "Pass"
	case ActionTrigger:
		return "Trigger"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is a mouse position in screen cells.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the last mouse position seen this frame, or nil.
	Pointer *Pointer
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

// SetPointer records a mouse position for this frame.
func (f *InputFrame) SetPointer(x, y int) {
	f.Pointer = &Pointer{X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Pointer != nil {
		p := *f.Pointer
		clone.Pointer = &p
	}
	return clone
}
