package core

import "maps"

// Action is what a key means to a game, independent of the key itself.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionRestart // Only acted on after a win
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

// String returns the action name.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// IsMove reports whether a is one of the four directions.
func (a Action) IsMove() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame collects the input for one step: actions whose key went down
// and directions whose key went up. The zero value is ready to use.
type InputFrame struct {
	Actions  map[Action]bool
	Released map[Action]bool
}

// NewInputFrame creates an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Released: make(map[Action]bool),
	}
}

// Set records a press of a.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was pressed.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Release records that the key for direction a went up.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// IsReleased reports whether direction a was released.
func (f InputFrame) IsReleased(a Action) bool {
	return f.Released[a]
}

// Clear empties the frame, keeping its maps for the next step.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Released)
}

// Clone returns a deep copy.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	maps.Copy(c.Actions, f.Actions)
	maps.Copy(c.Released, f.Released)
	return c
}
