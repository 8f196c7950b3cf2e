package dragon

// Direction is one of the four movement intents.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Input is everything the session consumes in one tick.
type Input struct {
	Pressed  []Direction // Directions whose key went down this tick, in order
	Released []Direction // Directions whose key went up this tick
	Restart  bool        // Only honored while the player has won
	Quit     bool
}

// Intent holds the movement flags. Pressing a direction cancels its
// opposite, so the last pressed key on each axis wins.
type Intent struct {
	Left, Right, Up, Down bool
}

// Press sets d and clears the opposite direction.
func (in *Intent) Press(d Direction) {
	switch d {
	case DirLeft:
		in.Right = false
		in.Left = true
	case DirRight:
		in.Left = false
		in.Right = true
	case DirUp:
		in.Down = false
		in.Up = true
	case DirDown:
		in.Up = false
		in.Down = true
	}
}

// Release clears d.
func (in *Intent) Release(d Direction) {
	switch d {
	case DirLeft:
		in.Left = false
	case DirRight:
		in.Right = false
	case DirUp:
		in.Up = false
	case DirDown:
		in.Down = false
	}
}

// Moving reports whether any direction is held.
func (in Intent) Moving() bool {
	return in.Left || in.Right || in.Up || in.Down
}
