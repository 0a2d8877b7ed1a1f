package core

// Direction is a cardinal movement direction.
// The zero value DirNone means "no direction committed yet".
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Directions lists the four cardinal directions in clockwise order.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Delta returns the unit step for the direction in screen coordinates (y grows downward).
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Rotate turns the direction clockwise by quarter turns (negative turns go counter-clockwise).
// DirNone stays DirNone.
func (d Direction) Rotate(turns int) Direction {
	if d == DirNone {
		return DirNone
	}
	idx := (int(d-DirUp) + turns) % 4
	if idx < 0 {
		idx += 4
	}
	return Directions[idx]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return d.Rotate(2)
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection converts "up", "down", "left" or "right" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return DirNone, false
}

// Action represents a semantic command, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionMove               // Arrows, WASD - one step in a direction
	ActionHold               // H/J/K/L - start repeating moves in a direction
	ActionStop               // Space - stop repeating moves
	ActionAcknowledge        // Enter - dismiss the hit popup
	ActionRestart            // R - restart after game over or win
	ActionQuit               // Q, Ctrl+C - exit
	ActionScreenshot         // Ctrl+S - save a text screenshot
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMove:
		return "Move"
	case ActionHold:
		return "Hold"
	case ActionStop:
		return "Stop"
	case ActionAcknowledge:
		return "Acknowledge"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
