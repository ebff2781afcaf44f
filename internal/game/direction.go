package game

import "fmt"

// Direction is the heading of the snake's head.
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

var directionNames = [...]string{
	Right: "right",
	Left:  "left",
	Up:    "up",
	Down:  "down",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the head offset for one step of the given unit size. The y
// axis grows downwards, as on screen.
func (d Direction) Delta(unit int) (dx, dy int) {
	switch d {
	case Right:
		return unit, 0
	case Left:
		return -unit, 0
	case Up:
		return 0, -unit
	default:
		return 0, unit
	}
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a direction name.
func (d *Direction) UnmarshalText(b []byte) error {
	for i, name := range directionNames {
		if name == string(b) {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", b)
}

// RunState reports whether a run is in progress.
type RunState uint8

const (
	Running RunState = iota
	GameOver
)

func (r RunState) String() string {
	if r == GameOver {
		return "game_over"
	}
	return "running"
}

// MarshalText encodes the run state by name.
func (r RunState) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a run state name.
func (r *RunState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "running":
		*r = Running
	case "game_over":
		*r = GameOver
	default:
		return fmt.Errorf("unknown run state %q", b)
	}
	return nil
}

// Cause records what ended a run.
type Cause string

const (
	CauseNone Cause = ""
	CauseWall Cause = "wall"
	CauseSelf Cause = "self"
)
