package grid

import (
	"fmt"
	"strings"
)

// DefaultFill is the character written into a vacated cell when the
// caller does not choose one.
const DefaultFill = '.'

// Position represents zero-based x,y coordinates, x being the column
// and y the row.
type Position struct {
	X int
	Y int
}

// Direction represents a single-step cardinal direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses a direction name case-insensitively. It returns
// ErrInvalidDirection for anything other than left, right, up or down.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(name) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
}
