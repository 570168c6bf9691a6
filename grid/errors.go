package grid

import "errors"

var (
	// ErrMalformedInput reports grid text with zero rows or ragged rows.
	ErrMalformedInput = errors.New("malformed grid text")

	// ErrOutOfRange reports a coordinate outside the grid's dimensions.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrCharNotFound reports that the target character is absent from
	// the grid.
	ErrCharNotFound = errors.New("character not found")

	// ErrInvalidDirection reports an unrecognized direction name or
	// path letter.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrOutOfBounds reports that a computed destination or look-ahead
	// position lies outside the grid. Callers of Move and Look are
	// expected to branch on it with errors.Is as an ordinary outcome.
	ErrOutOfBounds = errors.New("out of bounds")
)
