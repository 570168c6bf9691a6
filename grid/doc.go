// Package grid implements a coordinate-addressable character grid backed
// by newline-delimited text.
//
// The grid package implements:
//   - Construction and validation of rectangular character grids
//   - Random-access character lookup by (column, row) coordinate
//   - Row-major search for a character's position
//   - Single-step character moves in a cardinal direction
//   - Multi-step look-ahead along a path of direction letters
//
// Core Types:
//
// Grid is an immutable parsed grid; Position is a zero-based
// (column, row) pair; Direction is a parsed cardinal direction.
//
// Usage:
//
//	g, err := grid.New("...\n.X.\n...")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	next, err := g.Move('X', grid.Up, grid.DefaultFill)
//	if errors.Is(err, grid.ErrOutOfBounds) {
//		// the move would leave the grid; g is unchanged
//	}
//
// Moves never mutate the receiver. Move returns the updated grid as
// text; wrap it with New to keep operating on it.
package grid
