package grid

import "fmt"

// Move displaces target one cell in the given direction and returns the
// resulting grid as text. Left and right change the column, up and down
// change the row. The vacated cell is written with fill and every other
// cell is unchanged.
//
// A destination outside the grid fails with ErrOutOfBounds; an absent
// target fails with ErrCharNotFound. The receiver is never mutated, so
// the original grid stays valid on every error path.
func (g *Grid) Move(target rune, dir Direction, fill rune) (string, error) {
	from, ok := g.Find(target)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrCharNotFound, string(target))
	}

	to := from
	switch dir {
	case Left:
		to.X--
	case Right:
		to.X++
	case Up:
		to.Y--
	case Down:
		to.Y++
	default:
		return "", fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}

	if !g.contains(to.X, to.Y) {
		return "", fmt.Errorf("%w: %v to (%d,%d) in %dx%d grid",
			ErrOutOfBounds, dir, to.X, to.Y, g.width, g.height)
	}

	rows := make([][]rune, g.height)
	for y, row := range g.rows {
		rows[y] = append([]rune(nil), row...)
	}
	rows[to.Y][to.X] = target
	rows[from.Y][from.X] = fill

	out := &Grid{rows: rows, width: g.width, height: g.height}
	return out.String(), nil
}

// Look walks from target along path, one letter per step: U decrements
// the row, D increments it, L decrements the column, R increments it.
// Letters outside UDLR fail with ErrInvalidDirection. Only the final
// position is bounds-checked, so a path may leave the grid transiently
// and come back. A final position inside the grid returns the character
// there; outside fails with ErrOutOfBounds.
func (g *Grid) Look(target rune, path string) (rune, error) {
	pos, ok := g.Find(target)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCharNotFound, string(target))
	}

	for _, letter := range path {
		switch letter {
		case 'U':
			pos.Y--
		case 'D':
			pos.Y++
		case 'L':
			pos.X--
		case 'R':
			pos.X++
		default:
			return 0, fmt.Errorf("%w: path letter %q, use UDLR", ErrInvalidDirection, string(letter))
		}
	}

	if !g.contains(pos.X, pos.Y) {
		return 0, fmt.Errorf("%w: path %q ends at (%d,%d) in %dx%d grid",
			ErrOutOfBounds, path, pos.X, pos.Y, g.width, g.height)
	}
	return g.rows[pos.Y][pos.X], nil
}
