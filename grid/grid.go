package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular buffer of single characters parsed once from
// newline-delimited text. A Grid is never mutated after construction;
// operations that change cells return new grid text instead.
type Grid struct {
	rows   [][]rune
	width  int
	height int
}

// New parses grid text into a Grid. Rows are split on '\n'; the width is
// the rune length of the first row and every row must match it. Empty
// text and ragged rows fail with ErrMalformedInput.
func New(text string) (*Grid, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrMalformedInput)
	}

	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d characters, expected %d",
				ErrMalformedInput, i+1, len(row), width)
		}
	}

	return &Grid{
		rows:   rows,
		width:  width,
		height: len(rows),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// String returns the grid as newline-delimited text. It round-trips the
// text the Grid was constructed from.
func (g *Grid) String() string {
	var b strings.Builder
	for i, row := range g.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// At returns the character at column x, row y. Coordinates outside
// [0,width) x [0,height) fail with ErrOutOfRange.
func (g *Grid) At(x, y int) (rune, error) {
	if !g.contains(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfRange, x, y, g.width, g.height)
	}
	return g.rows[y][x], nil
}

// Find scans rows top-to-bottom and columns left-to-right for target and
// returns the first matching position. The second return value is false
// when target does not occur in the grid.
func (g *Grid) Find(target rune) (Position, bool) {
	for y, row := range g.rows {
		for x, ch := range row {
			if ch == target {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// contains reports whether (x, y) is a valid coordinate. The upper
// bounds are exclusive on both axes.
func (g *Grid) contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Make builds grid text of rows lines, each cols copies of ch. It is
// intended for fixtures and quick starting layouts. Non-positive
// dimensions fail with ErrMalformedInput.
func Make(rows, cols int, ch rune) (string, error) {
	if rows <= 0 || cols <= 0 {
		return "", fmt.Errorf("%w: %dx%d dimensions", ErrMalformedInput, cols, rows)
	}
	line := strings.Repeat(string(ch), cols)
	out := make([]string, rows)
	for i := range out {
		out[i] = line
	}
	return strings.Join(out, "\n"), nil
}
