// Package tui provides an interactive terminal view of a grid scenario.
//
// Run renders the grid with tcell and maps the arrow keys to moves of
// the scenario's actor character. Each successful move produces new grid
// text that is wrapped back into a grid before the next one, the same
// chaining a programmatic caller performs. Out-of-bounds moves leave the
// grid unchanged and report on the status line. Esc or q quits.
package tui
