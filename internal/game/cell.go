// Package game implements the Icebreaker rules engine: the board, the two
// players, and the move-then-break turn state machine. It contains pure logic
// with no external dependencies so the rules stay testable in isolation.
package game

import "fmt"

// Board dimensions. Fixed by the rules, not configurable.
const (
	Cols = 6
	Rows = 5
)

// Cell is a board coordinate: column in [0, Cols), row in [0, Rows).
type Cell struct {
	Col, Row int
}

// String formats the cell the way status messages display it.
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Col, c.Row)
}

// neighborOffsets are the 8 surrounding offsets, diagonals included.
// The (0, 0) offset is deliberately absent: a cell is not its own neighbor.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// inBounds reports whether c lies on the board.
func inBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < Cols && c.Row >= 0 && c.Row < Rows
}

// Neighbors returns the in-bounds cells adjacent to c, diagonals included.
func (c Cell) Neighbors() []Cell {
	result := make([]Cell, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Cell{Col: c.Col + off[0], Row: c.Row + off[1]}
		if inBounds(n) {
			result = append(result, n)
		}
	}
	return result
}
