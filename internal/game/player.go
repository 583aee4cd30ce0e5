package game

import (
	"fmt"

	"github.com/arcticode/icebreaker/internal/core"
)

// PlayerID identifies one of the two players and doubles as the turn
// indicator.
type PlayerID int

const (
	Player0 PlayerID = 0
	Player1 PlayerID = 1
)

// Other returns the opposing player's ID.
func (id PlayerID) Other() PlayerID {
	return 1 - id
}

// String returns the ID the way status messages display it.
func (id PlayerID) String() string {
	return fmt.Sprintf("PLAYER %d", int(id))
}

// startPositions are the opposite mid-edge cells of the 6x5 board.
var startPositions = [2]Cell{
	{Col: 0, Row: 2},
	{Col: 5, Row: 2},
}

// StartPosition returns the initial cell for the given player.
func StartPosition(id PlayerID) Cell {
	return startPositions[id]
}

// Player is a piece on the board. It holds position and a display color;
// movement legality is the engine's responsibility.
type Player struct {
	ID    PlayerID
	Pos   Cell
	Color core.Color
}

// NewPlayers creates both players at their starting positions.
func NewPlayers() [2]*Player {
	return [2]*Player{
		{ID: Player0, Pos: startPositions[0], Color: core.ColorRed},
		{ID: Player1, Pos: startPositions[1], Color: core.ColorBlue},
	}
}

// SetPosition relocates the player unconditionally.
func (p *Player) SetPosition(c Cell) {
	p.Pos = c
}

// AdjacentDiagonal reports whether c is one of the 8 cells surrounding the
// player's position (Chebyshev distance 1; the player's own cell does not
// count).
func (p *Player) AdjacentDiagonal(c Cell) bool {
	if c == p.Pos {
		return false
	}
	dc := core.Abs(c.Col - p.Pos.Col)
	dr := core.Abs(c.Row - p.Pos.Row)
	return dc <= 1 && dr <= 1
}
