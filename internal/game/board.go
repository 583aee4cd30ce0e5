package game

// Board tracks which ice tiles have been broken. Broken tiles are impassable
// and unoccupiable for the remainder of a game; the set only grows until the
// next Reset. Legality of breaking a given tile is the engine's concern, not
// the board's.
type Board struct {
	broken map[Cell]struct{}
}

// NewBoard creates an empty board with all ice intact.
func NewBoard() *Board {
	return &Board{
		broken: make(map[Cell]struct{}),
	}
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Cell) bool {
	return inBounds(c)
}

// IsBroken reports whether the ice at c has been broken.
func (b *Board) IsBroken(c Cell) bool {
	_, ok := b.broken[c]
	return ok
}

// Break marks the ice at c as broken. Idempotent; callers must have already
// validated legality.
func (b *Board) Break(c Cell) {
	b.broken[c] = struct{}{}
}

// BrokenCount returns the number of broken tiles.
func (b *Board) BrokenCount() int {
	return len(b.broken)
}

// BrokenCells returns the broken tiles in no particular order.
func (b *Board) BrokenCells() []Cell {
	cells := make([]Cell, 0, len(b.broken))
	for c := range b.broken {
		cells = append(cells, c)
	}
	return cells
}

// Reset restores all ice.
func (b *Board) Reset() {
	b.broken = make(map[Cell]struct{})
}
