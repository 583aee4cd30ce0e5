package game

// occupied reports whether any player currently stands on c.
func (e *Engine) occupied(c Cell) bool {
	return e.players[0].Pos == c || e.players[1].Pos == c
}

// CanMove reports whether the given player may step onto target: target must
// be in bounds, one of the 8 cells surrounding the player, unbroken, and not
// occupied by either player.
func (e *Engine) CanMove(id PlayerID, target Cell) bool {
	if !e.board.InBounds(target) {
		return false
	}
	if !e.players[id].AdjacentDiagonal(target) {
		return false
	}
	if e.board.IsBroken(target) {
		return false
	}
	return !e.occupied(target)
}

// canBreak reports whether the pending-break player may break target: target
// must be unbroken, must not be the cell just moved onto, and must not be
// occupied by either player.
func (e *Engine) canBreak(target Cell) bool {
	if e.board.IsBroken(target) {
		return false
	}
	if e.origin != nil && target == *e.origin {
		return false
	}
	return !e.occupied(target)
}

// Trapped reports whether the given player has no legal move: every in-bounds
// neighbor of their position is broken or occupied.
func (e *Engine) Trapped(id PlayerID) bool {
	pos := e.players[id].Pos
	for _, off := range neighborOffsets {
		n := Cell{Col: pos.Col + off[0], Row: pos.Row + off[1]}
		if e.CanMove(id, n) {
			return false
		}
	}
	return true
}
