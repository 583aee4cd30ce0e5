package game

import "fmt"

// Phase is the turn sub-phase of the engine.
type Phase int

const (
	// PhaseMove means the active player's next click selects a destination.
	PhaseMove Phase = iota
	// PhaseBreak means the active player has moved and their next click
	// selects a tile to break.
	PhaseBreak
	// PhaseOver means a player was trapped and the game has ended.
	PhaseOver
)

// Status messages emitted to the presentation layer.
const (
	StatusInvalid = "INVALID"
	StatusReset   = "RESET"
)

// Event reports the outcome of a single engine operation. The presentation
// layer uses it to update the status text region and recolor broken tiles.
type Event struct {
	Status  string
	Invalid bool  // The click was illegal; nothing changed.
	Moved   *Cell // Set when the active player relocated this click.
	Broken  *Cell // Set when a tile was broken this click.
	Over    bool  // The game has ended.
	Winner  PlayerID
	Reset   bool // The board was restored to its initial state.
}

// Engine is the move-then-break turn state machine. It holds references to
// the board and players but does not create them; a session constructs all
// three once per game.
type Engine struct {
	board   *Board
	players [2]*Player
	active  PlayerID
	phase   Phase
	// origin is the cell the mover just occupied, set only during
	// PhaseBreak. It mirrors the turn sub-phase.
	origin *Cell
	winner PlayerID
}

// NewEngine creates an engine over the given board and players, with player 0
// to move.
func NewEngine(board *Board, players [2]*Player) *Engine {
	return &Engine{
		board:   board,
		players: players,
	}
}

// Board returns the board the engine plays on.
func (e *Engine) Board() *Board {
	return e.board
}

// Player returns the player with the given ID.
func (e *Engine) Player(id PlayerID) *Player {
	return e.players[id]
}

// Active returns whose turn it is.
func (e *Engine) Active() PlayerID {
	return e.active
}

// Phase returns the current turn sub-phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Winner returns the winning player. Meaningful only once Phase is PhaseOver.
func (e *Engine) Winner() PlayerID {
	return e.winner
}

// Prompt returns the player-info text for the current state: the move prompt
// with the active player's coordinates, or the break-ice prompt. Empty once
// the game is over.
func (e *Engine) Prompt() string {
	switch e.phase {
	case PhaseMove:
		pos := e.players[e.active].Pos
		return fmt.Sprintf("%s: [%d,%d]\nMOVE", e.active, pos.Col, pos.Row)
	case PhaseBreak:
		return fmt.Sprintf("%s\nBREAK ICE", e.active)
	default:
		return ""
	}
}

// Click processes a grid click at target. The caller must have resolved the
// click to an on-board cell; off-grid clicks never reach the engine. Illegal
// clicks leave all state untouched and report StatusInvalid. Clicks after the
// game has ended are ignored.
func (e *Engine) Click(target Cell) Event {
	switch e.phase {
	case PhaseMove:
		return e.clickMove(target)
	case PhaseBreak:
		return e.clickBreak(target)
	default:
		return Event{Over: true, Winner: e.winner}
	}
}

func (e *Engine) clickMove(target Cell) Event {
	if !e.CanMove(e.active, target) {
		return Event{Status: StatusInvalid, Invalid: true}
	}

	e.players[e.active].SetPosition(target)
	origin := target
	e.origin = &origin
	e.phase = PhaseBreak

	return Event{Moved: &origin}
}

func (e *Engine) clickBreak(target Cell) Event {
	if !e.canBreak(target) {
		return Event{Status: StatusInvalid, Invalid: true}
	}

	e.board.Break(target)
	e.active = e.active.Other()

	// Trapped detection runs right after the turn passes, before any
	// broken-tile confirmation is emitted.
	if e.Trapped(e.active) {
		e.phase = PhaseOver
		e.winner = e.active.Other()
		return Event{
			Status: fmt.Sprintf("%s TRAPPED!!", e.active),
			Broken: &target,
			Over:   true,
			Winner: e.winner,
		}
	}

	e.origin = nil
	e.phase = PhaseMove
	return Event{
		Status: fmt.Sprintf("ice broken at %s", target),
		Broken: &target,
	}
}

// Reset restores the initial state: all ice intact, both players back at
// their starting positions, player 0 to move. Available in any phase.
func (e *Engine) Reset() Event {
	e.board.Reset()
	e.players[0].SetPosition(startPositions[0])
	e.players[1].SetPosition(startPositions[1])
	e.active = Player0
	e.phase = PhaseMove
	e.origin = nil
	e.winner = Player0

	return Event{Status: StatusReset, Reset: true}
}
