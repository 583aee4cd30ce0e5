// Package session coordinates the flow around a single Icebreaker sitting:
// start menu, game, end screen, and replays. It owns the in-process
// scoreboard and the quit confirmation counter, so no state leaks into
// globals between rounds.
package session

import (
	"time"

	"github.com/arcticode/icebreaker/internal/game"
)

// Screen is the flow phase the session is currently in.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenGame
	ScreenEnd
)

// Command is a UI-originated control action. Buttons and keys dispatch
// commands to a single handler instead of binding callbacks to instances.
type Command int

const (
	CmdStartGame Command = iota
	CmdPlayAgain
	CmdResetGame
	CmdQuitRequest
	CmdFinishGame
	CmdExit
)

// Quit confirmation messages.
const (
	MsgQuitConfirm = "Are you sure?"
	MsgQuitBye     = "Bye"
)

// MatchResult summarizes a completed game for persistence.
type MatchResult struct {
	Winner      game.PlayerID
	Loser       game.PlayerID
	TilesBroken int
	Duration    time.Duration
}

// MatchRecorder persists completed matches. Implemented by the storage layer.
type MatchRecorder interface {
	RecordMatch(MatchResult) error
}

// Session owns one sitting's board, players, engine, and scoreboard.
type Session struct {
	engine   *game.Engine
	screen   Screen
	wins     [2]int
	recorder MatchRecorder

	quitClicks int
	startedAt  time.Time
	counted    bool // scoreboard updated for the current game
	done       bool
}

// New creates a session on the start screen. recorder may be nil, in which
// case completed matches are only tallied in memory.
func New(recorder MatchRecorder) *Session {
	return &Session{
		engine:   game.NewEngine(game.NewBoard(), game.NewPlayers()),
		recorder: recorder,
	}
}

// Engine returns the rules engine for the in-progress game.
func (s *Session) Engine() *game.Engine {
	return s.engine
}

// Screen returns the current flow phase.
func (s *Session) Screen() Screen {
	return s.screen
}

// Wins returns the two-entry scoreboard accumulated across replays.
func (s *Session) Wins() [2]int {
	return s.wins
}

// Done reports whether the user has exited the session.
func (s *Session) Done() bool {
	return s.done
}

// Click forwards a grid click to the engine. When the click completes a game,
// the winner's score is counted exactly once and the match is recorded.
func (s *Session) Click(c game.Cell) game.Event {
	ev := s.engine.Click(c)
	if ev.Over && !s.counted {
		s.counted = true
		s.wins[ev.Winner]++
		s.record(ev.Winner)
	}
	return ev
}

func (s *Session) record(winner game.PlayerID) {
	if s.recorder == nil {
		return
	}
	// Recording is best effort; a storage failure never interrupts play.
	_ = s.recorder.RecordMatch(MatchResult{
		Winner:      winner,
		Loser:       winner.Other(),
		TilesBroken: s.engine.Board().BrokenCount(),
		Duration:    time.Since(s.startedAt),
	})
}

// Apply processes a control command and returns a status message for the
// status text region (empty when there is nothing to display).
func (s *Session) Apply(cmd Command) string {
	switch cmd {
	case CmdStartGame, CmdPlayAgain:
		s.startGame()
		return ""

	case CmdResetGame:
		ev := s.engine.Reset()
		s.quitClicks = 0
		s.counted = false
		s.startedAt = time.Now()
		return ev.Status

	case CmdQuitRequest:
		s.quitClicks++
		if s.quitClicks == 1 {
			return MsgQuitConfirm
		}
		s.screen = ScreenEnd
		return MsgQuitBye

	case CmdFinishGame:
		s.screen = ScreenEnd
		return ""

	case CmdExit:
		s.done = true
		return ""
	}
	return ""
}

func (s *Session) startGame() {
	s.engine.Reset()
	s.screen = ScreenGame
	s.quitClicks = 0
	s.counted = false
	s.startedAt = time.Now()
}
