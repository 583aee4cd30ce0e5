package session

import (
	"testing"

	"github.com/arcticode/icebreaker/internal/game"
)

type fakeRecorder struct {
	results []MatchResult
	err     error
}

func (f *fakeRecorder) RecordMatch(r MatchResult) error {
	f.results = append(f.results, r)
	return f.err
}

// playUntilTrapped seals player 1's neighborhood so player 0's next full turn
// ends the game.
func playUntilTrapped(t *testing.T, s *Session) game.Event {
	t.Helper()

	e := s.Engine()
	for _, c := range []game.Cell{
		{Col: 4, Row: 1}, {Col: 5, Row: 1},
		{Col: 4, Row: 2}, {Col: 4, Row: 3},
	} {
		e.Board().Break(c)
	}
	if ev := s.Click(game.Cell{Col: 1, Row: 2}); ev.Invalid {
		t.Fatal("setup move should be legal")
	}
	ev := s.Click(game.Cell{Col: 5, Row: 3})
	if !ev.Over {
		t.Fatal("expected the break to end the game")
	}
	return ev
}

func TestSessionStartFlow(t *testing.T) {
	s := New(nil)

	if s.Screen() != ScreenStart {
		t.Errorf("new session should be on the start screen, got %v", s.Screen())
	}

	s.Apply(CmdStartGame)
	if s.Screen() != ScreenGame {
		t.Errorf("after CmdStartGame, screen = %v, expected ScreenGame", s.Screen())
	}
	if s.Engine().Active() != game.Player0 {
		t.Error("a fresh game should start with player 0")
	}
}

func TestSessionScoreboardCountsOnce(t *testing.T) {
	s := New(nil)
	s.Apply(CmdStartGame)

	ev := playUntilTrapped(t, s)
	if ev.Winner != game.Player0 {
		t.Fatalf("Winner = %v, expected Player0", ev.Winner)
	}

	if s.Wins() != [2]int{1, 0} {
		t.Errorf("Wins() = %v, expected [1 0]", s.Wins())
	}

	// Extra clicks on the finished board must not re-count the win.
	s.Click(game.Cell{Col: 2, Row: 2})
	if s.Wins() != [2]int{1, 0} {
		t.Errorf("Wins() after extra click = %v, expected [1 0]", s.Wins())
	}
}

func TestSessionScoreboardAccumulatesAcrossReplays(t *testing.T) {
	s := New(nil)

	s.Apply(CmdStartGame)
	playUntilTrapped(t, s)
	s.Apply(CmdFinishGame)
	if s.Screen() != ScreenEnd {
		t.Fatalf("after CmdFinishGame, screen = %v, expected ScreenEnd", s.Screen())
	}

	s.Apply(CmdPlayAgain)
	if s.Screen() != ScreenGame {
		t.Fatalf("after CmdPlayAgain, screen = %v, expected ScreenGame", s.Screen())
	}
	if s.Engine().Board().BrokenCount() != 0 {
		t.Error("replay should start with all ice intact")
	}

	playUntilTrapped(t, s)
	if s.Wins() != [2]int{2, 0} {
		t.Errorf("Wins() = %v, expected [2 0]", s.Wins())
	}
}

func TestSessionQuitDoubleConfirm(t *testing.T) {
	s := New(nil)
	s.Apply(CmdStartGame)

	if msg := s.Apply(CmdQuitRequest); msg != MsgQuitConfirm {
		t.Errorf("first quit request = %q, expected %q", msg, MsgQuitConfirm)
	}
	if s.Screen() != ScreenGame {
		t.Error("first quit request must not leave the game")
	}

	if msg := s.Apply(CmdQuitRequest); msg != MsgQuitBye {
		t.Errorf("second quit request = %q, expected %q", msg, MsgQuitBye)
	}
	if s.Screen() != ScreenEnd {
		t.Error("second quit request should end the game")
	}
	if s.Wins() != [2]int{0, 0} {
		t.Error("a quit game has no winner to count")
	}
}

func TestSessionResetClearsQuitCounter(t *testing.T) {
	s := New(nil)
	s.Apply(CmdStartGame)

	s.Apply(CmdQuitRequest)
	if msg := s.Apply(CmdResetGame); msg != game.StatusReset {
		t.Errorf("reset message = %q, expected %q", msg, game.StatusReset)
	}

	// The earlier quit click no longer counts.
	if msg := s.Apply(CmdQuitRequest); msg != MsgQuitConfirm {
		t.Errorf("quit after reset = %q, expected fresh confirmation", msg)
	}
}

func TestSessionRecordsMatch(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(rec)
	s.Apply(CmdStartGame)

	playUntilTrapped(t, s)

	if len(rec.results) != 1 {
		t.Fatalf("recorded %d matches, expected 1", len(rec.results))
	}
	r := rec.results[0]
	if r.Winner != game.Player0 || r.Loser != game.Player1 {
		t.Errorf("recorded winner/loser = %v/%v", r.Winner, r.Loser)
	}
	if r.TilesBroken != 5 {
		t.Errorf("TilesBroken = %d, expected 5", r.TilesBroken)
	}
}

func TestSessionExit(t *testing.T) {
	s := New(nil)
	s.Apply(CmdExit)
	if !s.Done() {
		t.Error("CmdExit should mark the session done")
	}
}
