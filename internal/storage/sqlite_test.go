package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arcticode/icebreaker/internal/session"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "icebreaker.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDatabase(t *testing.T) {
	store := newTestStore(t)

	n, err := store.MatchCount()
	if err != nil {
		t.Fatalf("MatchCount() error = %v", err)
	}
	if n != 0 {
		t.Errorf("MatchCount() = %d, want 0 for fresh database", n)
	}
}

func TestSaveAndRecentMatches(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveMatch(0, 1, 5, 42); err != nil {
		t.Fatalf("SaveMatch() error = %v", err)
	}
	if _, err := store.SaveMatch(1, 0, 7, 90); err != nil {
		t.Fatalf("SaveMatch() error = %v", err)
	}

	entries, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("RecentMatches() returned %d entries, want 2", len(entries))
	}

	// Newest first
	if entries[0].Winner != 1 || entries[0].Loser != 0 {
		t.Errorf("newest entry = winner %d loser %d, want winner 1 loser 0",
			entries[0].Winner, entries[0].Loser)
	}
	if entries[0].TilesBroken != 7 {
		t.Errorf("TilesBroken = %d, want 7", entries[0].TilesBroken)
	}
	if entries[1].Winner != 0 {
		t.Errorf("oldest entry winner = %d, want 0", entries[1].Winner)
	}
}

func TestRecentMatchesLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveMatch(i%2, 1-i%2, 5, 10); err != nil {
			t.Fatalf("SaveMatch() error = %v", err)
		}
	}

	entries, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() error = %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("RecentMatches(3) returned %d entries, want 3", len(entries))
	}
}

func TestWinCounts(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.SaveMatch(0, 1, 5, 10); err != nil {
			t.Fatalf("SaveMatch() error = %v", err)
		}
	}
	if _, err := store.SaveMatch(1, 0, 6, 20); err != nil {
		t.Fatalf("SaveMatch() error = %v", err)
	}

	counts, err := store.WinCounts()
	if err != nil {
		t.Fatalf("WinCounts() error = %v", err)
	}
	if counts[0] != 3 {
		t.Errorf("player 0 wins = %d, want 3", counts[0])
	}
	if counts[1] != 1 {
		t.Errorf("player 1 wins = %d, want 1", counts[1])
	}
}

func TestClearMatches(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.SaveMatch(0, 1, 5, 10); err != nil {
		t.Fatalf("SaveMatch() error = %v", err)
	}
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() error = %v", err)
	}

	n, err := store.MatchCount()
	if err != nil {
		t.Fatalf("MatchCount() error = %v", err)
	}
	if n != 0 {
		t.Errorf("MatchCount() after clear = %d, want 0", n)
	}
}

func TestRecordMatchAdapter(t *testing.T) {
	store := newTestStore(t)

	result := session.MatchResult{
		Winner:      1,
		Loser:       0,
		TilesBroken: 9,
		Duration:    95 * time.Second,
	}
	if err := store.RecordMatch(result); err != nil {
		t.Fatalf("RecordMatch() error = %v", err)
	}

	entries, err := store.RecentMatches(1)
	if err != nil {
		t.Fatalf("RecentMatches() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("RecentMatches() returned %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Winner != 1 || e.Loser != 0 || e.TilesBroken != 9 || e.DurationSecs != 95 {
		t.Errorf("stored entry = %+v, want winner 1 loser 0 tiles 9 duration 95", e)
	}
}
