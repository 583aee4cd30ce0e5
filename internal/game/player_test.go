package game

import (
	"testing"

	"github.com/arcticode/icebreaker/internal/core"
)

func TestNewPlayers(t *testing.T) {
	players := NewPlayers()

	if players[0].Pos != (Cell{Col: 0, Row: 2}) {
		t.Errorf("Player 0 should start at (0, 2), got %v", players[0].Pos)
	}
	if players[1].Pos != (Cell{Col: 5, Row: 2}) {
		t.Errorf("Player 1 should start at (5, 2), got %v", players[1].Pos)
	}
	if players[0].Color != core.ColorRed {
		t.Error("Player 0 should be red")
	}
	if players[1].Color != core.ColorBlue {
		t.Error("Player 1 should be blue")
	}
}

func TestPlayerIDOther(t *testing.T) {
	if Player0.Other() != Player1 {
		t.Error("Player0.Other() should be Player1")
	}
	if Player1.Other() != Player0 {
		t.Error("Player1.Other() should be Player0")
	}
}

func TestPlayerAdjacentDiagonal(t *testing.T) {
	p := &Player{ID: Player0, Pos: Cell{Col: 2, Row: 2}}

	tests := []struct {
		name     string
		target   Cell
		expected bool
	}{
		{"right", Cell{3, 2}, true},
		{"left", Cell{1, 2}, true},
		{"up", Cell{2, 1}, true},
		{"down", Cell{2, 3}, true},
		{"diagonal up-left", Cell{1, 1}, true},
		{"diagonal down-right", Cell{3, 3}, true},
		{"own cell", Cell{2, 2}, false},
		{"two columns away", Cell{4, 2}, false},
		{"two rows away", Cell{2, 0}, false},
		{"knight move", Cell{4, 3}, false},
		{"far corner", Cell{5, 4}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.AdjacentDiagonal(tc.target); got != tc.expected {
				t.Errorf("AdjacentDiagonal(%v) = %v, expected %v", tc.target, got, tc.expected)
			}
		})
	}
}

func TestPlayerSetPosition(t *testing.T) {
	p := &Player{ID: Player0, Pos: Cell{Col: 0, Row: 2}}

	p.SetPosition(Cell{Col: 3, Row: 4})
	if p.Pos != (Cell{Col: 3, Row: 4}) {
		t.Errorf("SetPosition did not relocate player, got %v", p.Pos)
	}
}
