package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestSimReplaysScriptInOrder(t *testing.T) {
	sim := NewSim(10, 4).Feed(KeyEnter).FeedRunes("ab")
	for i, want := range []Key{KeyEnter, FromRune('a'), FromRune('b')} {
		if got := sim.PollKey(); got != want {
			t.Fatalf("poll %d: expected %d, got %d", i, want, got)
		}
	}
	if got := sim.PollKey(); got != KeyNone {
		t.Fatalf("expected KeyNone after the script ran out, got %d", got)
	}
	if sim.Starved != 1 {
		t.Fatalf("expected 1 starved poll, got %d", sim.Starved)
	}
}

func TestSimDropsOutOfRangeWrites(t *testing.T) {
	sim := NewSim(3, 2)
	sim.SetCell(5, 0, 'x', tcell.StyleDefault)
	sim.SetCell(0, -1, 'x', tcell.StyleDefault)
	if sim.Content() != "   \n   " {
		t.Fatalf("expected untouched grid, got %q", sim.Content())
	}
	sim.SetCell(2, 1, 'z', tcell.StyleDefault)
	if sim.Rune(2, 1) != 'z' {
		t.Fatalf("expected in-range write to land")
	}
}

func TestSimClearResetsGrid(t *testing.T) {
	sim := NewSim(4, 1)
	sim.SetCell(0, 0, 'x', tcell.StyleDefault)
	sim.Clear()
	if sim.Line(0) != "    " {
		t.Fatalf("expected cleared line, got %q", sim.Line(0))
	}
}
