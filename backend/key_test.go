package backend

import "testing"

func TestPrintable(t *testing.T) {
	if r, ok := FromRune('q').Printable(); !ok || r != 'q' {
		t.Fatalf("expected 'q' to be printable, got %q ok=%v", r, ok)
	}
	if _, ok := KeyEnter.Printable(); ok {
		t.Fatalf("expected enter not to be printable")
	}
	if _, ok := KeyBackspace.Printable(); ok {
		t.Fatalf("expected backspace not to be printable")
	}
	if _, ok := KeyUp.Printable(); ok {
		t.Fatalf("expected a special key not to be printable")
	}
	if r, ok := FromRune('é').Printable(); !ok || r != 'é' {
		t.Fatalf("expected non-ASCII rune to survive the round trip, got %q ok=%v", r, ok)
	}
}

func TestSpecialKeysNeverCollideWithRunes(t *testing.T) {
	specials := []Key{
		KeyResize, KeyUp, KeyDown, KeyLeft, KeyRight,
		KeyHome, KeyEnd, KeyPageUp, KeyPageDown, KeyDelete, KeyInsert,
	}
	for _, k := range specials {
		if k >= 0 {
			t.Fatalf("special key %d must be negative", k)
		}
	}
}
