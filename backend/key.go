package backend

// Key identifies a single input event. Printable input occupies the positive
// range (the rune value, so control characters keep their ASCII codes, much
// like a curses getch), special keys occupy the negative range, and KeyNone
// means no input arrived before the poll timeout expired.
type Key int32

// KeyNone is returned by a timed poll when no input arrived.
const KeyNone Key = 0

// Control and ASCII keys share the positive code space with printable runes.
const (
	KeyTab       Key = 9
	KeyEnter     Key = 13
	KeyCtrlU     Key = 21
	KeyEsc       Key = 27
	KeyBackspace Key = 127
)

// Special keys live in the negative code space so they can never collide
// with a rune. KeyResize is reported when the terminal changes size; no view
// is expected to consume it.
const (
	KeyResize Key = -(iota + 1)
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
)

// FromRune returns the key code for a printable rune.
func FromRune(r rune) Key {
	return Key(r)
}

// Printable reports whether k carries a printable rune, and returns it.
func (k Key) Printable() (rune, bool) {
	if k >= 32 && k != KeyBackspace {
		return rune(k), true
	}
	return 0, false
}
