package cursive

import "github.com/atomicstack/cursive/backend"

// Key identifies a single input event. See the backend package for the code
// space and the named constants.
type Key = backend.Key

// FromRune returns the key code for a printable rune.
func FromRune(r rune) Key {
	return backend.FromRune(r)
}

// Commonly bound keys, re-exported so applications rarely need to import
// the backend package directly.
const (
	KeyNone      = backend.KeyNone
	KeyEnter     = backend.KeyEnter
	KeyEsc       = backend.KeyEsc
	KeyTab       = backend.KeyTab
	KeyBackspace = backend.KeyBackspace
	KeyUp        = backend.KeyUp
	KeyDown      = backend.KeyDown
	KeyLeft      = backend.KeyLeft
	KeyRight     = backend.KeyRight
	KeyResize    = backend.KeyResize
)

// Callback is a deferred unit of behavior applied to the controller. A
// callback produced by a consumed event runs synchronously, at most once.
type Callback func(*Cursive)

// EventResult reports what a view did with a key event.
type EventResult struct {
	consumed bool
	callback Callback
}

// Ignored reports that the event was not relevant to the view.
func Ignored() EventResult {
	return EventResult{}
}

// Consumed reports that the event was handled. cb may be nil when no
// follow-up action is needed.
func Consumed(cb Callback) EventResult {
	return EventResult{consumed: true, callback: cb}
}

// IsConsumed reports whether the event was handled by a view.
func (r EventResult) IsConsumed() bool {
	return r.consumed
}

// Callback returns the follow-up action attached to a consumed event, or nil.
func (r EventResult) Callback() Callback {
	return r.callback
}
