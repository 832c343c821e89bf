// Package backend abstracts the terminal the framework draws into. The
// production implementation wraps tcell; Sim replays scripted input against
// an in-memory cell grid for tests and headless harnesses.
package backend

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/atomicstack/cursive/vec"
)

// Driver is the terminal capability consumed by the framework. The
// controller owns exactly one driver and brackets its lifetime: Init before
// the first frame, Fini when the application shuts down, including error
// paths.
type Driver interface {
	// Init acquires the terminal. It must be called before any other method.
	Init() error
	// Fini restores the terminal to its prior state. Safe to call twice.
	Fini()
	// Size returns the current terminal dimensions in cells.
	Size() vec.Vec2
	// SetTimeout bounds how long PollKey blocks. Zero blocks indefinitely.
	SetTimeout(d time.Duration)
	// PollKey blocks until the next key arrives, the configured timeout
	// expires (KeyNone), or the terminal is resized (KeyResize).
	PollKey() Key
	// Clear resets the whole surface to the default style.
	Clear()
	// Flush makes all cell writes since the last call visible.
	Flush()
	// SetCell writes one rune at an absolute position.
	SetCell(x, y int, r rune, style tcell.Style)
	// SetDefaultStyle sets the style used for cleared cells.
	SetDefaultStyle(style tcell.Style)
}
