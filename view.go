package cursive

import (
	"github.com/atomicstack/cursive/backend"
	"github.com/atomicstack/cursive/printer"
	"github.com/atomicstack/cursive/vec"
)

// View is the contract every widget satisfies. Containers own their child
// views exclusively; a view is never shared between two parents.
type View interface {
	// Layout computes the view's internal geometry for the granted size.
	// It is called every frame and must be idempotent; a zero size must be
	// tolerated.
	Layout(size vec.Vec2)

	// Draw renders the view into the printer, from scratch, writing only
	// within the printer's bounds. focused signals whether the view holds
	// input focus, for visual indication only. Drawing into a zero-area
	// printer must be a no-op.
	Draw(p *printer.Printer, focused bool)

	// OnKeyEvent offers a key to the view. Views return Ignored for keys
	// that are not relevant to them.
	OnKeyEvent(key backend.Key) EventResult

	// TakeFocus reports whether the view can receive input focus. It has
	// no side effects.
	TakeFocus() bool

	// Find locates the view matching the selector, searching descendants
	// for composite views. It returns nil when nothing matches.
	Find(sel Selector) View
}

// Sizer is implemented by views that can report a preferred content size.
// Containers that size themselves around their content (Dialog) consult it.
type Sizer interface {
	PreferredSize() vec.Vec2
}
