package cursive

import (
	"github.com/atomicstack/cursive/backend"
	"github.com/atomicstack/cursive/internal/logging/events"
	"github.com/atomicstack/cursive/printer"
	"github.com/atomicstack/cursive/vec"
)

// layer is one entry in a StackView's stack. The StackView owns the view
// exclusively; removing the layer releases it.
type layer struct {
	view     View
	lastSize vec.Vec2
}

// StackView is an ordered stack of layers, bottom to top. The top layer is
// the most recently added one: it draws last (on top) and receives input
// first. Lower layers stay visible but are not input-reachable while a layer
// sits above them.
type StackView struct {
	layers []layer
}

// NewStackView creates an empty stack.
func NewStackView() *StackView {
	return &StackView{}
}

// AddLayer pushes a view on top of the stack.
func (s *StackView) AddLayer(v View) {
	s.layers = append(s.layers, layer{view: v})
	events.Layer.Pushed(len(s.layers))
}

// PopLayer removes and returns the top layer's view, or nil when the stack
// is empty.
func (s *StackView) PopLayer() View {
	if len(s.layers) == 0 {
		return nil
	}
	v := s.layers[len(s.layers)-1].view
	s.layers = s.layers[:len(s.layers)-1]
	events.Layer.Popped(len(s.layers))
	return v
}

// LayerCount returns the number of layers.
func (s *StackView) LayerCount() int {
	return len(s.layers)
}

// Layout gives every layer the same top-level size. Layers are not sized to
// leave room for the ones below; centering belongs to the layer's own view.
func (s *StackView) Layout(size vec.Vec2) {
	for i := range s.layers {
		s.layers[i].view.Layout(size)
		s.layers[i].lastSize = size
	}
}

// Draw renders the layers bottom to top with the same printer, so higher
// layers occlude lower ones. Only the top layer sees the focused flag.
// Drawing an empty stack is a no-op.
func (s *StackView) Draw(p *printer.Printer, focused bool) {
	if p.Empty() {
		return
	}
	for i, l := range s.layers {
		l.view.Draw(p, focused && i == len(s.layers)-1)
	}
}

// OnKeyEvent delivers the key to the top layer only. When the top layer
// ignores it the stack reports Ignored without trying lower layers: layers
// are modal, not a focus chain.
func (s *StackView) OnKeyEvent(key backend.Key) EventResult {
	if len(s.layers) == 0 {
		return Ignored()
	}
	return s.layers[len(s.layers)-1].view.OnKeyEvent(key)
}

// TakeFocus reports whether the top layer can receive focus.
func (s *StackView) TakeFocus() bool {
	if len(s.layers) == 0 {
		return false
	}
	return s.layers[len(s.layers)-1].view.TakeFocus()
}

// Find scans the layers top to bottom and returns the first match. A ByPath
// selector indexes the stack bottom-up (layer 0 is the bottom).
func (s *StackView) Find(sel Selector) View {
	if p, ok := sel.(ByPath); ok {
		if len(p) == 0 {
			return s
		}
		i := p[0]
		if i < 0 || i >= len(s.layers) {
			return nil
		}
		return s.layers[i].view.Find(ByPath(p[1:]))
	}
	for i := len(s.layers) - 1; i >= 0; i-- {
		if v := s.layers[i].view.Find(sel); v != nil {
			return v
		}
	}
	return nil
}
