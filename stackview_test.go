package cursive

import (
	"testing"

	"github.com/atomicstack/cursive/backend"
	"github.com/atomicstack/cursive/vec"
)

func TestKeyConsumedByTopNeverReachesLower(t *testing.T) {
	bottom := &spyView{result: Consumed(nil)}
	top := &spyView{result: Consumed(nil)}
	s := NewStackView()
	s.AddLayer(bottom)
	s.AddLayer(top)

	res := s.OnKeyEvent(backend.FromRune('x'))
	if !res.IsConsumed() {
		t.Fatalf("expected the stack to report consumed")
	}
	if len(top.keys) != 1 {
		t.Fatalf("expected top layer to see the key, saw %d", len(top.keys))
	}
	if len(bottom.keys) != 0 {
		t.Fatalf("expected bottom layer to see nothing, saw %d", len(bottom.keys))
	}
}

func TestKeyIgnoredByTopDoesNotFallThrough(t *testing.T) {
	bottom := &spyView{result: Consumed(nil)} // would consume, must not get the chance
	top := &spyView{result: Ignored()}
	s := NewStackView()
	s.AddLayer(bottom)
	s.AddLayer(top)

	res := s.OnKeyEvent(backend.FromRune('x'))
	if res.IsConsumed() {
		t.Fatalf("expected the stack to report ignored when the top layer ignores")
	}
	if len(bottom.keys) != 0 {
		t.Fatalf("expected lower layer to stay unreachable, saw %d keys", len(bottom.keys))
	}
}

func TestDrawBottomToTopOccludes(t *testing.T) {
	sim := backend.NewSim(6, 1)
	s := NewStackView()
	s.AddLayer(&spyView{drawText: "AAAA"})
	s.AddLayer(&spyView{drawText: "BB"})

	s.Draw(fullPrinter(sim), true)
	if sim.Line(0) != "BBAA  " {
		t.Fatalf("expected top layer to occlude, got %q", sim.Line(0))
	}
}

func TestOnlyTopLayerDrawsFocused(t *testing.T) {
	bottom := &spyView{}
	top := &spyView{}
	s := NewStackView()
	s.AddLayer(bottom)
	s.AddLayer(top)

	s.Draw(fullPrinter(backend.NewSim(4, 2)), true)
	if len(bottom.focuses) != 1 || bottom.focuses[0] {
		t.Fatalf("expected bottom layer drawn unfocused, got %v", bottom.focuses)
	}
	if len(top.focuses) != 1 || !top.focuses[0] {
		t.Fatalf("expected top layer drawn focused, got %v", top.focuses)
	}
}

func TestEmptyStackIsInert(t *testing.T) {
	sim := backend.NewSim(4, 2)
	s := NewStackView()
	s.Draw(fullPrinter(sim), true)
	if sim.Content() != "    \n    " {
		t.Fatalf("expected empty stack to draw nothing, got %q", sim.Content())
	}
	if s.OnKeyEvent(backend.KeyEnter).IsConsumed() {
		t.Fatalf("expected empty stack to ignore input")
	}
	if s.TakeFocus() {
		t.Fatalf("expected empty stack to refuse focus")
	}
}

func TestLayoutGivesEveryLayerTheFullSize(t *testing.T) {
	a := &spyView{}
	b := &spyView{}
	s := NewStackView()
	s.AddLayer(a)
	s.AddLayer(b)

	size := vec.New(80, 24)
	s.Layout(size)
	if len(a.layouts) != 1 || a.layouts[0] != size {
		t.Fatalf("expected bottom layer laid out at %v, got %v", size, a.layouts)
	}
	if len(b.layouts) != 1 || b.layouts[0] != size {
		t.Fatalf("expected top layer laid out at %v, got %v", size, b.layouts)
	}
}

func TestPopLayerRemovesTop(t *testing.T) {
	a := &spyView{name: "a"}
	b := &spyView{name: "b"}
	s := NewStackView()
	s.AddLayer(a)
	s.AddLayer(b)

	if got := s.PopLayer(); got != View(b) {
		t.Fatalf("expected to pop the top layer")
	}
	if s.LayerCount() != 1 {
		t.Fatalf("expected one layer left, got %d", s.LayerCount())
	}
	s.PopLayer()
	if got := s.PopLayer(); got != nil {
		t.Fatalf("expected nil from an empty stack, got %v", got)
	}
}

func TestFindScansTopToBottom(t *testing.T) {
	bottom := &spyView{name: "twin"}
	top := &spyView{name: "twin"}
	s := NewStackView()
	s.AddLayer(bottom)
	s.AddLayer(top)

	if got := s.Find(ByName("twin")); got != View(top) {
		t.Fatalf("expected the top match to win")
	}
	if got := s.Find(ByName("missing")); got != nil {
		t.Fatalf("expected nil for a missing name, got %v", got)
	}
}

func TestFindByPathIndexesLayers(t *testing.T) {
	bottom := &spyView{name: "bottom"}
	top := &spyView{name: "top"}
	s := NewStackView()
	s.AddLayer(bottom)
	s.AddLayer(top)

	if got := s.Find(ByPath{0}); got != View(bottom) {
		t.Fatalf("expected path 0 to reach the bottom layer")
	}
	if got := s.Find(ByPath{1}); got != View(top) {
		t.Fatalf("expected path 1 to reach the top layer")
	}
	if got := s.Find(ByPath{2}); got != nil {
		t.Fatalf("expected nil for an out-of-range path, got %v", got)
	}
	if got := s.Find(ByPath{}); got != View(s) {
		t.Fatalf("expected the empty path to match the stack itself")
	}
}
