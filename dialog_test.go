package cursive

import (
	"strings"
	"testing"

	"github.com/atomicstack/cursive/backend"
	"github.com/atomicstack/cursive/vec"
)

func TestDialogCentersAroundContent(t *testing.T) {
	d := NewDialog(NewTextView("hi")).SetTitle("box")
	size := vec.New(20, 9)
	d.Layout(size)

	sim := backend.NewSim(20, 9)
	d.Draw(fullPrinter(sim), true)

	content := sim.Content()
	if !strings.Contains(content, "hi") {
		t.Fatalf("expected content inside the dialog:\n%s", content)
	}
	if !strings.Contains(content, "box") {
		t.Fatalf("expected title on the border:\n%s", content)
	}
	if !strings.Contains(content, "┌") || !strings.Contains(content, "┘") {
		t.Fatalf("expected a border:\n%s", content)
	}
	// Centered: nothing on the first row or first column.
	if strings.TrimSpace(sim.Line(0)) != "" {
		t.Fatalf("expected the top row empty for a small dialog:\n%s", content)
	}
	if sim.Rune(0, 4) != ' ' {
		t.Fatalf("expected the left column empty for a small dialog:\n%s", content)
	}
}

func TestDialogButtonsFocusAndFire(t *testing.T) {
	fired := ""
	d := NewDialog(NewTextView("pick")).
		AddButton("Yes", func(c *Cursive) { fired = "yes" }).
		AddButton("No", func(c *Cursive) { fired = "no" })
	d.Layout(vec.New(30, 10))

	if !d.OnKeyEvent(backend.KeyRight).IsConsumed() {
		t.Fatalf("expected right arrow to move button focus")
	}
	if d.FocusedButton() != 1 {
		t.Fatalf("expected focus on the second button, got %d", d.FocusedButton())
	}
	d.OnKeyEvent(backend.KeyRight) // clamped at the last button
	if d.FocusedButton() != 1 {
		t.Fatalf("expected focus clamped, got %d", d.FocusedButton())
	}

	res := d.OnKeyEvent(backend.KeyEnter)
	if !res.IsConsumed() || res.Callback() == nil {
		t.Fatalf("expected enter to return the button callback")
	}
	res.Callback()(nil)
	if fired != "no" {
		t.Fatalf("expected the focused button to fire, got %q", fired)
	}

	d.OnKeyEvent(backend.KeyLeft)
	if d.FocusedButton() != 0 {
		t.Fatalf("expected left arrow to move back, got %d", d.FocusedButton())
	}
}

func TestDialogOffersKeysToContentFirst(t *testing.T) {
	list := newTestSelect("a", "b")
	d := NewDialog(list).AddButton("OK", nil)
	d.Layout(vec.New(30, 10))

	if !d.OnKeyEvent(backend.KeyDown).IsConsumed() {
		t.Fatalf("expected the list to consume the arrow")
	}
	if selectedID(t, list) != "b" {
		t.Fatalf("expected the list cursor to move, got %q", selectedID(t, list))
	}
}

func TestDialogWithoutButtonsIgnoresChromeKeys(t *testing.T) {
	d := NewDialog(NewTextView("hi"))
	if d.OnKeyEvent(backend.KeyLeft).IsConsumed() {
		t.Fatalf("expected no button row to ignore arrows")
	}
	if d.OnKeyEvent(backend.KeyEnter).IsConsumed() {
		t.Fatalf("expected no button row to ignore enter")
	}
}

func TestDialogFindDelegatesToContent(t *testing.T) {
	inner := NewTextView("body").SetName("body")
	d := NewDialog(inner).SetName("dlg")

	if got := d.Find(ByName("dlg")); got != View(d) {
		t.Fatalf("expected the dialog itself by name")
	}
	if got := d.Find(ByName("body")); got != View(inner) {
		t.Fatalf("expected the content view by name")
	}
	if got := d.Find(ByPath{0}); got != View(inner) {
		t.Fatalf("expected path 0 to reach the content")
	}
	if got := d.Find(ByPath{1}); got != nil {
		t.Fatalf("expected nil for a path past the only child")
	}
}

func TestDialogToleratesZeroSize(t *testing.T) {
	d := NewDialog(NewTextView("hi")).AddButton("OK", nil)
	d.Layout(vec.Vec2{})
	sim := backend.NewSim(4, 2)
	d.Draw(fullPrinter(sim), true)
	if strings.TrimSpace(sim.Content()) != "" {
		t.Fatalf("expected nothing drawn at zero size, got %q", sim.Content())
	}
}
