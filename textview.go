package cursive

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/atomicstack/cursive/backend"
	"github.com/atomicstack/cursive/printer"
	"github.com/atomicstack/cursive/vec"
)

// TextView displays static multi-line text, wrapped to the width granted by
// layout. It never takes focus.
type TextView struct {
	name    string
	content string
	rows    []string
}

// NewTextView creates a text view for the given content.
func NewTextView(content string) *TextView {
	return &TextView{content: ansi.Strip(content)}
}

// SetName declares the view's identifier for ByName lookups.
func (t *TextView) SetName(name string) *TextView {
	t.name = name
	return t
}

// SetContent replaces the displayed text. The new content is wrapped on the
// next layout pass.
func (t *TextView) SetContent(content string) {
	t.content = ansi.Strip(content)
	t.rows = nil
}

// Content returns the unwrapped text.
func (t *TextView) Content() string {
	return t.content
}

// PreferredSize implements Sizer: the widest line by display width, and the
// line count, both unwrapped.
func (t *TextView) PreferredSize() vec.Vec2 {
	w := 0
	lines := strings.Split(t.content, "\n")
	for _, line := range lines {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return vec.New(w, len(lines))
}

// Layout implements View. Wrapping is recomputed from the original content,
// so repeated calls with the same size are idempotent.
func (t *TextView) Layout(size vec.Vec2) {
	if size.Empty() {
		t.rows = nil
		return
	}
	t.rows = t.rows[:0]
	for _, line := range strings.Split(t.content, "\n") {
		if runewidth.StringWidth(line) <= size.X {
			t.rows = append(t.rows, line)
			continue
		}
		t.rows = append(t.rows, strings.Split(runewidth.Wrap(line, size.X), "\n")...)
	}
}

// Draw implements View.
func (t *TextView) Draw(p *printer.Printer, focused bool) {
	if p.Empty() {
		return
	}
	for y, row := range t.rows {
		if y >= p.Size().Y {
			break
		}
		p.Print(vec.New(0, y), row)
	}
}

// OnKeyEvent implements View. Static text never consumes input.
func (t *TextView) OnKeyEvent(key backend.Key) EventResult {
	return Ignored()
}

// TakeFocus implements View.
func (t *TextView) TakeFocus() bool {
	return false
}

// Find implements View.
func (t *TextView) Find(sel Selector) View {
	return matchLeaf(t, t.name, sel)
}
