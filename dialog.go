package cursive

import (
	"github.com/mattn/go-runewidth"

	"github.com/atomicstack/cursive/backend"
	"github.com/atomicstack/cursive/printer"
	"github.com/atomicstack/cursive/theme"
	"github.com/atomicstack/cursive/vec"
)

type dialogButton struct {
	label    string
	callback Callback
}

// Dialog wraps a content view in a bordered box with an optional title and a
// row of buttons, and centers itself inside the size granted by layout.
// Unconsumed keys are offered to the content view first; left/right move
// between buttons and enter fires the focused one.
type Dialog struct {
	name    string
	title   string
	styles  *theme.Styles
	content View
	buttons []dialogButton
	focused int

	// geometry cached by the last layout pass
	pos   vec.Vec2
	size  vec.Vec2
	inner vec.Vec2
}

// NewDialog wraps the given content view.
func NewDialog(content View) *Dialog {
	return &Dialog{content: content, styles: theme.Default()}
}

// SetName declares the view's identifier for ByName lookups.
func (d *Dialog) SetName(name string) *Dialog {
	d.name = name
	return d
}

// SetTitle sets the text drawn on the top border.
func (d *Dialog) SetTitle(title string) *Dialog {
	d.title = title
	return d
}

// SetStyles overrides the default style table.
func (d *Dialog) SetStyles(st *theme.Styles) *Dialog {
	d.styles = st
	return d
}

// AddButton appends a button to the row under the content.
func (d *Dialog) AddButton(label string, cb Callback) *Dialog {
	d.buttons = append(d.buttons, dialogButton{label: label, callback: cb})
	return d
}

// FocusedButton returns the index of the focused button.
func (d *Dialog) FocusedButton() int {
	return d.focused
}

// buttonRowWidth returns the cells needed to draw every button side by side.
func (d *Dialog) buttonRowWidth() int {
	w := 0
	for i, b := range d.buttons {
		if i > 0 {
			w++
		}
		w += runewidth.StringWidth("< "+b.label+" >")
	}
	return w
}

// chrome returns the non-content rows and columns: borders, padding, and the
// button row when present.
func (d *Dialog) chrome() vec.Vec2 {
	c := vec.New(4, 2) // border plus one cell of horizontal padding each side
	if len(d.buttons) > 0 {
		c.Y += 2 // separator row plus button row
	}
	return c
}

// Layout implements View. The dialog sizes itself around its content's
// preferred size when available, clamps to the granted size, and centers.
func (d *Dialog) Layout(size vec.Vec2) {
	if size.Empty() {
		d.size = vec.Vec2{}
		d.inner = vec.Vec2{}
		d.content.Layout(vec.Vec2{})
		return
	}
	chrome := d.chrome()
	want := size.Sub(chrome)
	if sz, ok := d.content.(Sizer); ok {
		want = sz.PreferredSize()
	}
	minWidth := d.buttonRowWidth()
	if tw := runewidth.StringWidth(d.title); tw > minWidth {
		minWidth = tw
	}
	if want.X < minWidth {
		want.X = minWidth
	}
	d.inner = want.Min(size.Sub(chrome))
	d.size = d.inner.Add(chrome)
	d.pos = vec.New((size.X-d.size.X)/2, (size.Y-d.size.Y)/2)
	d.content.Layout(d.inner)
}

// Draw implements View.
func (d *Dialog) Draw(p *printer.Printer, focused bool) {
	if p.Empty() || d.size.Empty() {
		return
	}
	box := p.Sub(d.pos, d.size)
	// Blank the dialog's footprint so lower layers do not bleed through.
	for y := 0; y < d.size.Y; y++ {
		box.HLine(vec.New(0, y), d.size.X, ' ', d.styles.Background)
	}
	box.Box(vec.Vec2{}, d.size, d.styles.Border)
	if d.title != "" {
		tw := runewidth.StringWidth(d.title)
		box.PrintStyled(vec.New((d.size.X-tw)/2, 0), d.title, d.styles.Title)
	}
	d.content.Draw(box.Sub(vec.New(2, 1), d.inner), focused && len(d.buttons) == 0)
	if len(d.buttons) > 0 {
		d.drawButtons(box, focused)
	}
}

func (d *Dialog) drawButtons(box *printer.Printer, focused bool) {
	y := d.size.Y - 2
	x := d.size.X - d.buttonRowWidth() - 2
	if x < 1 {
		x = 1
	}
	for i, b := range d.buttons {
		style := d.styles.Button
		if focused && i == d.focused {
			style = d.styles.SelectedButton
		}
		text := "< " + b.label + " >"
		box.PrintStyled(vec.New(x, y), text, style)
		x += runewidth.StringWidth(text) + 1
	}
}

// OnKeyEvent implements View. The content view gets the first chance; keys
// it ignores drive the button row.
func (d *Dialog) OnKeyEvent(key backend.Key) EventResult {
	if res := d.content.OnKeyEvent(key); res.IsConsumed() {
		return res
	}
	if len(d.buttons) == 0 {
		return Ignored()
	}
	switch key {
	case backend.KeyLeft:
		if d.focused > 0 {
			d.focused--
		}
		return Consumed(nil)
	case backend.KeyRight:
		if d.focused < len(d.buttons)-1 {
			d.focused++
		}
		return Consumed(nil)
	case backend.KeyEnter:
		return Consumed(d.buttons[d.focused].callback)
	}
	return Ignored()
}

// TakeFocus implements View.
func (d *Dialog) TakeFocus() bool {
	return true
}

// Find implements View. The content view is the dialog's only child, at
// path index 0.
func (d *Dialog) Find(sel Selector) View {
	switch s := sel.(type) {
	case ByName:
		if d.name != "" && string(s) == d.name {
			return d
		}
		return d.content.Find(sel)
	case ByPath:
		if len(s) == 0 {
			return d
		}
		if s[0] != 0 {
			return nil
		}
		return d.content.Find(ByPath(s[1:]))
	}
	return nil
}
