package cursive

import (
	"github.com/gdamore/tcell/v2"

	"github.com/atomicstack/cursive/backend"
	"github.com/atomicstack/cursive/printer"
	"github.com/atomicstack/cursive/vec"
)

// spyView records every View call it receives and answers with a canned
// result.
type spyView struct {
	name      string
	result    EventResult
	focusable bool
	drawText  string

	keys    []backend.Key
	focuses []bool
	layouts []vec.Vec2
}

func (v *spyView) Layout(size vec.Vec2) {
	v.layouts = append(v.layouts, size)
}

func (v *spyView) Draw(p *printer.Printer, focused bool) {
	v.focuses = append(v.focuses, focused)
	if v.drawText != "" {
		p.Print(vec.Vec2{}, v.drawText)
	}
}

func (v *spyView) OnKeyEvent(key backend.Key) EventResult {
	v.keys = append(v.keys, key)
	return v.result
}

func (v *spyView) TakeFocus() bool {
	return v.focusable
}

func (v *spyView) Find(sel Selector) View {
	return matchLeaf(v, v.name, sel)
}

func fullPrinter(sim *backend.Sim) *printer.Printer {
	return printer.New(sim, vec.Vec2{}, sim.Size(), tcell.StyleDefault)
}
