// Package printer provides a bounded drawing surface over a terminal driver.
// Views receive a printer scoped to their own region and never see absolute
// coordinates.
package printer

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/atomicstack/cursive/backend"
	"github.com/atomicstack/cursive/vec"
)

// Printer draws into a rectangular region of the terminal. It never outlives
// the draw pass that created it.
type Printer struct {
	driver backend.Driver
	offset vec.Vec2
	size   vec.Vec2
	style  tcell.Style
}

// New builds a printer covering the given region. style is the default used
// by Print.
func New(d backend.Driver, offset, size vec.Vec2, style tcell.Style) *Printer {
	return &Printer{driver: d, offset: offset, size: size, style: style}
}

// Size returns the printable region dimensions.
func (p *Printer) Size() vec.Vec2 {
	return p.size
}

// Empty reports whether the printer covers a zero-area region. Drawing into
// an empty printer is a no-op.
func (p *Printer) Empty() bool {
	return p.size.Empty()
}

// Print writes text at pos using the printer's default style.
func (p *Printer) Print(pos vec.Vec2, text string) {
	p.PrintStyled(pos, text, p.style)
}

// PrintStyled writes text at pos, clipped to the printer bounds. ANSI escape
// sequences are stripped before the runes reach the grid, and a wide rune
// that would straddle the right edge is dropped.
func (p *Printer) PrintStyled(pos vec.Vec2, text string, style tcell.Style) {
	if p.Empty() || pos.Y < 0 || pos.Y >= p.size.Y {
		return
	}
	x := pos.X
	for _, r := range ansi.Strip(text) {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > p.size.X {
			break
		}
		if x >= 0 {
			p.driver.SetCell(p.offset.X+x, p.offset.Y+pos.Y, r, style)
		}
		x += w
	}
}

// HLine draws n copies of r in a row starting at pos.
func (p *Printer) HLine(pos vec.Vec2, n int, r rune, style tcell.Style) {
	if p.Empty() || pos.Y < 0 || pos.Y >= p.size.Y {
		return
	}
	for i := 0; i < n; i++ {
		x := pos.X + i
		if x < 0 {
			continue
		}
		if x >= p.size.X {
			break
		}
		p.driver.SetCell(p.offset.X+x, p.offset.Y+pos.Y, r, style)
	}
}

// VLine draws n copies of r in a column starting at pos.
func (p *Printer) VLine(pos vec.Vec2, n int, r rune, style tcell.Style) {
	if p.Empty() || pos.X < 0 || pos.X >= p.size.X {
		return
	}
	for i := 0; i < n; i++ {
		y := pos.Y + i
		if y < 0 {
			continue
		}
		if y >= p.size.Y {
			break
		}
		p.driver.SetCell(p.offset.X+pos.X, p.offset.Y+y, r, style)
	}
}

// Box draws a single-line border around the region of the given size, with
// its top-left corner at pos.
func (p *Printer) Box(pos, size vec.Vec2, style tcell.Style) {
	if size.X < 2 || size.Y < 2 {
		return
	}
	right := pos.X + size.X - 1
	bottom := pos.Y + size.Y - 1
	p.HLine(vec.Vec2{X: pos.X + 1, Y: pos.Y}, size.X-2, '─', style)
	p.HLine(vec.Vec2{X: pos.X + 1, Y: bottom}, size.X-2, '─', style)
	p.VLine(vec.Vec2{X: pos.X, Y: pos.Y + 1}, size.Y-2, '│', style)
	p.VLine(vec.Vec2{X: right, Y: pos.Y + 1}, size.Y-2, '│', style)
	p.PrintStyled(pos, "┌", style)
	p.PrintStyled(vec.Vec2{X: right, Y: pos.Y}, "┐", style)
	p.PrintStyled(vec.Vec2{X: pos.X, Y: bottom}, "└", style)
	p.PrintStyled(vec.Vec2{X: right, Y: bottom}, "┘", style)
}

// Sub returns a printer restricted to a sub-region of this one. The region
// is clipped against the parent bounds, so a sub-printer can never draw
// outside its parent.
func (p *Printer) Sub(offset, size vec.Vec2) *Printer {
	offset = offset.Max(vec.Vec2{})
	avail := p.size.Sub(offset)
	return &Printer{
		driver: p.driver,
		offset: p.offset.Add(offset),
		size:   size.Min(avail),
		style:  p.style,
	}
}

// WithStyle returns a printer over the same region with a different default
// style.
func (p *Printer) WithStyle(style tcell.Style) *Printer {
	q := *p
	q.style = style
	return &q
}
