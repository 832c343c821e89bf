package backend

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/atomicstack/cursive/vec"
)

// Sim is an in-memory Driver that replays a scripted key sequence and
// records every cell write. Tests drive the full controller loop against it
// without a terminal.
type Sim struct {
	size    vec.Vec2
	keys    []Key
	cells   [][]rune
	styles  [][]tcell.Style
	def     tcell.Style
	timeout time.Duration

	// Counters exposed for assertions.
	InitCount int
	FiniCount int
	Flushes   int
	Starved   int // polls issued after the script ran out
}

// NewSim creates a simulated terminal of the given size.
func NewSim(width, height int) *Sim {
	s := &Sim{size: vec.New(width, height)}
	s.reset()
	return s
}

func (s *Sim) reset() {
	s.cells = make([][]rune, s.size.Y)
	s.styles = make([][]tcell.Style, s.size.Y)
	for y := range s.cells {
		s.cells[y] = make([]rune, s.size.X)
		s.styles[y] = make([]tcell.Style, s.size.X)
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
			s.styles[y][x] = s.def
		}
	}
}

// Feed appends keys to the input script.
func (s *Sim) Feed(keys ...Key) *Sim {
	s.keys = append(s.keys, keys...)
	return s
}

// FeedRunes appends one key per rune to the input script.
func (s *Sim) FeedRunes(text string) *Sim {
	for _, r := range text {
		s.keys = append(s.keys, FromRune(r))
	}
	return s
}

// Init implements Driver.
func (s *Sim) Init() error {
	s.InitCount++
	return nil
}

// Fini implements Driver.
func (s *Sim) Fini() {
	s.FiniCount++
}

// Size implements Driver.
func (s *Sim) Size() vec.Vec2 {
	return s.size
}

// Resize changes the reported terminal size and clears the grid.
func (s *Sim) Resize(width, height int) {
	s.size = vec.New(width, height)
	s.reset()
}

// SetTimeout implements Driver.
func (s *Sim) SetTimeout(d time.Duration) {
	s.timeout = d
}

// Timeout returns the last value passed to SetTimeout.
func (s *Sim) Timeout() time.Duration {
	return s.timeout
}

// PollKey pops the next scripted key. An exhausted script behaves like a
// timed poll that expired.
func (s *Sim) PollKey() Key {
	if len(s.keys) == 0 {
		s.Starved++
		return KeyNone
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k
}

// Clear implements Driver.
func (s *Sim) Clear() {
	s.reset()
}

// Flush implements Driver.
func (s *Sim) Flush() {
	s.Flushes++
}

// SetCell implements Driver. Writes outside the grid are dropped.
func (s *Sim) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= s.size.X || y >= s.size.Y {
		return
	}
	s.cells[y][x] = r
	s.styles[y][x] = style
}

// SetDefaultStyle implements Driver.
func (s *Sim) SetDefaultStyle(style tcell.Style) {
	s.def = style
}

// Rune returns the rune at the given cell, or a space when out of range.
func (s *Sim) Rune(x, y int) rune {
	if x < 0 || y < 0 || x >= s.size.X || y >= s.size.Y {
		return ' '
	}
	return s.cells[y][x]
}

// StyleAt returns the style of the given cell.
func (s *Sim) StyleAt(x, y int) tcell.Style {
	if x < 0 || y < 0 || x >= s.size.X || y >= s.size.Y {
		return s.def
	}
	return s.styles[y][x]
}

// Line renders row y as a string.
func (s *Sim) Line(y int) string {
	if y < 0 || y >= s.size.Y {
		return ""
	}
	return string(s.cells[y])
}

// Content renders the whole grid, rows joined by newlines.
func (s *Sim) Content() string {
	rows := make([]string, s.size.Y)
	for y := range rows {
		rows[y] = s.Line(y)
	}
	return strings.Join(rows, "\n")
}
