package cursive

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mattn/go-runewidth"

	"github.com/atomicstack/cursive/backend"
	"github.com/atomicstack/cursive/internal/logging/events"
	"github.com/atomicstack/cursive/printer"
	"github.com/atomicstack/cursive/theme"
	"github.com/atomicstack/cursive/vec"
)

// Item is one selectable entry in a SelectView.
type Item struct {
	ID    string
	Label string
}

// SelectView is a scrolling list with a cursor and an incremental fuzzy
// filter. Printable keys narrow the list, backspace edits the query, ctrl+u
// clears it, and enter fires the submit callback with the selected item.
type SelectView struct {
	name     string
	styles   *theme.Styles
	full     []Item
	items    []Item
	filter   string
	cursor   int
	offset   int // first visible item
	height   int // rows granted by the last layout
	onSubmit func(*Cursive, Item)
}

// NewSelectView creates a list over the given items.
func NewSelectView(items ...Item) *SelectView {
	s := &SelectView{styles: theme.Default()}
	s.SetItems(items)
	return s
}

// SetName declares the view's identifier for ByName lookups.
func (s *SelectView) SetName(name string) *SelectView {
	s.name = name
	return s
}

// SetStyles overrides the default style table.
func (s *SelectView) SetStyles(st *theme.Styles) *SelectView {
	s.styles = st
	return s
}

// SetOnSubmit registers the callback fired when enter is pressed on an item.
func (s *SelectView) SetOnSubmit(fn func(*Cursive, Item)) *SelectView {
	s.onSubmit = fn
	return s
}

// SetItems replaces the full item list and re-applies the current filter.
func (s *SelectView) SetItems(items []Item) {
	s.full = append(s.full[:0:0], items...)
	s.applyFilter()
}

// AddItem appends one item to the full list.
func (s *SelectView) AddItem(id, label string) *SelectView {
	s.full = append(s.full, Item{ID: id, Label: label})
	s.applyFilter()
	return s
}

// Selected returns the item under the cursor.
func (s *SelectView) Selected() (Item, bool) {
	if len(s.items) == 0 || s.cursor < 0 || s.cursor >= len(s.items) {
		return Item{}, false
	}
	return s.items[s.cursor], true
}

// Filter returns the current filter query.
func (s *SelectView) Filter() string {
	return s.filter
}

// PreferredSize implements Sizer: the widest label plus cursor marker, and
// one row per item plus the filter row.
func (s *SelectView) PreferredSize() vec.Vec2 {
	w := 0
	for _, item := range s.full {
		if lw := runewidth.StringWidth(item.Label) + 2; lw > w {
			w = lw
		}
	}
	return vec.New(w, len(s.full)+1)
}

// Layout implements View.
func (s *SelectView) Layout(size vec.Vec2) {
	s.height = size.Y
	s.ensureCursorVisible()
}

// maxVisible returns the item rows available, keeping one row for the filter
// prompt when a query is active.
func (s *SelectView) maxVisible() int {
	rows := s.height
	if s.filter != "" {
		rows--
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}

// Draw implements View.
func (s *SelectView) Draw(p *printer.Printer, focused bool) {
	if p.Empty() {
		return
	}
	visible := s.maxVisible()
	for row := 0; row < visible && s.offset+row < len(s.items); row++ {
		idx := s.offset + row
		item := s.items[idx]
		style := s.styles.Item
		marker := "  "
		if idx == s.cursor {
			marker = "> "
			if focused {
				style = s.styles.SelectedItem
			}
		}
		p.PrintStyled(vec.New(0, row), marker+item.Label, style)
	}
	if s.filter != "" && s.height > 0 {
		p.PrintStyled(vec.New(0, s.height-1), "/", s.styles.FilterPrompt)
		p.PrintStyled(vec.New(1, s.height-1), s.filter, s.styles.Filter)
	}
}

// OnKeyEvent implements View.
func (s *SelectView) OnKeyEvent(key backend.Key) EventResult {
	switch key {
	case backend.KeyUp:
		s.moveCursorBy(-1)
		return Consumed(nil)
	case backend.KeyDown:
		s.moveCursorBy(1)
		return Consumed(nil)
	case backend.KeyHome:
		s.moveCursorHome()
		return Consumed(nil)
	case backend.KeyEnd:
		s.moveCursorEnd()
		return Consumed(nil)
	case backend.KeyPageUp:
		s.moveCursorBy(-s.pageSize())
		return Consumed(nil)
	case backend.KeyPageDown:
		s.moveCursorBy(s.pageSize())
		return Consumed(nil)
	case backend.KeyEnter:
		item, ok := s.Selected()
		if !ok || s.onSubmit == nil {
			return Consumed(nil)
		}
		fn := s.onSubmit
		return Consumed(func(c *Cursive) { fn(c, item) })
	case backend.KeyBackspace:
		if s.filter == "" {
			return Ignored()
		}
		runes := []rune(s.filter)
		s.filter = string(runes[:len(runes)-1])
		s.applyFilter()
		events.Filter.Backspace(s.name, s.filter)
		return Consumed(nil)
	case backend.KeyCtrlU:
		if s.filter == "" {
			return Ignored()
		}
		s.filter = ""
		s.applyFilter()
		events.Filter.Cleared(s.name)
		return Consumed(nil)
	}
	if r, ok := key.Printable(); ok {
		s.filter += string(r)
		s.applyFilter()
		events.Filter.Append(s.name, s.filter)
		return Consumed(nil)
	}
	return Ignored()
}

// TakeFocus implements View.
func (s *SelectView) TakeFocus() bool {
	return true
}

// Find implements View.
func (s *SelectView) Find(sel Selector) View {
	return matchLeaf(s, s.name, sel)
}

func (s *SelectView) moveCursorHome() bool {
	if len(s.items) == 0 {
		s.cursor = 0
		return false
	}
	old := s.cursor
	s.cursor = 0
	s.ensureCursorVisible()
	return old != s.cursor
}

func (s *SelectView) moveCursorEnd() bool {
	n := len(s.items)
	if n == 0 {
		s.cursor = 0
		return false
	}
	old := s.cursor
	s.cursor = n - 1
	s.ensureCursorVisible()
	return old != s.cursor
}

func (s *SelectView) moveCursorBy(delta int) bool {
	if len(s.items) == 0 {
		s.cursor = 0
		return false
	}
	old := s.cursor
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.items) {
		s.cursor = len(s.items) - 1
	}
	s.ensureCursorVisible()
	return s.cursor != old
}

func (s *SelectView) pageSize() int {
	total := len(s.items)
	if total == 0 {
		return 0
	}
	size := s.maxVisible()
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// ensureCursorVisible adjusts the viewport offset so the cursor stays inside
// the visible window.
func (s *SelectView) ensureCursorVisible() {
	if len(s.items) == 0 {
		s.cursor = 0
		s.offset = 0
		return
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor >= len(s.items) {
		s.cursor = len(s.items) - 1
	}
	visible := s.maxVisible()
	if visible <= 0 {
		s.offset = 0
		return
	}
	maxOffset := len(s.items) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if upper := s.offset + visible - 1; s.cursor > upper {
		s.offset = s.cursor - visible + 1
	}
}

// applyFilter rebuilds the visible items from the full list and moves the
// cursor to the best fuzzy match.
func (s *SelectView) applyFilter() {
	s.items = filterItems(s.full, s.filter)
	if len(s.items) == 0 {
		s.cursor = 0
		s.offset = 0
		return
	}
	if idx := bestMatchIndex(s.items, s.filter); idx >= 0 {
		s.cursor = idx
	}
	if s.cursor >= len(s.items) {
		s.cursor = len(s.items) - 1
	}
	s.ensureCursorVisible()
}

// filterItems keeps the items whose labels fuzzy-match the query, preserving
// the original order.
func filterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append(items[:0:0], items...)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	matched := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matched[rank.OriginalIndex] = struct{}{}
	}
	filtered := make([]Item, 0, len(matched))
	for i, item := range items {
		if _, ok := matched[i]; ok {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// bestMatchIndex returns the index of the closest fuzzy match, or -1 when
// the query is empty.
func bestMatchIndex(items []Item, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(items) == 0 {
		return -1
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
		}
	}
	return best.OriginalIndex
}
