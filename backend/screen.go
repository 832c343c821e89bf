package backend

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/atomicstack/cursive/vec"
)

// Screen drives a real terminal through tcell.
type Screen struct {
	screen  tcell.Screen
	events  chan tcell.Event
	quit    chan struct{}
	timeout time.Duration
	active  bool
}

// NewScreen allocates a terminal driver. The terminal itself is not touched
// until Init is called.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{screen: s}, nil
}

// Init puts the terminal into raw mode and starts the event pump.
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.events = make(chan tcell.Event, 16)
	s.quit = make(chan struct{})
	go s.screen.ChannelEvents(s.events, s.quit)
	s.active = true
	return nil
}

// Fini restores the terminal. Calling it on an inactive screen is a no-op.
func (s *Screen) Fini() {
	if !s.active {
		return
	}
	s.active = false
	close(s.quit)
	s.screen.Fini()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() vec.Vec2 {
	w, h := s.screen.Size()
	return vec.New(w, h)
}

// SetTimeout bounds how long PollKey blocks. Zero blocks indefinitely.
func (s *Screen) SetTimeout(d time.Duration) {
	s.timeout = d
}

// PollKey blocks for the next key press. Resizes are surfaced as KeyResize;
// a timed poll that expires returns KeyNone.
func (s *Screen) PollKey() Key {
	var timer <-chan time.Time
	if s.timeout > 0 {
		timer = time.After(s.timeout)
	}
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return KeyNone
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return keyFromEvent(ev)
			case *tcell.EventResize:
				s.screen.Sync()
				return KeyResize
			}
		case <-timer:
			return KeyNone
		}
	}
}

// Clear resets the surface to the default style.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Flush makes buffered cell writes visible.
func (s *Screen) Flush() {
	s.screen.Show()
}

// SetCell writes one rune at an absolute position.
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// SetDefaultStyle sets the style used for cleared cells.
func (s *Screen) SetDefaultStyle(style tcell.Style) {
	s.screen.SetStyle(style)
}

func keyFromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return Key(ev.Rune())
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyInsert:
		return KeyInsert
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	}
	// The remaining control keys (tab, enter, escape, ctrl+letter) keep
	// their raw ASCII code.
	if k := ev.Key(); k < 256 {
		return Key(k)
	}
	return KeyNone
}
