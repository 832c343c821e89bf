package cursive

import (
	"fmt"
	"time"

	"github.com/atomicstack/cursive/backend"
	"github.com/atomicstack/cursive/internal/logging"
	"github.com/atomicstack/cursive/internal/logging/events"
	"github.com/atomicstack/cursive/printer"
	"github.com/atomicstack/cursive/theme"
	"github.com/atomicstack/cursive/vec"
)

// ScreenId identifies one of the controller's screens. Ids are stable for
// the life of the controller.
type ScreenId int

// Cursive is the application root. It owns the terminal driver, a list of
// screens (one active at a time), and the global callback table, and drives
// the layout→draw→input→dispatch loop.
//
// Everything happens on the goroutine that calls Run; the tree is never
// touched concurrently.
type Cursive struct {
	driver          backend.Driver
	styles          *theme.Styles
	screens         []*StackView
	activeScreen    ScreenId
	running         bool
	globalCallbacks map[backend.Key]Callback
	closed          bool
}

// New creates a controller on a real terminal and acquires it. Callers must
// release the terminal with Close.
func New() (*Cursive, error) {
	drv, err := backend.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithDriver(drv)
}

// NewWithDriver creates a controller on the provided driver. Tests and
// headless harnesses pass a backend.Sim.
func NewWithDriver(d backend.Driver) (*Cursive, error) {
	if err := d.Init(); err != nil {
		return nil, err
	}
	c := &Cursive{
		driver:          d,
		styles:          theme.Default(),
		running:         true,
		globalCallbacks: make(map[backend.Key]Callback),
	}
	d.SetDefaultStyle(c.styles.Background)
	c.screens = append(c.screens, NewStackView())
	return c, nil
}

// Close restores the terminal. It is safe to call more than once.
func (c *Cursive) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.driver.Fini()
}

// SetTraceLog enables structured trace logging to the given file.
func (c *Cursive) SetTraceLog(path string) {
	logging.Configure(path)
	logging.SetTraceEnabled(true)
}

// SetStyles replaces the style table used for the default background.
func (c *Cursive) SetStyles(st *theme.Styles) {
	c.styles = st
	c.driver.SetDefaultStyle(st.Background)
}

// SetFPS makes the loop redraw periodically even without input, at most fps
// times per second. Zero restores the default: block until a key arrives.
func (c *Cursive) SetFPS(fps int) {
	if fps <= 0 {
		c.driver.SetTimeout(0)
		return
	}
	c.driver.SetTimeout(time.Second / time.Duration(fps))
}

// Screen returns the currently active screen.
func (c *Cursive) Screen() *StackView {
	return c.screens[c.activeScreen]
}

// AddScreen creates a new empty screen and returns its id. The controller
// starts with screen 0, so the first call returns 1.
func (c *Cursive) AddScreen() ScreenId {
	id := ScreenId(len(c.screens))
	c.screens = append(c.screens, NewStackView())
	events.Screen.Added(int(id))
	return id
}

// AddActiveScreen creates a new screen and makes it active.
func (c *Cursive) AddActiveScreen() ScreenId {
	id := c.AddScreen()
	c.SetScreen(id)
	return id
}

// SetScreen switches the active screen. An out-of-range id is a wiring bug
// in the application and panics.
func (c *Cursive) SetScreen(id ScreenId) {
	if id < 0 || int(id) >= len(c.screens) {
		panic(fmt.Sprintf("cursive: invalid screen id %d, only %d screens present", id, len(c.screens)))
	}
	c.activeScreen = id
	events.Screen.Switched(int(id))
}

// AddLayer pushes a view on top of the active screen.
func (c *Cursive) AddLayer(v View) {
	c.Screen().AddLayer(v)
}

// PopLayer removes the top layer of the active screen.
func (c *Cursive) PopLayer() View {
	return c.Screen().PopLayer()
}

// AddGlobalCallback registers a callback fired when no view consumes the
// key. Registering the same key again overwrites the previous callback.
func (c *Cursive) AddGlobalCallback(key backend.Key, cb Callback) {
	c.globalCallbacks[key] = cb
}

// Find locates a view in the active screen. It returns nil when the selector
// matches nothing.
func (c *Cursive) Find(sel Selector) View {
	return c.Screen().Find(sel)
}

// FindView locates a view and narrows it to the requested concrete type. A
// view of the wrong type is indistinguishable from a missing one.
func FindView[T View](c *Cursive, sel Selector) (T, bool) {
	var zero T
	v := c.Find(sel)
	if v == nil {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// ScreenSize returns the terminal size in cells.
func (c *Cursive) ScreenSize() vec.Vec2 {
	return c.driver.Size()
}

// Quit stops the event loop. The current iteration finishes; no further
// frames are produced.
func (c *Cursive) Quit() {
	c.running = false
}

// Running reports whether the loop will start (or continue) another
// iteration.
func (c *Cursive) Running() bool {
	return c.running
}

func (c *Cursive) layout() {
	c.Screen().Layout(c.driver.Size())
}

func (c *Cursive) draw() {
	p := printer.New(c.driver, vec.Vec2{}, c.driver.Size(), c.styles.Text)
	c.Screen().Draw(p, true)
	c.driver.Flush()
}

// Run drives the loop until Quit is called: clear, layout, draw, block for
// input, dispatch. If a callback or a view panics, the terminal is restored
// before the panic propagates.
func (c *Cursive) Run() {
	defer func() {
		if r := recover(); r != nil {
			c.Close()
			panic(r)
		}
	}()
	events.Loop.Started()
	for c.running {
		c.driver.Clear()
		c.layout()
		c.draw()

		key := c.driver.PollKey()
		if key == backend.KeyNone {
			continue // timed poll expired; redraw
		}
		c.onKey(key)
	}
	events.Loop.Stopped()
}

// onKey routes one key: the active screen first, then the global callback
// table, otherwise the event drops silently.
func (c *Cursive) onKey(key backend.Key) {
	res := c.Screen().OnKeyEvent(key)
	switch {
	case !res.IsConsumed():
		cb, ok := c.globalCallbacks[key]
		events.Input.Dispatched(int32(key), "ignored", ok)
		if ok {
			cb(c)
		}
	case res.callback != nil:
		events.Input.Dispatched(int32(key), "consumed", true)
		res.callback(c)
	default:
		events.Input.Dispatched(int32(key), "consumed", false)
	}
}
