// Package events exposes typed tracers for the framework's trace log.
package events

import "github.com/atomicstack/cursive/internal/logging"

type LoopTracer struct{}

type InputTracer struct{}

type ScreenTracer struct{}

type LayerTracer struct{}

type FilterTracer struct{}

var (
	Loop   = LoopTracer{}
	Input  = InputTracer{}
	Screen = ScreenTracer{}
	Layer  = LayerTracer{}
	Filter = FilterTracer{}
)

func (LoopTracer) Started() {
	logging.Trace("loop.start", nil)
}

func (LoopTracer) Stopped() {
	logging.Trace("loop.stop", nil)
}

func (InputTracer) Dispatched(key int32, outcome string, handled bool) {
	logging.Trace("input.dispatch", map[string]interface{}{
		"key":     key,
		"outcome": outcome,
		"handled": handled,
	})
}

func (ScreenTracer) Added(id int) {
	logging.Trace("screen.add", map[string]interface{}{"id": id})
}

func (ScreenTracer) Switched(id int) {
	logging.Trace("screen.switch", map[string]interface{}{"id": id})
}

func (LayerTracer) Pushed(depth int) {
	logging.Trace("layer.push", map[string]interface{}{"depth": depth})
}

func (LayerTracer) Popped(depth int) {
	logging.Trace("layer.pop", map[string]interface{}{"depth": depth})
}

func (FilterTracer) Append(name, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"view": name, "filter": filter})
}

func (FilterTracer) Backspace(name, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"view": name, "filter": filter})
}

func (FilterTracer) Cleared(name string) {
	logging.Trace("filter.clear", map[string]interface{}{"view": name})
}
