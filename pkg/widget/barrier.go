package widget

import (
	"github.com/go-drift/headless/pkg/event"
	"github.com/go-drift/headless/pkg/focus"
)

// BarrierController reconciles dismiss gestures for modal barriers:
// any pointer press on the barrier, or a non-repeat Escape press while
// it holds focus. Barriers are never disabled and close requests have
// no broadcast fallback; a barrier with a nil OnClose still absorbs.
type BarrierController struct {
	store *Store
	focus *focus.State
	sink  Sink
}

// NewBarrierController returns a controller over the given store,
// focus context, and outcome sink.
func NewBarrierController(store *Store, f *focus.State, sink Sink) *BarrierController {
	return &BarrierController{store: store, focus: f, sink: sink}
}

// Register wires the controller's handlers into d. Dismissal rides the
// press itself, not the completed click.
func (c *BarrierController) Register(d *event.Dispatcher) {
	d.Handle(event.TypeKey, c.onKey)
	d.Handle(event.TypePointerDown, c.onPointerDown)
}

// onKey requests close on a non-repeat Escape press while the barrier
// holds focus.
func (c *BarrierController) onKey(ev *event.Event) {
	target := ev.Target()
	b, ok := c.store.Barrier(target)
	if !ok {
		return
	}
	if !ev.Key.IsPress() || !ev.Key.IsEscape() {
		return
	}
	ev.StopPropagation()
	NotifyClose(c.sink, target, b.OnClose)
}

// onPointerDown requests close for any press on the barrier. Focus
// moves to the barrier first so a following Escape reaches it.
func (c *BarrierController) onPointerDown(ev *event.Event) {
	target := ev.Target()
	b, ok := c.store.Barrier(target)
	if !ok {
		return
	}
	c.focus.SetFocus(target)
	c.focus.SetVisible(false)
	ev.StopPropagation()
	NotifyClose(c.sink, target, b.OnClose)
}
