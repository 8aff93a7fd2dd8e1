package event

import "github.com/go-drift/headless/pkg/entity"

// Handler processes an event. Handlers run on the dispatch goroutine
// and must not block.
type Handler func(*Event)

// Dispatcher routes events to handlers registered per type. Handlers
// run in registration order at every propagation hop. Dispatcher is
// not safe for concurrent use; the engine serializes access.
type Dispatcher struct {
	handlers map[Type][]Handler
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Type][]Handler)}
}

// Handle registers h for events of type t. Registration order is
// delivery order.
func (d *Dispatcher) Handle(t Type, h Handler) {
	if h == nil {
		return
	}
	d.handlers[t] = append(d.handlers[t], h)
}

// HandlerCount returns the number of handlers registered for t.
func (d *Dispatcher) HandlerCount(t Type) int {
	return len(d.handlers[t])
}

// Trigger walks the event through its target and bubble path, running
// each registered handler until the event is consumed. It returns the
// number of hops visited.
func (d *Dispatcher) Trigger(ev *Event) int {
	if ev == nil || ev.typ == TypeNone {
		return 0
	}
	handlers := d.handlers[ev.typ]
	hops := 0
	for _, hop := range ev.hops() {
		ev.retarget(hop)
		hops++
		for _, h := range handlers {
			h(ev)
			if ev.consumed {
				return hops
			}
		}
	}
	return hops
}

// hops returns the visit order: origin first, then the bubble path.
func (e *Event) hops() []entity.ID {
	if len(e.path) == 0 {
		return []entity.ID{e.origin}
	}
	out := make([]entity.ID, 0, len(e.path)+1)
	out = append(out, e.origin)
	return append(out, e.path...)
}
