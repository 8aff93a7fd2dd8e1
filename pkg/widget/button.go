package widget

import (
	"github.com/go-drift/headless/pkg/event"
	"github.com/go-drift/headless/pkg/focus"
)

// ButtonController reconciles pointer and key events into button state
// transitions. Every handler no-ops, leaving propagation untouched,
// when the current hop entity holds no button record.
type ButtonController struct {
	store *Store
	focus *focus.State
	sink  Sink
}

// NewButtonController returns a controller over the given store, focus
// context, and outcome sink.
func NewButtonController(store *Store, f *focus.State, sink Sink) *ButtonController {
	return &ButtonController{store: store, focus: f, sink: sink}
}

// Register wires the controller's handlers into d.
func (c *ButtonController) Register(d *event.Dispatcher) {
	d.Handle(event.TypeKey, c.onKey)
	d.Handle(event.TypePointerDown, c.onPointerDown)
	d.Handle(event.TypePointerUp, c.onRelease)
	d.Handle(event.TypePointerClick, c.onPointerClick)
	d.Handle(event.TypePointerDragEnd, c.onRelease)
	d.Handle(event.TypePointerCancel, c.onRelease)
}

// onKey activates the button on a non-repeat Enter or Space press while
// it holds focus. Other keys pass through unconsumed.
func (c *ButtonController) onKey(ev *event.Event) {
	target := ev.Target()
	b, ok := c.store.Button(target)
	if !ok || c.store.IsDisabled(target) {
		return
	}
	if !ev.Key.IsPress() || !ev.Key.IsActivation() {
		return
	}
	ev.StopPropagation()
	NotifyActivated(c.sink, target, b.OnClick)
}

// onPointerDown begins a press: Pressed is set and the button takes
// focus without a ring. A disabled button still absorbs the event.
func (c *ButtonController) onPointerDown(ev *event.Event) {
	target := ev.Target()
	if _, ok := c.store.Button(target); !ok {
		return
	}
	ev.StopPropagation()
	if c.store.IsDisabled(target) {
		return
	}
	c.focus.SetFocus(target)
	c.focus.SetVisible(false)
	c.store.setPressed(target, true)
}

// onPointerClick fires the activation. The platform delivers the click
// before the release, so Pressed is still set for a completed tap; a
// press that dragged off and back arrives with Pressed cleared and
// produces no notification. The click is absorbed either way.
func (c *ButtonController) onPointerClick(ev *event.Event) {
	target := ev.Target()
	b, ok := c.store.Button(target)
	if !ok {
		return
	}
	pressed := c.store.IsPressed(target) && !c.store.IsDisabled(target)
	ev.StopPropagation()
	if pressed {
		NotifyActivated(c.sink, target, b.OnClick)
	}
}

// onRelease ends a press for up, drag-end, and cancel. The clear is
// gated on not-disabled: disabling mid-press parks Pressed until the
// button is re-enabled and released.
func (c *ButtonController) onRelease(ev *event.Event) {
	target := ev.Target()
	if _, ok := c.store.Button(target); !ok {
		return
	}
	ev.StopPropagation()
	if !c.store.IsDisabled(target) {
		c.store.setPressed(target, false)
	}
}
