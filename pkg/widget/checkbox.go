package widget

import (
	"github.com/go-drift/headless/pkg/event"
	"github.com/go-drift/headless/pkg/focus"
)

// CheckboxController reconciles clicks and key activation into toggle
// proposals. It never writes Checked: the proposal carries the
// inverted value and the application commits it (or not) with
// Store.SetChecked. Checkboxes have no press semantics, so only key
// and click handlers are registered.
type CheckboxController struct {
	store *Store
	focus *focus.State
	sink  Sink
}

// NewCheckboxController returns a controller over the given store,
// focus context, and outcome sink.
func NewCheckboxController(store *Store, f *focus.State, sink Sink) *CheckboxController {
	return &CheckboxController{store: store, focus: f, sink: sink}
}

// Register wires the controller's handlers into d.
func (c *CheckboxController) Register(d *event.Dispatcher) {
	d.Handle(event.TypeKey, c.onKey)
	d.Handle(event.TypePointerClick, c.onPointerClick)
}

// onKey proposes a toggle on a non-repeat Enter or Space press while
// the checkbox holds focus.
func (c *CheckboxController) onKey(ev *event.Event) {
	target := ev.Target()
	cb, ok := c.store.Checkbox(target)
	if !ok || c.store.IsDisabled(target) {
		return
	}
	if !ev.Key.IsPress() || !ev.Key.IsActivation() {
		return
	}
	ev.StopPropagation()
	NotifyValue(c.sink, target, cb.OnChange, !cb.Checked)
}

// onPointerClick moves focus to the checkbox before absorbing the
// click — a disabled checkbox still takes focus and still absorbs.
// Only the toggle proposal is gated on Disabled.
func (c *CheckboxController) onPointerClick(ev *event.Event) {
	target := ev.Target()
	cb, ok := c.store.Checkbox(target)
	if !ok {
		return
	}
	c.focus.SetFocus(target)
	c.focus.SetVisible(false)
	ev.StopPropagation()
	if !c.store.IsDisabled(target) {
		NotifyValue(c.sink, target, cb.OnChange, !cb.Checked)
	}
}
