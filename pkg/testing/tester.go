package testing

import (
	"testing"

	"github.com/go-drift/headless/pkg/engine"
	"github.com/go-drift/headless/pkg/entity"
	"github.com/go-drift/headless/pkg/event"
	"github.com/go-drift/headless/pkg/input"
	"github.com/go-drift/headless/pkg/widget"
)

// ValueChange records one checkbox proposal seen by the tester.
type ValueChange struct {
	Entity entity.ID
	Value  bool
}

// InteractionTester drives a runtime with synthetic input and records
// the outcomes widgets produce. Widgets spawned through the tester
// report into Clicks, ValueChanges, and Closes; widgets spawned
// directly on the Runtime behave however their records say.
type InteractionTester struct {
	t       *testing.T
	runtime *engine.Runtime

	clicks  []entity.ID
	changes []ValueChange
	closes  []entity.ID
}

// NewInteractionTester creates a tester around a fresh runtime. Spawn
// failures surface as panics; prefer NewInteractionTesterWithT inside
// tests.
func NewInteractionTester() *InteractionTester {
	it := &InteractionTester{runtime: engine.NewRuntime()}
	it.runtime.OnActivated(func(e entity.ID) {
		it.clicks = append(it.clicks, e)
	})
	it.runtime.OnValueChanged(func(e entity.ID, v bool) {
		it.changes = append(it.changes, ValueChange{Entity: e, Value: v})
	})
	return it
}

// NewInteractionTesterWithT creates a tester whose spawn failures fail
// the test. This is the recommended constructor.
func NewInteractionTesterWithT(t *testing.T) *InteractionTester {
	it := NewInteractionTester()
	it.t = t
	return it
}

// Runtime returns the underlying runtime for direct access.
func (it *InteractionTester) Runtime() *engine.Runtime {
	return it.runtime
}

// SpawnButton spawns a button with no callback, so activations
// broadcast and land in Clicks.
func (it *InteractionTester) SpawnButton(label string) entity.ID {
	id, err := it.runtime.SpawnButton(label, nil)
	it.check("SpawnButton", err)
	return id
}

// SpawnCheckbox spawns a checkbox with no callback, so proposals
// broadcast and land in ValueChanges.
func (it *InteractionTester) SpawnCheckbox(label string, checked bool) entity.ID {
	id, err := it.runtime.SpawnCheckbox(label, &widget.Checkbox{Checked: checked})
	it.check("SpawnCheckbox", err)
	return id
}

// SpawnBarrier spawns a modal barrier whose dismissals land in Closes.
// Close requests have no broadcast form, so the tester supplies the
// recording callback itself.
func (it *InteractionTester) SpawnBarrier() entity.ID {
	var id entity.ID
	var err error
	id, err = it.runtime.SpawnBarrier(&widget.Barrier{OnClose: func() {
		it.closes = append(it.closes, id)
	}})
	it.check("SpawnBarrier", err)
	return id
}

// Despawn removes an entity from the runtime.
func (it *InteractionTester) Despawn(id entity.ID) bool {
	return it.runtime.Despawn(id)
}

// Tap sends the canonical tap sequence at target: down, click, up.
// Path lists the widgets behind the target, nearest first.
func (it *InteractionTester) Tap(target entity.ID, path ...entity.ID) {
	it.SendPointerDown(target, path...)
	it.SendPointerClick(target, path...)
	it.SendPointerUp(target, path...)
}

// DragOff sends a press that slides off before release: down, drag-end.
func (it *InteractionTester) DragOff(target entity.ID, path ...entity.ID) {
	it.SendPointerDown(target, path...)
	it.SendPointerDragEnd(target, path...)
}

// SendPointerDown sends a raw pointer-down at target.
func (it *InteractionTester) SendPointerDown(target entity.ID, path ...entity.ID) *event.Event {
	return it.sendPointer(event.TypePointerDown, target, path)
}

// SendPointerUp sends a raw pointer-up at target.
func (it *InteractionTester) SendPointerUp(target entity.ID, path ...entity.ID) *event.Event {
	return it.sendPointer(event.TypePointerUp, target, path)
}

// SendPointerClick sends a raw click at target.
func (it *InteractionTester) SendPointerClick(target entity.ID, path ...entity.ID) *event.Event {
	return it.sendPointer(event.TypePointerClick, target, path)
}

// SendPointerDragEnd sends a raw drag-end at target.
func (it *InteractionTester) SendPointerDragEnd(target entity.ID, path ...entity.ID) *event.Event {
	return it.sendPointer(event.TypePointerDragEnd, target, path)
}

// SendPointerCancel sends a raw pointer-cancel at target.
func (it *InteractionTester) SendPointerCancel(target entity.ID, path ...entity.ID) *event.Event {
	return it.sendPointer(event.TypePointerCancel, target, path)
}

func (it *InteractionTester) sendPointer(typ event.Type, target entity.ID, path []entity.ID) *event.Event {
	ev := event.NewPointer(typ, target, input.PointerEvent{ID: 1}, path...)
	it.runtime.Dispatch(ev)
	return ev
}

// FocusOn moves keyboard focus to id and shows the focus ring, like
// keyboard-driven focus traversal would.
func (it *InteractionTester) FocusOn(id entity.ID) {
	it.runtime.Focus().SetFocus(id)
	it.runtime.Focus().SetVisible(true)
}

// Focused returns the entity holding focus, or entity.None.
func (it *InteractionTester) Focused() entity.ID {
	return it.runtime.Focus().Focused()
}

// PressKey sends a key press to the focused entity. Reports false when
// nothing is focused.
func (it *InteractionTester) PressKey(k input.Key) bool {
	return it.keyToFocused(input.KeyEvent{Key: k, State: input.KeyStatePressed})
}

// RepeatKey sends an auto-repeat key press to the focused entity.
func (it *InteractionTester) RepeatKey(k input.Key) bool {
	return it.keyToFocused(input.KeyEvent{Key: k, State: input.KeyStatePressed, Repeat: true})
}

// ReleaseKey sends a key release to the focused entity.
func (it *InteractionTester) ReleaseKey(k input.Key) bool {
	return it.keyToFocused(input.KeyEvent{Key: k, State: input.KeyStateReleased})
}

func (it *InteractionTester) keyToFocused(ev input.KeyEvent) bool {
	target := it.runtime.Focus().Focused()
	if target.IsNone() {
		return false
	}
	it.runtime.Dispatch(event.NewKey(target, ev))
	return true
}

// SendKey sends a raw key event at target, bypassing focus routing.
func (it *InteractionTester) SendKey(target entity.ID, ev input.KeyEvent, path ...entity.ID) *event.Event {
	e := event.NewKey(target, ev, path...)
	it.runtime.Dispatch(e)
	return e
}

// Clicks returns the button activations recorded so far.
func (it *InteractionTester) Clicks() []entity.ID {
	return it.clicks
}

// ValueChanges returns the checkbox proposals recorded so far.
func (it *InteractionTester) ValueChanges() []ValueChange {
	return it.changes
}

// Closes returns the barrier dismissals recorded so far.
func (it *InteractionTester) Closes() []entity.ID {
	return it.closes
}

// Reset clears all recorded outcomes.
func (it *InteractionTester) Reset() {
	it.clicks = nil
	it.changes = nil
	it.closes = nil
}

// Find evaluates a finder against the runtime.
func (it *InteractionTester) Find(finder Finder) FinderResult {
	return FinderResult{
		ids:    finder.Evaluate(it.runtime),
		finder: finder,
	}
}

func (it *InteractionTester) check(op string, err error) {
	if err == nil {
		return
	}
	if it.t != nil {
		it.t.Fatalf("%s: %v", op, err)
		return
	}
	panic(op + ": " + err.Error())
}
