package widget

import (
	"testing"

	"github.com/go-drift/headless/pkg/event"
	"github.com/go-drift/headless/pkg/input"
)

func TestCheckboxClickProposesInvertedValue(t *testing.T) {
	f := newFixture()
	var got []bool
	id := f.spawn(t, &Checkbox{Checked: false, OnChange: func(v bool) { got = append(got, v) }})

	f.pointer(event.TypePointerClick, id)

	if len(got) != 1 || got[0] != true {
		t.Fatalf("proposals = %v, want [true]", got)
	}
	cb, _ := f.store.Checkbox(id)
	if cb.Checked {
		t.Error("controller wrote Checked; only SetChecked may")
	}
	if len(f.sink.valueChanges) != 0 {
		t.Error("callback checkbox must not also broadcast")
	}
}

func TestCheckboxClickBroadcastsWithoutCallback(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Checkbox{Checked: true})

	f.pointer(event.TypePointerClick, id)

	want := proposal{id, false}
	if len(f.sink.valueChanges) != 1 || f.sink.valueChanges[0] != want {
		t.Errorf("valueChanges = %v, want [%v]", f.sink.valueChanges, want)
	}
}

func TestCheckboxProposalFollowsExternalState(t *testing.T) {
	f := newFixture()
	var got []bool
	id := f.spawn(t, &Checkbox{OnChange: func(v bool) { got = append(got, v) }})

	f.pointer(event.TypePointerClick, id)
	f.store.SetChecked(id, true) // the owner accepts the proposal
	f.pointer(event.TypePointerClick, id)

	if len(got) != 2 || got[0] != true || got[1] != false {
		t.Errorf("proposals = %v, want [true false]", got)
	}
}

func TestCheckboxClickTakesFocus(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Checkbox{})
	f.focus.SetVisible(true)

	ev := f.pointer(event.TypePointerClick, id)

	if !ev.Consumed() {
		t.Error("click not consumed")
	}
	if !f.focus.IsFocused(id) {
		t.Errorf("focus = %v, want %v", f.focus.Focused(), id)
	}
	if f.focus.Visible() {
		t.Error("pointer interaction should clear the focus indicator")
	}
}

func TestDisabledCheckboxClickStillFocusesAndAbsorbs(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Checkbox{OnChange: func(bool) { t.Error("OnChange ran on a disabled checkbox") }})
	f.store.SetDisabled(id, true)

	ev := f.pointer(event.TypePointerClick, id)

	if !ev.Consumed() {
		t.Error("disabled checkbox let the click pass")
	}
	if !f.focus.IsFocused(id) {
		t.Error("disabled checkbox should still take focus on click")
	}
	if !f.sink.quiet() {
		t.Error("disabled checkbox notified")
	}
}

func TestCheckboxKeyToggle(t *testing.T) {
	tests := []struct {
		name     string
		ev       input.KeyEvent
		consumed bool
		proposed bool
	}{
		{"enter press", input.KeyEvent{Key: input.KeyEnter, State: input.KeyStatePressed}, true, true},
		{"space press", input.KeyEvent{Key: input.KeySpace, State: input.KeyStatePressed}, true, true},
		{"enter repeat", input.KeyEvent{Key: input.KeyEnter, State: input.KeyStatePressed, Repeat: true}, false, false},
		{"space release", input.KeyEvent{Key: input.KeySpace, State: input.KeyStateReleased}, false, false},
		{"escape press", input.KeyEvent{Key: input.KeyEscape, State: input.KeyStatePressed}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			proposed := false
			id := f.spawn(t, &Checkbox{Checked: true, OnChange: func(v bool) {
				proposed = true
				if v {
					t.Error("proposal = true, want inverted value false")
				}
			}})

			ev := f.key(id, tt.ev)

			if ev.Consumed() != tt.consumed {
				t.Errorf("consumed = %v, want %v", ev.Consumed(), tt.consumed)
			}
			if proposed != tt.proposed {
				t.Errorf("proposed = %v, want %v", proposed, tt.proposed)
			}
		})
	}
}

func TestDisabledCheckboxKeyPassesThrough(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Checkbox{})
	f.store.SetDisabled(id, true)

	ev := f.key(id, pressOf(input.KeySpace))

	if ev.Consumed() {
		t.Error("disabled checkbox consumed a key event")
	}
	if !f.sink.quiet() {
		t.Error("disabled checkbox notified")
	}
	if f.focus.Focused() == id {
		t.Error("key events never move focus")
	}
}

func TestPointerDownBubblesThroughCheckbox(t *testing.T) {
	f := newFixture()
	closed := false
	barrier := f.spawn(t, &Barrier{OnClose: func() { closed = true }})
	box := f.spawn(t, &Checkbox{})

	// Checkboxes handle clicks, not raw down transitions, so a down at the
	// checkbox reaches the barrier behind it.
	ev := f.pointer(event.TypePointerDown, box, barrier)

	if !closed {
		t.Error("pointer down did not reach the barrier behind the checkbox")
	}
	if !ev.Consumed() {
		t.Error("barrier should have consumed the down transition")
	}
}
