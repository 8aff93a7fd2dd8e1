package widget

import (
	"testing"

	"github.com/go-drift/headless/pkg/event"
	"github.com/go-drift/headless/pkg/input"
)

func TestButtonTapRunsCallbackOnce(t *testing.T) {
	f := newFixture()
	clicks := 0
	id := f.spawn(t, &Button{OnClick: func() { clicks++ }})

	f.tap(id)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if len(f.sink.activated) != 0 {
		t.Error("callback button must not also broadcast")
	}
	if len(f.sink.invoked) != 1 || f.sink.invoked[0] != id {
		t.Errorf("invoked = %v, want [%v]", f.sink.invoked, id)
	}
}

func TestButtonTapBroadcastsWithoutCallback(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Button{})

	f.tap(id)

	if len(f.sink.activated) != 1 || f.sink.activated[0] != id {
		t.Errorf("activated = %v, want [%v]", f.sink.activated, id)
	}
}

func TestButtonTapConsumesEachTransition(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Button{})

	for _, typ := range []event.Type{
		event.TypePointerDown,
		event.TypePointerClick,
		event.TypePointerUp,
		event.TypePointerDragEnd,
		event.TypePointerCancel,
	} {
		if ev := f.pointer(typ, id); !ev.Consumed() {
			t.Errorf("%v not consumed", typ)
		}
	}
}

func TestButtonPressedLifecycle(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Button{})

	f.pointer(event.TypePointerDown, id)
	if !f.store.IsPressed(id) {
		t.Error("IsPressed = false after pointer down")
	}
	f.pointer(event.TypePointerUp, id)
	if f.store.IsPressed(id) {
		t.Error("IsPressed = true after pointer up")
	}

	f.pointer(event.TypePointerDown, id)
	f.pointer(event.TypePointerDragEnd, id)
	if f.store.IsPressed(id) {
		t.Error("IsPressed = true after drag end")
	}

	f.pointer(event.TypePointerDown, id)
	f.pointer(event.TypePointerCancel, id)
	if f.store.IsPressed(id) {
		t.Error("IsPressed = true after cancel")
	}
}

func TestButtonPointerDownTakesFocus(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Button{})
	f.focus.SetVisible(true)

	f.pointer(event.TypePointerDown, id)

	if !f.focus.IsFocused(id) {
		t.Errorf("focus = %v, want %v", f.focus.Focused(), id)
	}
	if f.focus.Visible() {
		t.Error("pointer interaction should clear the focus indicator")
	}
}

func TestButtonClickWithoutPressDoesNotActivate(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Button{})

	// A drag that ends elsewhere clears Pressed before the click lands.
	f.pointer(event.TypePointerDown, id)
	f.pointer(event.TypePointerDragEnd, id)
	ev := f.pointer(event.TypePointerClick, id)

	if !ev.Consumed() {
		t.Error("click on a button should be consumed even without activation")
	}
	if !f.sink.quiet() {
		t.Error("click without a live press must not activate")
	}
}

func TestDisabledButtonAbsorbsTap(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Button{OnClick: func() { t.Error("OnClick ran on a disabled button") }})
	f.store.SetDisabled(id, true)

	f.pointer(event.TypePointerDown, id)
	if f.store.IsPressed(id) {
		t.Error("disabled button became pressed")
	}
	if f.focus.Focused() == id {
		t.Error("disabled button took focus")
	}

	f.pointer(event.TypePointerClick, id)
	f.pointer(event.TypePointerUp, id)
	if !f.sink.quiet() {
		t.Error("disabled button notified")
	}
}

func TestButtonDisabledMidPressKeepsPressed(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Button{})

	f.pointer(event.TypePointerDown, id)
	f.store.SetDisabled(id, true)
	f.pointer(event.TypePointerUp, id)

	if !f.store.IsPressed(id) {
		t.Error("release while disabled cleared Pressed")
	}

	f.store.SetDisabled(id, false)
	f.pointer(event.TypePointerUp, id)
	if f.store.IsPressed(id) {
		t.Error("release after re-enable left Pressed set")
	}
}

func TestButtonKeyActivation(t *testing.T) {
	tests := []struct {
		name     string
		ev       input.KeyEvent
		consumed bool
		fired    bool
	}{
		{"enter press", input.KeyEvent{Key: input.KeyEnter, State: input.KeyStatePressed}, true, true},
		{"space press", input.KeyEvent{Key: input.KeySpace, State: input.KeyStatePressed}, true, true},
		{"enter repeat", input.KeyEvent{Key: input.KeyEnter, State: input.KeyStatePressed, Repeat: true}, false, false},
		{"enter release", input.KeyEvent{Key: input.KeyEnter, State: input.KeyStateReleased}, false, false},
		{"escape press", input.KeyEvent{Key: input.KeyEscape, State: input.KeyStatePressed}, false, false},
		{"rune press", input.KeyEvent{Key: input.KeyRune, Rune: 'a', State: input.KeyStatePressed}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			fired := false
			id := f.spawn(t, &Button{OnClick: func() { fired = true }})

			ev := f.key(id, tt.ev)

			if ev.Consumed() != tt.consumed {
				t.Errorf("consumed = %v, want %v", ev.Consumed(), tt.consumed)
			}
			if fired != tt.fired {
				t.Errorf("fired = %v, want %v", fired, tt.fired)
			}
		})
	}
}

func TestDisabledButtonKeyPassesThrough(t *testing.T) {
	f := newFixture()
	id := f.spawn(t, &Button{OnClick: func() { t.Error("OnClick ran on a disabled button") }})
	f.store.SetDisabled(id, true)

	ev := f.key(id, pressOf(input.KeyEnter))

	if ev.Consumed() {
		t.Error("disabled button consumed a key event")
	}
}

func TestButtonIgnoresEventsForOtherEntities(t *testing.T) {
	f := newFixture()
	f.spawn(t, &Button{OnClick: func() { t.Error("OnClick ran for a foreign target") }})
	ghost := f.alloc.Next()

	ev := f.pointer(event.TypePointerClick, ghost)

	if ev.Consumed() {
		t.Error("click with no record at the target was consumed")
	}
}

func TestFrontButtonOccludesBack(t *testing.T) {
	f := newFixture()
	backClicks := 0
	back := f.spawn(t, &Button{OnClick: func() { backClicks++ }})
	frontClicks := 0
	front := f.spawn(t, &Button{OnClick: func() { frontClicks++ }})

	f.tap(front, back)

	if frontClicks != 1 {
		t.Errorf("front clicks = %d, want 1", frontClicks)
	}
	if backClicks != 0 {
		t.Errorf("back clicks = %d, want 0", backClicks)
	}
	if f.store.IsPressed(back) {
		t.Error("occluded button became pressed")
	}
}

func TestDisabledFrontButtonStillOccludes(t *testing.T) {
	f := newFixture()
	back := f.spawn(t, &Button{OnClick: func() { t.Error("click leaked past a disabled widget") }})
	front := f.spawn(t, &Button{})
	f.store.SetDisabled(front, true)

	f.tap(front, back)

	if !f.sink.quiet() {
		t.Error("disabled front button let a notification through")
	}
	if f.store.IsPressed(back) {
		t.Error("occluded button became pressed")
	}
}

func TestUnhandledClickReachesBackWidget(t *testing.T) {
	f := newFixture()
	clicks := 0
	back := f.spawn(t, &Button{OnClick: func() { clicks++ }})
	plain := f.alloc.Next()

	// No record at the origin: the event bubbles to the button behind.
	f.tap(plain, back)

	if clicks != 1 {
		t.Errorf("back clicks = %d, want 1", clicks)
	}
}
