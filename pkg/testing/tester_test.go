package testing

import (
	"testing"

	"github.com/go-drift/headless/pkg/input"
)

func TestTapRecordsClick(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	save := tester.SpawnButton("Save")

	tester.Tap(save)

	clicks := tester.Clicks()
	if len(clicks) != 1 || clicks[0] != save {
		t.Errorf("Clicks = %v, want [%v]", clicks, save)
	}
}

func TestCheckboxToggleFlow(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	box := tester.SpawnCheckbox("Wrap lines", false)

	tester.Tap(box)

	changes := tester.ValueChanges()
	if len(changes) != 1 || changes[0].Entity != box || !changes[0].Value {
		t.Fatalf("ValueChanges = %v, want proposal true for %v", changes, box)
	}

	// The proposal does not change state until the owner accepts it.
	cb, _ := tester.Runtime().Store().Checkbox(box)
	if cb.Checked {
		t.Fatal("Checked flipped without SetChecked")
	}
	if err := tester.Runtime().SetChecked(box, true); err != nil {
		t.Fatalf("SetChecked: %v", err)
	}

	tester.Tap(box)
	changes = tester.ValueChanges()
	if len(changes) != 2 || changes[1].Value {
		t.Errorf("second proposal = %v, want false", changes[1:])
	}
}

func TestBarrierCloseRecorded(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	barrier := tester.SpawnBarrier()

	tester.SendPointerDown(barrier)

	closes := tester.Closes()
	if len(closes) != 1 || closes[0] != barrier {
		t.Errorf("Closes = %v, want [%v]", closes, barrier)
	}
}

func TestKeyRoutingFollowsFocus(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	save := tester.SpawnButton("Save")

	if tester.PressKey(input.KeyEnter) {
		t.Error("PressKey with nothing focused should report false")
	}

	tester.FocusOn(save)
	if !tester.PressKey(input.KeyEnter) {
		t.Fatal("PressKey did not route to the focused entity")
	}
	if len(tester.Clicks()) != 1 {
		t.Errorf("Clicks = %v, want one activation", tester.Clicks())
	}

	tester.RepeatKey(input.KeyEnter)
	tester.ReleaseKey(input.KeyEnter)
	if len(tester.Clicks()) != 1 {
		t.Error("repeat or release activated the button")
	}
}

func TestDragOffDoesNotActivate(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	save := tester.SpawnButton("Save")

	tester.DragOff(save)
	tester.SendPointerClick(save)
	tester.SendPointerUp(save)

	if len(tester.Clicks()) != 0 {
		t.Errorf("Clicks = %v, want none after drag-off", tester.Clicks())
	}
}

func TestDisabledButtonThroughTester(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	save := tester.SpawnButton("Save")
	tester.Runtime().Store().SetDisabled(save, true)

	tester.Tap(save)
	tester.FocusOn(save)
	tester.PressKey(input.KeySpace)

	if len(tester.Clicks()) != 0 {
		t.Errorf("Clicks = %v, want none for a disabled button", tester.Clicks())
	}
}

func TestReset(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	save := tester.SpawnButton("Save")
	box := tester.SpawnCheckbox("Opt", false)

	tester.Tap(save)
	tester.Tap(box)
	tester.Reset()

	if len(tester.Clicks()) != 0 || len(tester.ValueChanges()) != 0 || len(tester.Closes()) != 0 {
		t.Error("Reset left recorded outcomes behind")
	}
}

func TestDespawnStopsRecording(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	save := tester.SpawnButton("Save")

	if !tester.Despawn(save) {
		t.Fatal("Despawn = false for live entity")
	}
	tester.Tap(save)

	if len(tester.Clicks()) != 0 {
		t.Errorf("Clicks = %v, want none after despawn", tester.Clicks())
	}
}
