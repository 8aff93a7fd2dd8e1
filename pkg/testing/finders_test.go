package testing

import (
	"testing"

	"github.com/go-drift/headless/pkg/engine"
	"github.com/go-drift/headless/pkg/entity"
	"github.com/go-drift/headless/pkg/widget"
)

func TestByKind(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	b1 := tester.SpawnButton("One")
	tester.SpawnCheckbox("Opt", false)
	b2 := tester.SpawnButton("Two")

	result := tester.Find(ByKind(widget.KindButton))
	if result.Count() != 2 {
		t.Fatalf("Count = %d, want 2", result.Count())
	}
	if result.First() != b1 || result.At(1) != b2 {
		t.Errorf("matches = %v, want [%v %v]", result.All(), b1, b2)
	}
}

func TestByLabel(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	tester.SpawnButton("Save")
	cancel := tester.SpawnButton("Cancel")

	result := tester.Find(ByLabel("Cancel"))
	if !result.Exists() || result.First() != cancel {
		t.Errorf("ByLabel(Cancel) = %v, want [%v]", result.All(), cancel)
	}
	if tester.Find(ByLabel("Missing")).Exists() {
		t.Error("ByLabel matched a label no entity has")
	}
}

func TestFocusedFinder(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	save := tester.SpawnButton("Save")

	if tester.Find(Focused()).Exists() {
		t.Error("Focused() matched with nothing focused")
	}

	tester.SendPointerDown(save)
	result := tester.Find(Focused())
	if result.FirstOrNone() != save {
		t.Errorf("Focused() = %v, want [%v]", result.All(), save)
	}
}

func TestDisabledFinder(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	tester.SpawnButton("On")
	off := tester.SpawnButton("Off")
	tester.Runtime().Store().SetDisabled(off, true)

	result := tester.Find(Disabled())
	if result.Count() != 1 || result.First() != off {
		t.Errorf("Disabled() = %v, want [%v]", result.All(), off)
	}
}

func TestByPredicate(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	tester.SpawnCheckbox("A", false)
	checked := tester.SpawnCheckbox("B", true)

	result := tester.Find(ByPredicate(func(rt *engine.Runtime, e entity.ID) bool {
		cb, ok := rt.Store().Checkbox(e)
		return ok && cb.Checked
	}))
	if result.Count() != 1 || result.First() != checked {
		t.Errorf("predicate = %v, want [%v]", result.All(), checked)
	}
}

func TestFinderResultPanics(t *testing.T) {
	tester := NewInteractionTesterWithT(t)
	empty := tester.Find(ByLabel("nope"))

	if got := empty.FirstOrNone(); got != entity.None {
		t.Errorf("FirstOrNone = %v, want entity.None", got)
	}

	assertPanics(t, "First on empty result", func() { empty.First() })
	assertPanics(t, "At out of range", func() { empty.At(3) })
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
