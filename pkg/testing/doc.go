// Package testing provides an interaction testing harness for headless
// widget runtimes.
//
// # Quick Start
//
// Create a tester, spawn widgets, drive input, and make assertions:
//
//	func TestSaveButton(t *testing.T) {
//	    tester := headlesstest.NewInteractionTesterWithT(t)
//	    save := tester.SpawnButton("Save")
//
//	    tester.Tap(save)
//
//	    if len(tester.Clicks()) != 1 {
//	        t.Error("expected one activation")
//	    }
//	}
//
// Spawned widgets record their outcomes on the tester: button
// activations land in Clicks, checkbox proposals in ValueChanges,
// barrier dismissals in Closes.
//
// # Keyboard Input
//
// Key events route to the focused entity, like a real backend:
//
//	tester.FocusOn(save)
//	tester.PressKey(input.KeyEnter)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import headlesstest "github.com/go-drift/headless/pkg/testing"
package testing
