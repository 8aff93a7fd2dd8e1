// Package widget implements the headless interaction core: widget
// records, capability flags, and the controllers that reconcile raw
// input events into semantic state transitions and notifications.
//
// # Records
//
// A record attaches behavior to an entity. Exactly one record kind may
// live on an entity at a time:
//
//	store.Insert(id, &widget.Button{OnClick: submit})
//	store.Insert(id, &widget.Checkbox{Checked: true, OnChange: setDark})
//	store.Insert(id, &widget.Barrier{OnClose: dismiss})
//
// Replacing a record with the same kind updates it in place; replacing
// with a different kind is rejected. Records are behavior only, with
// no geometry and no styling. Presentation belongs to the consumer.
//
// # Capability flags
//
// Flags are presence-based bits orthogonal to the record. Disabled
// makes activation paths inert and is written by the application via
// Store.SetDisabled. Pressed is transient button state written only by
// the button controller between a pointer press and its release;
// consumers may read it to draw a pressed visual but must not write it.
// Disabling a button mid-press leaves Pressed set until the entity is
// re-enabled and released, or removed; every clear path is gated on
// not-disabled.
//
// # State ownership
//
// The library owns transient interaction state (Pressed, focus). The
// application owns durable state: the checkbox controller never writes
// Checkbox.Checked. It proposes the toggled value through OnChange or a
// ValueChanged broadcast, and the application decides whether to commit
// it with Store.SetChecked.
//
// # Notification duality
//
// Button and checkbox outcomes run the record's callback when one is
// set, and otherwise broadcast an outcome event for any subscriber.
// The barrier's close request is callback-only: with a nil OnClose the
// event is still consumed and focus still moves, but nothing else
// observable occurs.
package widget
