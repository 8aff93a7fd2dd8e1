package widget

import (
	"github.com/go-drift/headless/pkg/event"
	"github.com/go-drift/headless/pkg/focus"
)

// Kind identifies a record's widget kind. A record's kind is fixed for
// the lifetime of its entity.
type Kind uint8

const (
	KindNone Kind = iota
	KindButton
	KindCheckbox
	KindBarrier
)

func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindCheckbox:
		return "checkbox"
	case KindBarrier:
		return "barrier"
	default:
		return "none"
	}
}

// Record is a widget behavior attached to an entity.
type Record interface {
	Kind() Kind
}

// Button is a push-button record. It uses the Pressed flag between a
// pointer press and its release, and activates on click or on an
// Enter/Space key press while focused.
type Button struct {
	// OnClick is called on activation. When nil, activation broadcasts
	// an Activated outcome instead.
	OnClick func()
}

func (*Button) Kind() Kind { return KindButton }

// Checkbox is a toggle record. The application owns Checked: the
// controller only proposes the inverted value through OnChange or a
// ValueChanged broadcast, and the application commits it with
// Store.SetChecked.
type Checkbox struct {
	// Checked is the current application-owned value.
	Checked bool
	// OnChange is called with the proposed new value. When nil, the
	// proposal broadcasts a ValueChanged outcome instead.
	OnChange func(bool)
}

func (*Checkbox) Kind() Kind { return KindCheckbox }

// Barrier is a dismiss-catcher behind a modal surface. It absorbs
// pointer presses and, while focused, the Escape key. Barriers have no
// Disabled gating and no broadcast fallback.
type Barrier struct {
	// OnClose is called when the barrier is pressed or Escape is
	// pressed while it holds focus. May be nil; the events are
	// consumed either way.
	OnClose func()
}

func (*Barrier) Kind() Kind { return KindBarrier }

// Attach registers the three widget controllers with the dispatcher in
// a fixed order: button, checkbox, barrier. All controllers share the
// store, focus context, and sink.
func Attach(d *event.Dispatcher, store *Store, f *focus.State, sink Sink) {
	NewButtonController(store, f, sink).Register(d)
	NewCheckboxController(store, f, sink).Register(d)
	NewBarrierController(store, f, sink).Register(d)
}
