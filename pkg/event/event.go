// Package event implements the envelope and dispatch bus that carries
// input events to widget controllers.
//
// Inbound events target an entity and carry a bubble path (the ancestor
// chain above the target, nearest first). The dispatcher visits the
// target, then each ancestor in order, running every handler registered
// for the event's type in registration order. Any handler may call
// StopPropagation; once an event is consumed nothing further runs for it.
//
// Outcome events (Activated, ValueChanged) share the envelope but are
// broadcast by the engine to its subscribers, not bubbled here.
package event

import (
	"github.com/go-drift/headless/pkg/entity"
	"github.com/go-drift/headless/pkg/input"
)

// Type identifies an event's kind.
type Type uint8

const (
	TypeNone Type = iota

	// TypeKey is a keyboard transition routed to the focused entity.
	TypeKey
	// TypePointerDown is a pointer press over the target.
	TypePointerDown
	// TypePointerUp is a pointer release.
	TypePointerUp
	// TypePointerClick is a completed press-release over the same target.
	// The platform delivers it before TypePointerUp.
	TypePointerClick
	// TypePointerDragEnd ends a press that moved past the drag threshold.
	TypePointerDragEnd
	// TypePointerCancel aborts a press sequence (e.g. terminal suspend).
	TypePointerCancel
	// TypePointerMove is a position change. No core controller consumes it.
	TypePointerMove

	// TypeActivated is the button click outcome broadcast.
	TypeActivated
	// TypeValueChanged is the checkbox toggle outcome broadcast. The
	// event's Value field carries the proposed new value.
	TypeValueChanged
)

func (t Type) String() string {
	switch t {
	case TypeKey:
		return "key"
	case TypePointerDown:
		return "pointer-down"
	case TypePointerUp:
		return "pointer-up"
	case TypePointerClick:
		return "pointer-click"
	case TypePointerDragEnd:
		return "pointer-drag-end"
	case TypePointerCancel:
		return "pointer-cancel"
	case TypePointerMove:
		return "pointer-move"
	case TypeActivated:
		return "activated"
	case TypeValueChanged:
		return "value-changed"
	default:
		return "none"
	}
}

// IsOutcome reports whether t is a broadcast outcome type.
func (t Type) IsOutcome() bool {
	return t == TypeActivated || t == TypeValueChanged
}

// IsPointer reports whether t is one of the pointer transition types.
func (t Type) IsPointer() bool {
	switch t {
	case TypePointerDown, TypePointerUp, TypePointerClick,
		TypePointerDragEnd, TypePointerCancel, TypePointerMove:
		return true
	}
	return false
}

// Event is the envelope handed to handlers. The target retargets to the
// current hop while the event bubbles; Origin keeps the entity the event
// was originally aimed at.
type Event struct {
	typ      Type
	origin   entity.ID
	target   entity.ID
	path     []entity.ID
	consumed bool

	// Key holds the payload for TypeKey events.
	Key input.KeyEvent
	// Pointer holds the payload for pointer events.
	Pointer input.PointerEvent
	// Value holds the proposed value for TypeValueChanged events.
	Value bool
}

// NewKey builds a key event aimed at target. Path lists the ancestors
// above the target, nearest first.
func NewKey(target entity.ID, key input.KeyEvent, path ...entity.ID) *Event {
	return &Event{typ: TypeKey, origin: target, target: target, path: path, Key: key}
}

// NewPointer builds a pointer event of type t aimed at target.
func NewPointer(t Type, target entity.ID, ptr input.PointerEvent, path ...entity.ID) *Event {
	return &Event{typ: t, origin: target, target: target, path: path, Pointer: ptr}
}

// NewActivated builds a button click outcome for target.
func NewActivated(target entity.ID) *Event {
	return &Event{typ: TypeActivated, origin: target, target: target}
}

// NewValueChanged builds a checkbox toggle outcome for target carrying
// the proposed new value.
func NewValueChanged(target entity.ID, value bool) *Event {
	return &Event{typ: TypeValueChanged, origin: target, target: target, Value: value}
}

// Type returns the event's kind.
func (e *Event) Type() Type {
	return e.typ
}

// Target returns the entity at the current propagation hop.
func (e *Event) Target() entity.ID {
	return e.target
}

// Origin returns the entity the event was originally aimed at.
func (e *Event) Origin() entity.ID {
	return e.origin
}

// Path returns the ancestors above the origin, nearest first.
func (e *Event) Path() []entity.ID {
	return e.path
}

// StopPropagation marks the event consumed. No further handlers or
// hops run once an event is consumed.
func (e *Event) StopPropagation() {
	e.consumed = true
}

// Consumed reports whether a handler stopped propagation.
func (e *Event) Consumed() bool {
	return e.consumed
}

// retarget points the event at the given hop entity.
func (e *Event) retarget(hop entity.ID) {
	e.target = hop
}
