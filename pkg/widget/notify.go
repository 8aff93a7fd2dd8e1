package widget

import "github.com/go-drift/headless/pkg/entity"

// Sink delivers widget outcomes. The engine implements it: Invoke runs
// an application callback with panic isolation, and the broadcast
// methods queue outcome events drained before Dispatch returns.
type Sink interface {
	// Invoke runs a registered callback for target now.
	Invoke(target entity.ID, fn func())
	// Activated broadcasts a button click outcome for target.
	Activated(target entity.ID)
	// ValueChanged broadcasts a checkbox toggle outcome for target
	// carrying the proposed new value.
	ValueChanged(target entity.ID, value bool)
}

// NotifyActivated runs cb when set, otherwise broadcasts an Activated
// outcome for target.
func NotifyActivated(s Sink, target entity.ID, cb func()) {
	if cb != nil {
		s.Invoke(target, cb)
		return
	}
	s.Activated(target)
}

// NotifyValue runs cb with v when set, otherwise broadcasts a
// ValueChanged outcome for target.
func NotifyValue(s Sink, target entity.ID, cb func(bool), v bool) {
	if cb != nil {
		s.Invoke(target, func() { cb(v) })
		return
	}
	s.ValueChanged(target, v)
}

// NotifyClose runs cb when set. Close requests have no broadcast
// fallback: with a nil callback nothing is delivered.
func NotifyClose(s Sink, target entity.ID, cb func()) {
	if cb != nil {
		s.Invoke(target, cb)
	}
}
