// Package engine ties the widget store, focus context, dispatcher, and
// semantics mirror together into a Runtime with a run-to-completion
// dispatch loop, plus the trace buffer, counters, and debug server that
// make a headless app inspectable.
package engine

import (
	"fmt"
	"time"

	"github.com/go-drift/headless/pkg/entity"
	"github.com/go-drift/headless/pkg/errors"
	"github.com/go-drift/headless/pkg/event"
	"github.com/go-drift/headless/pkg/focus"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widget"
)

// Config carries optional Runtime tuning.
type Config struct {
	// TraceCapacity is the dispatch trace ring size. Zero selects the
	// default.
	TraceCapacity int
}

// Runtime owns the interaction state for one headless app: the widget
// store, the focus context, the controller dispatcher, and the
// semantics mirror.
//
// Dispatch is single-threaded by contract: all events must be delivered
// from one goroutine. The stores themselves are lock-guarded only so
// the debug server can read while the app runs.
type Runtime struct {
	store      *widget.Store
	focus      *focus.State
	dispatcher *event.Dispatcher
	tree       *semantics.Tree
	trace      *TraceBuffer
	stats      *Stats
	alloc      entity.Allocator

	dispatching bool
	queue       []*event.Event
	outcomes    []*event.Event

	subscribers map[event.Type][]event.Handler
}

// NewRuntime builds a Runtime with default configuration.
func NewRuntime() *Runtime {
	return NewRuntimeWithConfig(Config{})
}

// NewRuntimeWithConfig builds a Runtime, wires the three core
// controllers into its dispatcher, and hooks checkbox state into the
// semantics mirror.
func NewRuntimeWithConfig(cfg Config) *Runtime {
	r := &Runtime{
		store:       widget.NewStore(),
		focus:       focus.NewState(),
		dispatcher:  event.NewDispatcher(),
		tree:        semantics.NewTree(),
		trace:       NewTraceBuffer(cfg.TraceCapacity),
		stats:       &Stats{},
		subscribers: make(map[event.Type][]event.Handler),
	}
	r.store.WatchChecked(func(e entity.ID, checked bool) {
		r.tree.SetToggled(e, semantics.ToggledFor(checked))
	})
	widget.Attach(r.dispatcher, r.store, r.focus, r)
	return r
}

// Store returns the widget store.
func (r *Runtime) Store() *widget.Store { return r.store }

// Focus returns the focus context.
func (r *Runtime) Focus() *focus.State { return r.focus }

// Dispatcher returns the controller dispatcher.
func (r *Runtime) Dispatcher() *event.Dispatcher { return r.dispatcher }

// Semantics returns the semantics mirror.
func (r *Runtime) Semantics() *semantics.Tree { return r.tree }

// Stats returns a snapshot of the dispatch counters.
func (r *Runtime) Stats() StatsSnapshot { return r.stats.Snapshot() }

// Trace returns a chronological copy of recent dispatch trace entries.
func (r *Runtime) Trace() []TraceEntry { return r.trace.Snapshot() }

// SpawnButton allocates an entity with a button record and a semantics
// node carrying label.
func (r *Runtime) SpawnButton(label string, rec *widget.Button) (entity.ID, error) {
	if rec == nil {
		rec = &widget.Button{}
	}
	id := r.alloc.Next()
	r.tree.Attach(id, semantics.RoleButton)
	r.tree.SetLabel(id, label)
	if err := r.store.Insert(id, rec); err != nil {
		r.tree.Detach(id)
		return entity.None, err
	}
	return id, nil
}

// SpawnCheckbox allocates an entity with a checkbox record and a
// semantics node carrying label. The node's Toggled mirror is
// initialized from the record and follows every SetChecked.
func (r *Runtime) SpawnCheckbox(label string, rec *widget.Checkbox) (entity.ID, error) {
	if rec == nil {
		rec = &widget.Checkbox{}
	}
	id := r.alloc.Next()
	// Attach before Insert so the checked watch hook finds the node.
	r.tree.Attach(id, semantics.RoleCheckbox)
	r.tree.SetLabel(id, label)
	if err := r.store.Insert(id, rec); err != nil {
		r.tree.Detach(id)
		return entity.None, err
	}
	return id, nil
}

// SpawnBarrier allocates an entity with a modal barrier record.
// Barriers are invisible scrims and get no semantics node.
func (r *Runtime) SpawnBarrier(rec *widget.Barrier) (entity.ID, error) {
	if rec == nil {
		rec = &widget.Barrier{}
	}
	id := r.alloc.Next()
	if err := r.store.Insert(id, rec); err != nil {
		return entity.None, err
	}
	return id, nil
}

// Despawn removes an entity's record, flags, and semantics node, and
// clears focus if the entity held it. Reports whether a record existed.
func (r *Runtime) Despawn(id entity.ID) bool {
	ok := r.store.Remove(id)
	r.tree.Detach(id)
	if r.focus.IsFocused(id) {
		r.focus.Clear()
	}
	return ok
}

// SetChecked writes a checkbox's checked state. This is the only write
// path for Checked; controllers only propose values.
func (r *Runtime) SetChecked(id entity.ID, checked bool) error {
	return r.store.SetChecked(id, checked)
}

// Dispatch runs ev through the controllers, then delivers every outcome
// it produced to subscribers, before returning. Events dispatched from
// inside a handler are queued behind pending outcomes and processed
// before the outer Dispatch returns.
func (r *Runtime) Dispatch(ev *event.Event) {
	if ev == nil || ev.Type() == event.TypeNone {
		return
	}
	if ev.Type().IsOutcome() {
		r.enqueueOutcome(ev)
		return
	}
	r.queue = append(r.queue, ev)
	if r.dispatching {
		return
	}
	r.dispatching = true
	defer func() { r.dispatching = false }()
	r.drain()
}

// Subscribe registers h for an outcome type. Outcomes are not
// consumable: delivery ignores the consumed bit, so every subscriber
// sees every outcome, in subscription order. Input event types are
// rejected; those are handled by widget controllers.
func (r *Runtime) Subscribe(t event.Type, h event.Handler) error {
	if h == nil {
		return nil
	}
	if !t.IsOutcome() {
		return &errors.HeadlessError{
			Op:   "engine.subscribe",
			Kind: errors.KindDispatch,
			Err:  fmt.Errorf("%s is not an outcome type", t),
		}
	}
	r.subscribers[t] = append(r.subscribers[t], h)
	return nil
}

// OnActivated subscribes to button activation outcomes.
func (r *Runtime) OnActivated(fn func(entity.ID)) {
	if fn == nil {
		return
	}
	r.Subscribe(event.TypeActivated, func(ev *event.Event) {
		fn(ev.Target())
	})
}

// OnValueChanged subscribes to checkbox value proposals.
func (r *Runtime) OnValueChanged(fn func(entity.ID, bool)) {
	if fn == nil {
		return
	}
	r.Subscribe(event.TypeValueChanged, func(ev *event.Event) {
		fn(ev.Target(), ev.Value)
	})
}

// Invoke runs a widget callback, isolating panics so user code cannot
// break the dispatch loop. Part of the widget.Sink contract.
func (r *Runtime) Invoke(target entity.ID, fn func()) {
	if fn == nil {
		return
	}
	r.stats.callbacks.Add(1)
	defer func() {
		if rec := recover(); rec != nil {
			r.stats.panics.Add(1)
			errors.ReportPanic(&errors.PanicError{
				Op:         "widget callback",
				Entity:     target,
				Value:      rec,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	fn()
}

// Activated queues a button activation broadcast. Part of the
// widget.Sink contract.
func (r *Runtime) Activated(target entity.ID) {
	r.enqueueOutcome(event.NewActivated(target))
}

// ValueChanged queues a checkbox value proposal broadcast. Part of the
// widget.Sink contract.
func (r *Runtime) ValueChanged(target entity.ID, value bool) {
	r.enqueueOutcome(event.NewValueChanged(target, value))
}

func (r *Runtime) enqueueOutcome(ev *event.Event) {
	r.outcomes = append(r.outcomes, ev)
	if r.dispatching {
		return
	}
	// Outcome produced outside a dispatch (e.g. app code driving the
	// sink directly): deliver now.
	r.dispatching = true
	defer func() { r.dispatching = false }()
	r.drain()
}

// drain processes work until both queues are empty. Outcomes drain
// ahead of queued input events so a handler's broadcasts land before
// the next event it dispatched.
func (r *Runtime) drain() {
	for {
		if len(r.outcomes) > 0 {
			out := r.outcomes[0]
			r.outcomes = r.outcomes[1:]
			r.deliver(out)
			continue
		}
		if len(r.queue) > 0 {
			ev := r.queue[0]
			r.queue = r.queue[1:]
			r.run(ev)
			continue
		}
		return
	}
}

func (r *Runtime) run(ev *event.Event) {
	defer errors.RecoverWithCallback("engine.dispatch", func(any) {
		r.stats.panics.Add(1)
	})
	hops := r.dispatcher.Trigger(ev)
	r.stats.recordDispatch(ev.Consumed(), hops)
	r.trace.Add(TraceEntry{
		Kind:     ev.Type().String(),
		Origin:   ev.Origin(),
		Hops:     hops,
		Consumed: ev.Consumed(),
	})
}

func (r *Runtime) deliver(ev *event.Event) {
	r.stats.outcomes.Add(1)
	entry := TraceEntry{
		Kind:   ev.Type().String(),
		Origin: ev.Origin(),
	}
	if ev.Type() == event.TypeValueChanged {
		v := ev.Value
		entry.Value = &v
	}
	r.trace.Add(entry)
	for _, h := range r.subscribers[ev.Type()] {
		r.runSubscriber(ev, h)
	}
}

func (r *Runtime) runSubscriber(ev *event.Event, h event.Handler) {
	defer errors.RecoverWithCallback("engine.subscriber", func(any) {
		r.stats.panics.Add(1)
	})
	h(ev)
}
