package engine

import "sync/atomic"

// Stats tracks dispatch counters. Writes happen on the dispatch
// goroutine; fields are atomic so Snapshot is safe from any goroutine.
type Stats struct {
	events    atomic.Uint64
	consumed  atomic.Uint64
	hops      atomic.Uint64
	outcomes  atomic.Uint64
	callbacks atomic.Uint64
	panics    atomic.Uint64
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	// Events is the number of input events dispatched.
	Events uint64 `json:"events"`
	// Consumed is how many of those a controller consumed.
	Consumed uint64 `json:"consumed"`
	// Hops is the total number of propagation hops visited.
	Hops uint64 `json:"hops"`
	// Outcomes is the number of outcome broadcasts delivered.
	Outcomes uint64 `json:"outcomes"`
	// Callbacks is the number of widget callbacks invoked.
	Callbacks uint64 `json:"callbacks"`
	// Panics counts recovered panics in handlers, callbacks, and
	// subscribers.
	Panics uint64 `json:"panics"`
}

func (s *Stats) recordDispatch(consumed bool, hops int) {
	s.events.Add(1)
	s.hops.Add(uint64(hops))
	if consumed {
		s.consumed.Add(1)
	}
}

// Snapshot returns a copy of the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Events:    s.events.Load(),
		Consumed:  s.consumed.Load(),
		Hops:      s.hops.Load(),
		Outcomes:  s.outcomes.Load(),
		Callbacks: s.callbacks.Load(),
		Panics:    s.panics.Load(),
	}
}
