package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/headless/pkg/entity"
)

const traceCapacityDefault = 256

// TraceEntry is one dispatched event or delivered outcome in the trace.
type TraceEntry struct {
	ID        string    `json:"id"`
	Seq       uint64    `json:"seq"`
	Timestamp int64     `json:"ts"`
	Kind      string    `json:"kind"`
	Origin    entity.ID `json:"origin"`
	Hops      int       `json:"hops,omitempty"`
	Consumed  bool      `json:"consumed,omitempty"`
	Value     *bool     `json:"value,omitempty"`
}

// TraceBuffer stores recent dispatch trace entries in a ring buffer.
type TraceBuffer struct {
	mu      sync.RWMutex
	entries []TraceEntry
	index   int
	count   int
	seq     uint64
}

// NewTraceBuffer creates a trace buffer. Non-positive capacity selects
// the default.
func NewTraceBuffer(capacity int) *TraceBuffer {
	if capacity <= 0 {
		capacity = traceCapacityDefault
	}
	return &TraceBuffer{entries: make([]TraceEntry, capacity)}
}

// Capacity returns the buffer capacity.
func (b *TraceBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Len returns the number of stored entries.
func (b *TraceBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Add stamps entry with a sequence number, id, and timestamp, then
// stores it, evicting the oldest entry once full.
func (b *TraceBuffer) Add(entry TraceEntry) {
	b.mu.Lock()
	b.seq++
	entry.Seq = b.seq
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == 0 {
		entry.Timestamp = time.Now().UnixMilli()
	}
	b.entries[b.index] = entry
	b.index = (b.index + 1) % len(b.entries)
	if b.count < len(b.entries) {
		b.count++
	}
	b.mu.Unlock()
}

// Snapshot returns a chronological copy of stored entries.
func (b *TraceBuffer) Snapshot() []TraceEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}

	result := make([]TraceEntry, b.count)
	if b.count < len(b.entries) {
		copy(result, b.entries[:b.count])
	} else {
		copy(result, b.entries[b.index:])
		copy(result[len(b.entries)-b.index:], b.entries[:b.index])
	}
	return result
}
