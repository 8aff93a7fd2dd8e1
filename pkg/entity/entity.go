// Package entity provides stable identity for headless widgets.
package entity

import (
	"fmt"
	"sync/atomic"
)

// ID identifies an entity within a runtime. IDs are allocated
// monotonically and never reused for the lifetime of the runtime.
type ID uint64

// None is the zero ID. It never identifies a live entity.
const None ID = 0

// IsNone reports whether id is the "no entity" value.
func (id ID) IsNone() bool {
	return id == None
}

func (id ID) String() string {
	if id == None {
		return "entity(none)"
	}
	return fmt.Sprintf("entity(%d)", uint64(id))
}

// Allocator hands out fresh IDs. The zero value is ready to use;
// the first ID it returns is 1.
type Allocator struct {
	last atomic.Uint64
}

// Next returns an ID that has never been returned by this allocator.
func (a *Allocator) Next() ID {
	return ID(a.last.Add(1))
}
