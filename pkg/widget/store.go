package widget

import (
	"sync"

	"github.com/go-drift/headless/pkg/entity"
	"github.com/go-drift/headless/pkg/errors"
)

// Store is the arena holding widget records and capability flags,
// keyed by entity ID. Dispatch runs single-threaded, but the debug
// server reads snapshots from its own goroutine, so access is guarded.
type Store struct {
	mu        sync.RWMutex
	slots     map[entity.ID]*slot
	order     []entity.ID
	onChecked func(entity.ID, bool)
}

type slot struct {
	record Record
	flags  Flags
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{slots: make(map[entity.ID]*slot)}
}

// WatchChecked registers fn to observe checkbox checked values. It
// fires on checkbox insert, same-kind replace, and SetChecked; the
// engine uses it to keep the semantics mirror current. Only one watch
// is held; the last registration wins.
func (s *Store) WatchChecked(fn func(e entity.ID, checked bool)) {
	s.mu.Lock()
	s.onChecked = fn
	s.mu.Unlock()
}

// Insert attaches r to e. Replacing a record of the same kind updates
// it; replacing with a different kind is rejected with a RecordError.
func (s *Store) Insert(e entity.ID, r Record) error {
	if e.IsNone() || r == nil {
		return &errors.RecordError{Entity: e, Have: KindNone.String(), Want: "a record"}
	}

	s.mu.Lock()
	sl, ok := s.slots[e]
	if ok && sl.record.Kind() != r.Kind() {
		have, want := sl.record.Kind(), r.Kind()
		s.mu.Unlock()
		return &errors.RecordError{Entity: e, Have: have.String(), Want: want.String()}
	}
	if ok {
		sl.record = r
	} else {
		s.slots[e] = &slot{record: r}
		s.order = append(s.order, e)
	}
	watch := s.onChecked
	s.mu.Unlock()

	if cb, isCheckbox := r.(*Checkbox); isCheckbox && watch != nil {
		watch(e, cb.Checked)
	}
	return nil
}

// Remove detaches e's record and flags. It reports whether a record
// was removed.
func (s *Store) Remove(e entity.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[e]; !ok {
		return false
	}
	delete(s.slots, e)
	for i, id := range s.order {
		if id == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Record returns e's record.
func (s *Store) Record(e entity.ID) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[e]; ok {
		return sl.record, true
	}
	return nil, false
}

// Kind returns the record kind stored for e, or KindNone.
func (s *Store) Kind(e entity.ID) Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[e]; ok {
		return sl.record.Kind()
	}
	return KindNone
}

// Button returns e's button record, if e holds one.
func (s *Store) Button(e entity.ID) (*Button, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[e]; ok {
		if b, ok := sl.record.(*Button); ok {
			return b, true
		}
	}
	return nil, false
}

// Checkbox returns e's checkbox record, if e holds one.
func (s *Store) Checkbox(e entity.ID) (*Checkbox, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[e]; ok {
		if c, ok := sl.record.(*Checkbox); ok {
			return c, true
		}
	}
	return nil, false
}

// Barrier returns e's barrier record, if e holds one.
func (s *Store) Barrier(e entity.ID) (*Barrier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[e]; ok {
		if b, ok := sl.record.(*Barrier); ok {
			return b, true
		}
	}
	return nil, false
}

// Contains reports whether e holds a record.
func (s *Store) Contains(e entity.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.slots[e]
	return ok
}

// Len returns the number of live records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

// Entities returns the live entity IDs in insertion order.
func (s *Store) Entities() []entity.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.ID, len(s.order))
	copy(out, s.order)
	return out
}

// Flags returns the capability bits for e. Absent entities report zero.
func (s *Store) Flags(e entity.ID) Flags {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sl, ok := s.slots[e]; ok {
		return sl.flags
	}
	return 0
}

// IsDisabled reports whether e carries FlagDisabled. Absent entities
// report false.
func (s *Store) IsDisabled(e entity.ID) bool {
	return s.Flags(e).Has(FlagDisabled)
}

// SetDisabled sets or clears FlagDisabled on e. Writes on absent
// entities are no-ops.
func (s *Store) SetDisabled(e entity.ID, disabled bool) {
	s.setFlag(e, FlagDisabled, disabled)
}

// IsPressed reports whether e carries FlagPressed. Absent entities
// report false.
func (s *Store) IsPressed(e entity.ID) bool {
	return s.Flags(e).Has(FlagPressed)
}

// setPressed is the button controller's write path for FlagPressed.
func (s *Store) setPressed(e entity.ID, pressed bool) {
	s.setFlag(e, FlagPressed, pressed)
}

func (s *Store) setFlag(e entity.ID, flag Flags, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[e]
	if !ok {
		return
	}
	if on {
		sl.flags = sl.flags.Set(flag)
	} else {
		sl.flags = sl.flags.Clear(flag)
	}
}

// SetChecked writes the application-owned checked value for e and
// publishes it to the checked watch. It fails when e holds no checkbox
// record. Writing the value already stored still publishes.
func (s *Store) SetChecked(e entity.ID, checked bool) error {
	s.mu.Lock()
	sl, ok := s.slots[e]
	if !ok {
		s.mu.Unlock()
		return &errors.RecordError{Entity: e, Have: KindNone.String(), Want: KindCheckbox.String()}
	}
	cb, isCheckbox := sl.record.(*Checkbox)
	if !isCheckbox {
		have := sl.record.Kind()
		s.mu.Unlock()
		return &errors.RecordError{Entity: e, Have: have.String(), Want: KindCheckbox.String()}
	}
	cb.Checked = checked
	watch := s.onChecked
	s.mu.Unlock()

	if watch != nil {
		watch(e, checked)
	}
	return nil
}
