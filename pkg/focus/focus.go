// Package focus provides the keyboard focus context shared by widget
// controllers.
package focus

import (
	"sync"

	"github.com/go-drift/headless/pkg/entity"
)

// State tracks which entity holds input focus and whether a focus ring
// should be shown for it. It is injected into controllers rather than
// held in a process global, so independent runtimes (and parallel
// tests) each carry their own.
//
// Writes happen on the dispatch goroutine; the lock exists so debug
// endpoints can read concurrently.
//
// Pointer-driven focus acquisition always clears the ring: only
// keyboard navigation would show it, and that lives outside this
// library.
type State struct {
	mu      sync.RWMutex
	focused entity.ID
	visible bool
}

// NewState returns a State with nothing focused.
func NewState() *State {
	return &State{}
}

// Focused returns the entity holding focus, or entity.None.
func (s *State) Focused() entity.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.focused
}

// IsFocused reports whether e currently holds focus.
func (s *State) IsFocused(e entity.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !e.IsNone() && s.focused == e
}

// SetFocus moves focus to e. Focusing entity.None clears focus.
func (s *State) SetFocus(e entity.ID) {
	s.mu.Lock()
	s.focused = e
	s.mu.Unlock()
}

// Clear removes focus.
func (s *State) Clear() {
	s.mu.Lock()
	s.focused = entity.None
	s.mu.Unlock()
}

// Visible reports whether a focus ring should be shown for the focused
// entity.
func (s *State) Visible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible
}

// SetVisible records whether the focus ring should be shown.
func (s *State) SetVisible(v bool) {
	s.mu.Lock()
	s.visible = v
	s.mu.Unlock()
}
