// Package semantics maintains an in-process accessibility mirror of the
// widget store. Dispatch never consults it; the engine writes it so
// assistive bridges and the debug server can read a coherent snapshot.
package semantics

import (
	"sync"

	"github.com/go-drift/headless/pkg/entity"
)

// Role identifies the accessibility role of a widget entity.
type Role uint8

const (
	RoleNone Role = iota
	RoleButton
	RoleCheckbox
)

func (r Role) String() string {
	switch r {
	case RoleButton:
		return "button"
	case RoleCheckbox:
		return "checkbox"
	default:
		return "none"
	}
}

// Toggled is the tri-state checked value exposed to assistive
// technology. Unset means the entity has no checked state at all.
type Toggled uint8

const (
	ToggledUnset Toggled = iota
	ToggledFalse
	ToggledTrue
)

func (t Toggled) String() string {
	switch t {
	case ToggledFalse:
		return "false"
	case ToggledTrue:
		return "true"
	default:
		return "unset"
	}
}

// ToggledFor converts a checkbox checked value to its tri-state mirror.
func ToggledFor(checked bool) Toggled {
	if checked {
		return ToggledTrue
	}
	return ToggledFalse
}

// Node mirrors one widget entity.
type Node struct {
	Entity  entity.ID
	Role    Role
	Label   string
	Toggled Toggled
}

// Tree is the flat semantics mirror: at most one node per entity, in
// attach order. Reads may come from other goroutines (debug server), so
// access is guarded.
type Tree struct {
	mu    sync.RWMutex
	nodes map[entity.ID]*Node
	order []entity.ID
}

// NewTree returns an empty mirror.
func NewTree() *Tree {
	return &Tree{nodes: make(map[entity.ID]*Node)}
}

// Attach creates the node for e with the given role. Attaching an
// entity that already has a node replaces its role and resets Toggled.
func (t *Tree) Attach(e entity.ID, role Role) {
	if e.IsNone() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.nodes[e]; ok {
		n.Role = role
		n.Toggled = ToggledUnset
		return
	}
	t.nodes[e] = &Node{Entity: e, Role: role}
	t.order = append(t.order, e)
}

// Detach removes the node for e, if any.
func (t *Tree) Detach(e entity.ID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.nodes[e]; !ok {
		return
	}
	delete(t.nodes, e)
	for i, id := range t.order {
		if id == e {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// SetLabel sets the accessibility label for e's node. No-op when e has
// no node.
func (t *Tree) SetLabel(e entity.ID, label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.nodes[e]; ok {
		n.Label = label
	}
}

// SetToggled sets the tri-state checked mirror for e's node. No-op when
// e has no node.
func (t *Tree) SetToggled(e entity.ID, v Toggled) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.nodes[e]; ok {
		n.Toggled = v
	}
}

// Node returns a copy of e's node.
func (t *Tree) Node(e entity.ID) (Node, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.nodes[e]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.nodes)
}

// Snapshot returns copies of all nodes in attach order.
func (t *Tree) Snapshot() []Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Node, 0, len(t.order))
	for _, e := range t.order {
		if n, ok := t.nodes[e]; ok {
			out = append(out, *n)
		}
	}
	return out
}
