package testing

import (
	"fmt"

	"github.com/go-drift/headless/pkg/engine"
	"github.com/go-drift/headless/pkg/entity"
	"github.com/go-drift/headless/pkg/widget"
)

// Finder locates entities in a runtime's widget store.
type Finder interface {
	// Evaluate returns all matching entities in spawn order.
	Evaluate(rt *engine.Runtime) []entity.ID
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	ids    []entity.ID
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() entity.ID {
	if len(r.ids) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no entities: %s", desc))
	}
	return r.ids[0]
}

// FirstOrNone returns the first match, or entity.None if none.
func (r FinderResult) FirstOrNone() entity.ID {
	if len(r.ids) == 0 {
		return entity.None
	}
	return r.ids[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) entity.ID {
	if index < 0 || index >= len(r.ids) {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.ids), desc))
	}
	return r.ids[index]
}

// All returns all matches in spawn order.
func (r FinderResult) All() []entity.ID {
	return r.ids
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.ids)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.ids) > 0
}

// --- Concrete finders ---

// kindFinder matches entities whose record kind equals kind.
type kindFinder struct {
	kind widget.Kind
}

func (f *kindFinder) Evaluate(rt *engine.Runtime) []entity.ID {
	return collectMatches(rt, func(rt *engine.Runtime, e entity.ID) bool {
		return rt.Store().Kind(e) == f.kind
	})
}

func (f *kindFinder) Description() string {
	return fmt.Sprintf("ByKind(%s)", f.kind)
}

// ByKind returns a finder matching entities with a record of kind.
func ByKind(kind widget.Kind) Finder {
	return &kindFinder{kind: kind}
}

// labelFinder matches entities whose semantics label equals label.
type labelFinder struct {
	label string
}

func (f *labelFinder) Evaluate(rt *engine.Runtime) []entity.ID {
	return collectMatches(rt, func(rt *engine.Runtime, e entity.ID) bool {
		node, ok := rt.Semantics().Node(e)
		return ok && node.Label == f.label
	})
}

func (f *labelFinder) Description() string {
	return fmt.Sprintf("ByLabel(%q)", f.label)
}

// ByLabel returns a finder matching entities whose semantics label
// equals label exactly.
func ByLabel(label string) Finder {
	return &labelFinder{label: label}
}

// focusedFinder matches the entity holding focus.
type focusedFinder struct{}

func (focusedFinder) Evaluate(rt *engine.Runtime) []entity.ID {
	e := rt.Focus().Focused()
	if e.IsNone() {
		return nil
	}
	return []entity.ID{e}
}

func (focusedFinder) Description() string {
	return "Focused()"
}

// Focused returns a finder matching the entity holding keyboard focus.
func Focused() Finder {
	return focusedFinder{}
}

// disabledFinder matches entities carrying the disabled flag.
type disabledFinder struct{}

func (disabledFinder) Evaluate(rt *engine.Runtime) []entity.ID {
	return collectMatches(rt, func(rt *engine.Runtime, e entity.ID) bool {
		return rt.Store().IsDisabled(e)
	})
}

func (disabledFinder) Description() string {
	return "Disabled()"
}

// Disabled returns a finder matching entities with the disabled flag.
func Disabled() Finder {
	return disabledFinder{}
}

// predicateFinder matches entities satisfying a predicate.
type predicateFinder struct {
	fn   func(*engine.Runtime, entity.ID) bool
	desc string
}

func (f *predicateFinder) Evaluate(rt *engine.Runtime) []entity.ID {
	return collectMatches(rt, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder matching entities satisfying fn.
func ByPredicate(fn func(*engine.Runtime, entity.ID) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// collectMatches walks the store in spawn order, collecting entities
// that satisfy the predicate.
func collectMatches(rt *engine.Runtime, predicate func(*engine.Runtime, entity.ID) bool) []entity.ID {
	var results []entity.ID
	for _, e := range rt.Store().Entities() {
		if predicate(rt, e) {
			results = append(results, e)
		}
	}
	return results
}
