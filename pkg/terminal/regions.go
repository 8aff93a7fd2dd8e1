// Package terminal translates tcell terminal input into core event
// sequences. A Regions registry maps screen rectangles to entities;
// the Driver runs mouse button edge detection against it, synthesizing
// the down/click/up, drag, and cancel sequences widget controllers
// expect, and routes keyboard input to the focused entity.
package terminal

import "github.com/go-drift/headless/pkg/entity"

// Rect is a rectangle in screen cells. A rect with zero or negative
// width or height contains nothing.
type Rect struct {
	X, Y, W, H int
}

// NewRect builds a rect from a top-left cell and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the cell at (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Regions maps screen rectangles to entities for pointer hit testing.
// Placement order is stacking order: the most recently placed region
// is frontmost. Hit testing returns the frontmost hit as the target
// and the entities stacked behind it at that cell as the bubble path.
//
// Regions is not goroutine safe; placement and hit testing run on the
// dispatch goroutine.
type Regions struct {
	list []region
}

type region struct {
	entity entity.ID
	rect   Rect
}

// NewRegions returns an empty registry.
func NewRegions() *Regions {
	return &Regions{}
}

// Place stacks a region for e in front of all existing regions.
// Placing an entity that already has a region moves it to the front
// with the new rect. Placing entity.None is a no-op.
func (r *Regions) Place(e entity.ID, rect Rect) {
	if e.IsNone() {
		return
	}
	r.Remove(e)
	r.list = append(r.list, region{entity: e, rect: rect})
}

// Remove drops e's region, reporting whether one existed.
func (r *Regions) Remove(e entity.ID) bool {
	for i := range r.list {
		if r.list[i].entity == e {
			r.list = append(r.list[:i], r.list[i+1:]...)
			return true
		}
	}
	return false
}

// Rect returns e's region rectangle.
func (r *Regions) Rect(e entity.ID) (Rect, bool) {
	for i := range r.list {
		if r.list[i].entity == e {
			return r.list[i].rect, true
		}
	}
	return Rect{}, false
}

// Len returns the number of placed regions.
func (r *Regions) Len() int {
	return len(r.list)
}

// HitTest returns the frontmost entity whose region contains the cell
// at (x, y), plus the entities stacked behind it at that cell, nearest
// first. It returns entity.None when nothing is hit.
func (r *Regions) HitTest(x, y int) (entity.ID, []entity.ID) {
	var hits []entity.ID
	for i := len(r.list) - 1; i >= 0; i-- {
		if r.list[i].rect.Contains(x, y) {
			hits = append(hits, r.list[i].entity)
		}
	}
	if len(hits) == 0 {
		return entity.None, nil
	}
	return hits[0], hits[1:]
}
