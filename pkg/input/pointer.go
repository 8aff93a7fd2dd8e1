package input

import "math"

// PointerID distinguishes concurrent pointers (mouse buttons, touches).
type PointerID int64

// Point is a position in backend coordinates.
type Point struct {
	X, Y float64
}

// DistanceTo returns the euclidean distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// PointerEvent is a single pointer transition at a position. The
// transition kind (down, up, click, ...) is carried by the enclosing
// event's type, not here.
type PointerEvent struct {
	// ID identifies the pointer for the duration of a press sequence.
	ID PointerID
	// Position is where the transition happened.
	Position Point
}
