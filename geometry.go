package main

import "math"

// Vec2 is a 2D position or velocity
type Vec2 struct {
	X, Y float64
}

// Distance returns the Euclidean distance between (x1,y1) and (x2,y2)
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Pointer is the last known cursor position. Valid is false until the
// first move event arrives.
type Pointer struct {
	X, Y  float64
	Valid bool
}

// DistanceTo reports the distance from the pointer to (x, y).
// ok is false when the pointer has never been seen.
func (p Pointer) DistanceTo(x, y float64) (d float64, ok bool) {
	if !p.Valid {
		return 0, false
	}
	return Distance(p.X, p.Y, x, y), true
}

// MoveTo records a pointer move event
func (p *Pointer) MoveTo(x, y float64) {
	p.X, p.Y = x, y
	p.Valid = true
}
