package game

import "math"

type Circle struct {
	X, Y, Radius float64
}

// Rect is axis-aligned, positioned by its center.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// CircleIntersectsRect reports whether the circle and rectangle overlap.
// Axis deltas beyond half-extent plus radius rule out a hit; deltas within
// a half-extent mean the center sits in that axis slab; otherwise compare
// the squared distance to the nearest corner against radius squared.
func CircleIntersectsRect(c Circle, r Rect) bool {
	distX := math.Abs(c.X - r.X)
	distY := math.Abs(c.Y - r.Y)

	if distX > r.Width/2+c.Radius {
		return false
	}
	if distY > r.Height/2+c.Radius {
		return false
	}

	if distX <= r.Width/2 {
		return true
	}
	if distY <= r.Height/2 {
		return true
	}

	dx := distX - r.Width/2
	dy := distY - r.Height/2
	return dx*dx+dy*dy <= c.Radius*c.Radius
}
