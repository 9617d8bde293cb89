package vmath

import "math"

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Wrap maps v into [0, size) with Euclidean modulo
// Negative inputs reappear at the far edge: Wrap(-20, 800) == 780
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	m := math.Mod(v, size)
	if m < 0 {
		m += size
	}
	return m
}

// Snap floors a point onto the block grid
func Snap(p Vec2, block float64) Vec2 {
	if block <= 0 {
		return p
	}
	return Vec2{
		X: p.X - Wrap(p.X, block),
		Y: p.Y - Wrap(p.Y, block),
	}
}
