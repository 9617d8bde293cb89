package vmath

import "math"

// Overlaps is the block-sized axis-aligned box test used for every contact in the game:
// melee hits, projectile hits and cursor picking
// Strict < on both axes: two heads exactly one block apart do not touch
func Overlaps(a, b Vec2, block float64) bool {
	return math.Abs(a.X-b.X) < block && math.Abs(a.Y-b.Y) < block
}
