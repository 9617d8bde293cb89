package physics

import (
	"github.com/lixenwraith/snake-strategy/vmath"
)

// OutOfBounds reports whether a free-flying point has left the playfield
// Edges are inclusive: x == width is still inside
func OutOfBounds(p vmath.Vec2, width, height float64) bool {
	return p.X < 0 || p.X > width || p.Y < 0 || p.Y > height
}
