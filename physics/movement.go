package physics

import (
	"math"

	"github.com/lixenwraith/snake-strategy/vmath"
)

// Throttle gates grid movement to simulate variable speed on a fixed tick rate
// A unit with speed == tickSpeed moves every tick, speed == tickSpeed/2 every other tick
type Throttle struct {
	Counter int
}

// Ready advances the counter and reports whether this tick may move
// The counter resets on every permitted move
func (t *Throttle) Ready(tickSpeed, speed float64) bool {
	t.Counter++
	if float64(t.Counter) < tickSpeed/speed {
		return false
	}
	t.Counter = 0
	return true
}

// GridStep moves one block from head toward target along the dominant axis
// X is chosen only when |dx| is strictly greater than |dy|, so ties step on Y
// A zero delta steps in the negative direction; the result wraps toroidally
func GridStep(head, target vmath.Vec2, width, height, block float64) vmath.Vec2 {
	dx := target.X - head.X
	dy := target.Y - head.Y

	next := head
	if math.Abs(dx) > math.Abs(dy) {
		next.X += stepToward(dx, block)
	} else {
		next.Y += stepToward(dy, block)
	}

	next.X = vmath.Wrap(next.X, width)
	next.Y = vmath.Wrap(next.Y, height)
	return next
}

func stepToward(delta, block float64) float64 {
	if delta > 0 {
		return block
	}
	return -block
}
