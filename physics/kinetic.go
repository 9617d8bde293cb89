package physics

import (
	"github.com/lixenwraith/snake-strategy/vmath"
)

// AimVelocity returns the fixed-speed velocity from one point toward another
// Zero-length aim yields zero velocity
func AimVelocity(from, to vmath.Vec2, speed float64) vmath.Vec2 {
	return to.Sub(from).Normalize().Scale(speed)
}

// Integrate advances a position by one tick of velocity
func Integrate(pos, vel vmath.Vec2) vmath.Vec2 {
	return pos.Add(vel)
}
