package component

import (
	"github.com/lixenwraith/snake-strategy/parameter"
	"github.com/lixenwraith/snake-strategy/physics"
	"github.com/lixenwraith/snake-strategy/vmath"
)

// Projectile is a free-flying shot, aimed once at spawn and never re-aimed
type Projectile struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Owner    Faction
	Damage   float64
}

// NewProjectile aims from source toward the target position at this instant
func NewProjectile(from, to vmath.Vec2, owner Faction, stats parameter.ProjectileStats) *Projectile {
	return &Projectile{
		Position: from,
		Velocity: physics.AimVelocity(from, to, stats.Speed),
		Owner:    owner,
		Damage:   stats.Damage,
	}
}

// Advance moves the projectile by one tick of velocity
func (p *Projectile) Advance() {
	p.Position = physics.Integrate(p.Position, p.Velocity)
}

// OutOfBounds reports whether the projectile has left the playfield
func (p *Projectile) OutOfBounds(field parameter.PlayfieldConfig) bool {
	return physics.OutOfBounds(p.Position, field.Width, field.Height)
}
