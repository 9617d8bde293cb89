package event

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/snake-strategy/component"
	"github.com/lixenwraith/snake-strategy/vmath"
)

// HitSource identifies what dealt the damage
type HitSource uint8

const (
	HitProjectile HitSource = iota
	HitMelee
)

// ProjectileFiredPayload describes a new shot
type ProjectileFiredPayload struct {
	Shooter uuid.UUID
	Faction component.Faction
	From    vmath.Vec2
	To      vmath.Vec2
}

// UnitHitPayload describes damage taken
type UnitHitPayload struct {
	Unit     uuid.UUID
	Faction  component.Faction
	Source   HitSource
	Position vmath.Vec2
	Damage   float64
	Health   float64 // Remaining, may be <= 0
}

// UnitKilledPayload describes a removed unit
type UnitKilledPayload struct {
	Unit     uuid.UUID
	Faction  component.Faction
	Kind     component.Kind
	Position vmath.Vec2
	Killer   uuid.UUID // uuid.Nil for projectile kills
}

// ProjectileExpiredPayload describes a shot that left the playfield
type ProjectileExpiredPayload struct {
	Faction  component.Faction
	Position vmath.Vec2
}
