package component

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/snake-strategy/parameter"
	"github.com/lixenwraith/snake-strategy/physics"
	"github.com/lixenwraith/snake-strategy/vmath"
)

// RangedAttack is the capability carried only by ranged units
type RangedAttack struct {
	// Range is the maximum head-to-target distance for firing
	Range float64

	// CooldownMax is the number of ticks between shots
	CooldownMax int

	// Cooldown is the remaining ticks until the next shot, 0 = ready
	Cooldown int
}

// CanAttack is true when the target is within range and the weapon is ready
func (r *RangedAttack) CanAttack(from, to vmath.Vec2) bool {
	return vmath.Distance(from, to) <= r.Range && r.Cooldown == 0
}

// TickCooldown decrements the cooldown toward zero, never below
func (r *RangedAttack) TickCooldown() {
	if r.Cooldown > 0 {
		r.Cooldown--
	}
}

// ResetCooldown re-arms the cooldown after a shot
func (r *RangedAttack) ResetCooldown() {
	r.Cooldown = r.CooldownMax
}

// Unit is one snake on the battlefield
type Unit struct {
	ID uuid.UUID

	// Body is ordered head first; length is fixed at spawn
	Body []vmath.Vec2

	Faction Faction
	Kind    Kind

	Health    float64
	MaxHealth float64
	Damage    float64
	Speed     float64

	// Target is a weak reference resolved through the simulation index, uuid.Nil = none
	Target uuid.UUID

	Throttle physics.Throttle

	// Ranged is non-nil iff Kind == KindRanged
	Ranged *RangedAttack
}

// NewUnit creates a unit with a single-segment body at pos
func NewUnit(pos vmath.Vec2, faction Faction, kind Kind, stats parameter.UnitStats) *Unit {
	body := make([]vmath.Vec2, parameter.UnitBodyLength)
	for i := range body {
		body[i] = pos
	}

	u := &Unit{
		ID:        uuid.New(),
		Body:      body,
		Faction:   faction,
		Kind:      kind,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		Damage:    stats.Damage,
		Speed:     stats.Speed,
	}
	if kind == KindRanged {
		u.Ranged = &RangedAttack{
			Range:       stats.AttackRange,
			CooldownMax: stats.Cooldown,
		}
	}
	return u
}

// Head is the unit's effective location for targeting and collision
func (u *Unit) Head() vmath.Vec2 {
	return u.Body[0]
}

// Alive reports whether the unit still has health
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// HasTarget reports whether a target reference is set (it may be stale)
func (u *Unit) HasTarget() bool {
	return u.Target != uuid.Nil
}

// ClearTarget forces reacquisition on the next tick
func (u *Unit) ClearTarget() {
	u.Target = uuid.Nil
}

// ApplyDamage subtracts damage and reports whether the unit died
func (u *Unit) ApplyDamage(amount float64) bool {
	u.Health -= amount
	return u.Health <= 0
}

// HealthFraction returns health relative to spawn health, clamped to [0, 1]
func (u *Unit) HealthFraction() float64 {
	if u.MaxHealth <= 0 {
		return 0
	}
	f := u.Health / u.MaxHealth
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Move advances one block toward target when the throttle allows
// Returns true if the body moved
func (u *Unit) Move(target vmath.Vec2, field parameter.PlayfieldConfig) bool {
	if !u.Throttle.Ready(field.TickSpeed, u.Speed) {
		return false
	}

	next := physics.GridStep(u.Head(), target, field.Width, field.Height, field.BlockSize)

	// Insert new head, drop tail
	copy(u.Body[1:], u.Body[:len(u.Body)-1])
	u.Body[0] = next
	return true
}

// CanAttack reports whether a ranged unit may fire at targetPos; melee units never can
func (u *Unit) CanAttack(targetPos vmath.Vec2) bool {
	if u.Ranged == nil {
		return false
	}
	return u.Ranged.CanAttack(u.Head(), targetPos)
}
