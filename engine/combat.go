package engine

import (
	"github.com/lixenwraith/snake-strategy/component"
	"github.com/lixenwraith/snake-strategy/event"
	"github.com/lixenwraith/snake-strategy/vmath"
)

// acquireTarget keeps a live target or reassigns to the nearest opponent
// A reference to a removed or dead unit is treated as empty here and nowhere else
func (s *Simulation) acquireTarget(u *component.Unit) *component.Unit {
	if t := s.lookup(u.Target); t != nil && t.Alive() {
		return t
	}

	u.ClearTarget()
	t := s.nearest(u.Head(), u.Faction.Opponent())
	if t == nil {
		return nil
	}
	u.Target = t.ID
	return t
}

// actRanged fires when in range and ready, otherwise closes distance until within half range
// A unit never moves and fires in the same tick
func (s *Simulation) actRanged(u, target *component.Unit) {
	r := u.Ranged
	r.TickCooldown()

	aim := target.Head()
	if u.CanAttack(aim) {
		s.fire(u, aim)
		r.ResetCooldown()
		return
	}
	if vmath.Distance(u.Head(), aim) > r.Range/2 {
		u.Move(aim, s.field)
	}
}

// fire spawns a projectile owned by the shooter's faction
// A shot with no direction resolves against what it was spawned on and is never kept
func (s *Simulation) fire(u *component.Unit, aim vmath.Vec2) {
	p := component.NewProjectile(u.Head(), aim, u.Faction, s.cfg.Projectile)
	s.emit(event.EventProjectileFired, &event.ProjectileFiredPayload{
		Shooter: u.ID,
		Faction: u.Faction,
		From:    u.Head(),
		To:      aim,
	})

	if p.Velocity.IsZero() {
		s.projectileHit(p)
		return
	}
	s.projectiles = append(s.projectiles, p)
}

// actMelee steps toward the target and strikes on contact
func (s *Simulation) actMelee(u, target *component.Unit) {
	u.Move(target.Head(), s.field)

	if !vmath.Overlaps(u.Head(), target.Head(), s.field.BlockSize) {
		return
	}

	killed := target.ApplyDamage(u.Damage)
	s.emit(event.EventUnitHit, &event.UnitHitPayload{
		Unit:     target.ID,
		Faction:  target.Faction,
		Source:   event.HitMelee,
		Position: target.Head(),
		Damage:   u.Damage,
		Health:   target.Health,
	})
	if killed {
		s.kill(target, u)
		u.ClearTarget()
	}
}
