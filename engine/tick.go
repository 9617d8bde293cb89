package engine

import (
	"github.com/lixenwraith/snake-strategy/component"
	"github.com/lixenwraith/snake-strategy/event"
	"github.com/lixenwraith/snake-strategy/vmath"
)

// Tick advances the battlefield one step
// Phase order is fixed and later phases observe earlier results:
//  1. projectiles fly and hit
//  2. friendly units act
//  3. enemy units act
//
// Friendly always resolves before enemy, so a friendly kill this tick denies the victim its action
func (s *Simulation) Tick() {
	s.tick++
	s.updateProjectiles()
	s.updateFaction(component.FactionFriendly)
	s.updateFaction(component.FactionEnemy)
}

// updateProjectiles moves every projectile and resolves at most one hit each
func (s *Simulation) updateProjectiles() {
	kept := make([]*component.Projectile, 0, len(s.projectiles))
	for _, p := range s.projectiles {
		p.Advance()

		if s.projectileHit(p) {
			continue
		}
		if p.OutOfBounds(s.field) {
			s.emit(event.EventProjectileExpired, &event.ProjectileExpiredPayload{
				Faction:  p.Owner,
				Position: p.Position,
			})
			continue
		}
		kept = append(kept, p)
	}
	s.projectiles = kept
}

// projectileHit damages the first opposing unit overlapping the projectile
func (s *Simulation) projectileHit(p *component.Projectile) bool {
	for _, u := range s.factionUnits(p.Owner.Opponent()) {
		if !vmath.Overlaps(p.Position, u.Head(), s.field.BlockSize) {
			continue
		}
		killed := u.ApplyDamage(p.Damage)
		s.emit(event.EventUnitHit, &event.UnitHitPayload{
			Unit:     u.ID,
			Faction:  u.Faction,
			Source:   event.HitProjectile,
			Position: u.Head(),
			Damage:   p.Damage,
			Health:   u.Health,
		})
		if killed {
			s.kill(u, nil)
		}
		return true
	}
	return false
}

// updateFaction lets every unit of a faction acquire a target and act
// Iterates a copy taken at phase start
func (s *Simulation) updateFaction(f component.Faction) {
	for _, u := range s.factionUnits(f) {
		if !u.Alive() {
			continue
		}

		target := s.acquireTarget(u)
		if target == nil {
			continue
		}

		switch u.Kind {
		case component.KindRanged:
			s.actRanged(u, target)
		case component.KindMelee:
			s.actMelee(u, target)
		}
	}
}

// kill removes a unit and reports it; killer is nil for projectile kills
func (s *Simulation) kill(u, killer *component.Unit) {
	s.remove(u)
	payload := &event.UnitKilledPayload{
		Unit:     u.ID,
		Faction:  u.Faction,
		Kind:     u.Kind,
		Position: u.Head(),
	}
	if killer != nil {
		payload.Killer = killer.ID
	}
	s.emit(event.EventUnitKilled, payload)
}
