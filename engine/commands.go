package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/snake-strategy/component"
	"github.com/lixenwraith/snake-strategy/event"
	"github.com/lixenwraith/snake-strategy/vmath"
)

// SpawnUnit creates a unit at the block cell containing pos and returns its ID
// Positions outside the playfield wrap onto it
func (s *Simulation) SpawnUnit(pos vmath.Vec2, f component.Faction, k component.Kind) uuid.UUID {
	cell := vmath.Snap(vmath.Vec2{
		X: vmath.Wrap(pos.X, s.field.Width),
		Y: vmath.Wrap(pos.Y, s.field.Height),
	}, s.field.BlockSize)

	u := component.NewUnit(cell, f, k, s.statsFor(k))
	s.add(u)
	return u.ID
}

// FriendlyUnitAt returns the first friendly unit whose head overlaps pos, melee searched before ranged
func (s *Simulation) FriendlyUnitAt(pos vmath.Vec2) (uuid.UUID, bool) {
	if u := s.unitAt(pos, component.FactionFriendly); u != nil {
		return u.ID, true
	}
	return uuid.Nil, false
}

// SetTargetAt assigns the opposing unit under pos as the target of unit id
// No-op when the unit is gone or nothing opposing is under pos
func (s *Simulation) SetTargetAt(id uuid.UUID, pos vmath.Vec2) bool {
	u := s.lookup(id)
	if u == nil {
		return false
	}
	t := s.unitAt(pos, u.Faction.Opponent())
	if t == nil {
		return false
	}
	u.Target = t.ID
	return true
}

// TargetOf returns the current target reference of a unit, which may be stale
func (s *Simulation) TargetOf(id uuid.UUID) (uuid.UUID, bool) {
	u := s.lookup(id)
	if u == nil || !u.HasTarget() {
		return uuid.Nil, false
	}
	return u.Target, true
}

// Reset removes every unit and projectile
func (s *Simulation) Reset() {
	s.friendlyMelee = nil
	s.friendlyRanged = nil
	s.enemyMelee = nil
	s.enemyRanged = nil
	s.projectiles = nil
	s.index = make(map[uuid.UUID]*component.Unit)
	s.emit(event.EventBattlefieldCleared, nil)
}
