package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/snake-strategy/component"
	"github.com/lixenwraith/snake-strategy/vmath"
)

// UnitView is the read-only render state of a unit
type UnitView struct {
	ID             uuid.UUID
	Position       vmath.Vec2
	Faction        component.Faction
	Kind           component.Kind
	Health         float64
	HealthFraction float64
	Selected       bool
}

// ProjectileView is the read-only render state of a projectile
type ProjectileView struct {
	Position vmath.Vec2
	Faction  component.Faction
}

// Counts are collection sizes
type Counts struct {
	FriendlyMelee  int
	FriendlyRanged int
	EnemyMelee     int
	EnemyRanged    int
	Projectiles    int
}

// Friendly returns the number of friendly units
func (c Counts) Friendly() int { return c.FriendlyMelee + c.FriendlyRanged }

// Enemy returns the number of enemy units
func (c Counts) Enemy() int { return c.EnemyMelee + c.EnemyRanged }

// Snapshot is a value copy of the battlefield safe to hold across ticks
type Snapshot struct {
	Tick        int64
	Units       []UnitView
	Projectiles []ProjectileView
	Counts      Counts
}

// Counts returns the current collection sizes
func (s *Simulation) Counts() Counts {
	return Counts{
		FriendlyMelee:  len(s.friendlyMelee),
		FriendlyRanged: len(s.friendlyRanged),
		EnemyMelee:     len(s.enemyMelee),
		EnemyRanged:    len(s.enemyRanged),
		Projectiles:    len(s.projectiles),
	}
}

// Winner reports the only faction left standing, false while both or neither have units
func (s *Simulation) Winner() (component.Faction, bool) {
	c := s.Counts()
	switch {
	case c.Friendly() > 0 && c.Enemy() == 0:
		return component.FactionFriendly, true
	case c.Enemy() > 0 && c.Friendly() == 0:
		return component.FactionEnemy, true
	default:
		return component.FactionFriendly, false
	}
}

// Snapshot copies the render state; selected marks the highlighted unit
// Units are listed friendly melee, enemy melee, friendly ranged, enemy ranged (draw order)
func (s *Simulation) Snapshot(selected uuid.UUID) Snapshot {
	counts := s.Counts()
	snap := Snapshot{
		Tick:        s.tick,
		Units:       make([]UnitView, 0, counts.Friendly()+counts.Enemy()),
		Projectiles: make([]ProjectileView, 0, counts.Projectiles),
		Counts:      counts,
	}

	for _, coll := range [][]*component.Unit{s.friendlyMelee, s.enemyMelee, s.friendlyRanged, s.enemyRanged} {
		for _, u := range coll {
			snap.Units = append(snap.Units, UnitView{
				ID:             u.ID,
				Position:       u.Head(),
				Faction:        u.Faction,
				Kind:           u.Kind,
				Health:         u.Health,
				HealthFraction: u.HealthFraction(),
				Selected:       selected != uuid.Nil && u.ID == selected,
			})
		}
	}

	for _, p := range s.projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Position: p.Position,
			Faction:  p.Owner,
		})
	}
	return snap
}
