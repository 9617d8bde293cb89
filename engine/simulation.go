package engine

import (
	"slices"

	"github.com/google/uuid"

	"github.com/lixenwraith/snake-strategy/component"
	"github.com/lixenwraith/snake-strategy/event"
	"github.com/lixenwraith/snake-strategy/parameter"
	"github.com/lixenwraith/snake-strategy/vmath"
)

// Simulation owns every unit and projectile and advances them one tick at a time
// Not safe for concurrent use: the frame loop applies commands, ticks and snapshots sequentially
type Simulation struct {
	cfg   *parameter.Config
	field parameter.PlayfieldConfig

	// A unit lives in exactly one collection matching its faction and kind
	friendlyMelee  []*component.Unit
	friendlyRanged []*component.Unit
	enemyMelee     []*component.Unit
	enemyRanged    []*component.Unit

	projectiles []*component.Projectile

	// index resolves weak references; removed units are deleted here
	index map[uuid.UUID]*component.Unit

	events *event.EventQueue
	tick   int64
}

// NewSimulation creates an empty battlefield with the given tuning
func NewSimulation(cfg *parameter.Config) *Simulation {
	return &Simulation{
		cfg:    cfg,
		field:  cfg.Playfield,
		index:  make(map[uuid.UUID]*component.Unit),
		events: event.NewEventQueue(),
	}
}

// Events returns the queue the simulation emits into; the frame loop consumes it
func (s *Simulation) Events() *event.EventQueue {
	return s.events
}

// TickCount returns the number of completed ticks
func (s *Simulation) TickCount() int64 {
	return s.tick
}

// collection returns the owning slice for a faction/kind pair
func (s *Simulation) collection(f component.Faction, k component.Kind) *[]*component.Unit {
	switch {
	case f == component.FactionFriendly && k == component.KindMelee:
		return &s.friendlyMelee
	case f == component.FactionFriendly:
		return &s.friendlyRanged
	case k == component.KindMelee:
		return &s.enemyMelee
	default:
		return &s.enemyRanged
	}
}

// factionUnits returns a copy of a faction's melee then ranged units
// Callers iterate the copy so removals never disturb iteration
func (s *Simulation) factionUnits(f component.Faction) []*component.Unit {
	melee := *s.collection(f, component.KindMelee)
	ranged := *s.collection(f, component.KindRanged)
	units := make([]*component.Unit, 0, len(melee)+len(ranged))
	units = append(units, melee...)
	return append(units, ranged...)
}

// lookup resolves a weak reference, nil when unset or removed
func (s *Simulation) lookup(id uuid.UUID) *component.Unit {
	if id == uuid.Nil {
		return nil
	}
	return s.index[id]
}

// Exists reports whether a unit is still on the battlefield
func (s *Simulation) Exists(id uuid.UUID) bool {
	return s.lookup(id) != nil
}

// add places a unit into its collection and the index
func (s *Simulation) add(u *component.Unit) {
	coll := s.collection(u.Faction, u.Kind)
	*coll = append(*coll, u)
	s.index[u.ID] = u
}

// remove deletes a unit from its owning collection, preserving order
// Other units' references to it are left alone and resolve empty on next examination
func (s *Simulation) remove(u *component.Unit) {
	coll := s.collection(u.Faction, u.Kind)
	if i := slices.Index(*coll, u); i >= 0 {
		*coll = slices.Delete(*coll, i, i+1)
	}
	delete(s.index, u.ID)
}

// nearest returns the closest unit of a faction to pos, first-encountered minimum wins
func (s *Simulation) nearest(pos vmath.Vec2, f component.Faction) *component.Unit {
	var best *component.Unit
	bestDist := 0.0
	for _, u := range s.factionUnits(f) {
		d := vmath.Distance(pos, u.Head())
		if best == nil || d < bestDist {
			best, bestDist = u, d
		}
	}
	return best
}

// unitAt returns the first unit of a faction (melee before ranged) whose head overlaps pos
func (s *Simulation) unitAt(pos vmath.Vec2, f component.Faction) *component.Unit {
	for _, u := range s.factionUnits(f) {
		if vmath.Overlaps(pos, u.Head(), s.field.BlockSize) {
			return u
		}
	}
	return nil
}

// statsFor returns the configured stats of a kind
func (s *Simulation) statsFor(k component.Kind) parameter.UnitStats {
	if k == component.KindRanged {
		return s.cfg.Ranged
	}
	return s.cfg.Melee
}

func (s *Simulation) emit(t event.EventType, payload any) {
	s.events.Push(event.GameEvent{Type: t, Payload: payload, Tick: s.tick})
}
