package mode

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/snake-strategy/component"
	"github.com/lixenwraith/snake-strategy/engine"
	"github.com/lixenwraith/snake-strategy/vmath"
)

// Session is the authoritative owner of interaction state: the editor and placement flags and the selected unit
// The simulation holds no mode flags; every command is gated here
type Session struct {
	sim *engine.Simulation

	EditorMode      bool
	PlacingFriendly bool
	PlacingMelee    bool

	selected uuid.UUID
}

// NewSession wraps a simulation with the initial flags: editor mode, friendly, melee
func NewSession(sim *engine.Simulation) *Session {
	s := &Session{sim: sim}
	s.ResetFlags()
	return s
}

// Simulation exposes the wrapped simulation for read access
func (s *Session) Simulation() *engine.Simulation {
	return s.sim
}

// ResetFlags restores the initial editor and placement flags and drops the selection
func (s *Session) ResetFlags() {
	s.EditorMode = true
	s.PlacingFriendly = true
	s.PlacingMelee = true
	s.selected = uuid.Nil
}

// Selected returns the selected friendly unit, if any
func (s *Session) Selected() (uuid.UUID, bool) {
	return s.selected, s.selected != uuid.Nil
}

// ToggleEditorMode flips between editor and battle mode
// A selection never survives the switch
func (s *Session) ToggleEditorMode() {
	s.EditorMode = !s.EditorMode
	s.selected = uuid.Nil
}

// ToggleFactionPlacement flips the faction of placed units, editor mode only
func (s *Session) ToggleFactionPlacement() {
	if s.EditorMode {
		s.PlacingFriendly = !s.PlacingFriendly
	}
}

// ToggleUnitKindPlacement flips the kind of placed units, editor mode only
func (s *Session) ToggleUnitKindPlacement() {
	if s.EditorMode {
		s.PlacingMelee = !s.PlacingMelee
	}
}

// PlacementFaction returns the faction the next placed unit joins
func (s *Session) PlacementFaction() component.Faction {
	if s.PlacingFriendly {
		return component.FactionFriendly
	}
	return component.FactionEnemy
}

// PlacementKind returns the kind of the next placed unit
func (s *Session) PlacementKind() component.Kind {
	if s.PlacingMelee {
		return component.KindMelee
	}
	return component.KindRanged
}

// Place spawns a unit of the current placement faction and kind, editor mode only
func (s *Session) Place(pos vmath.Vec2) (uuid.UUID, bool) {
	if !s.EditorMode {
		return uuid.Nil, false
	}
	return s.sim.SpawnUnit(pos, s.PlacementFaction(), s.PlacementKind()), true
}

// Press selects the friendly unit under pos in battle mode
// The previous selection is dropped even when nothing is hit
func (s *Session) Press(pos vmath.Vec2) bool {
	if s.EditorMode {
		return false
	}
	s.selected = uuid.Nil
	id, ok := s.sim.FriendlyUnitAt(pos)
	if ok {
		s.selected = id
	}
	return ok
}

// Release assigns the enemy under pos as target of the selected unit in battle mode
func (s *Session) Release(pos vmath.Vec2) bool {
	if s.EditorMode || s.selected == uuid.Nil {
		return false
	}
	return s.sim.SetTargetAt(s.selected, pos)
}

// Step advances the simulation one tick unless the editor is open
func (s *Session) Step() bool {
	if s.EditorMode {
		return false
	}
	s.sim.Tick()
	if s.selected != uuid.Nil && !s.sim.Exists(s.selected) {
		s.selected = uuid.Nil
	}
	return true
}

// Snapshot returns the render view with the current selection marked
func (s *Session) Snapshot() engine.Snapshot {
	return s.sim.Snapshot(s.selected)
}

// Clear removes every unit and projectile, keeping the flags
func (s *Session) Clear() {
	s.sim.Reset()
	s.selected = uuid.Nil
}
