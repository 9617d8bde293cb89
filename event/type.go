package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventProjectileFired signals a ranged unit shot
	// Trigger: unit phase | Payload: *ProjectileFiredPayload
	EventProjectileFired EventType = iota

	// EventUnitHit signals damage applied to a unit that survived or died
	// Trigger: projectile phase, melee contact | Payload: *UnitHitPayload
	EventUnitHit

	// EventUnitKilled signals a unit removed from its collection
	// Trigger: projectile phase, melee contact | Payload: *UnitKilledPayload
	EventUnitKilled

	// EventProjectileExpired signals a projectile leaving the playfield without a hit
	// Trigger: projectile phase | Payload: *ProjectileExpiredPayload
	EventProjectileExpired

	// EventBattlefieldCleared signals an explicit reset of all collections
	// Trigger: clear command | Payload: nil
	EventBattlefieldCleared
)

func (t EventType) String() string {
	switch t {
	case EventProjectileFired:
		return "projectile_fired"
	case EventUnitHit:
		return "unit_hit"
	case EventUnitKilled:
		return "unit_killed"
	case EventProjectileExpired:
		return "projectile_expired"
	case EventBattlefieldCleared:
		return "battlefield_cleared"
	default:
		return "unknown"
	}
}

// GameEvent is one entry of the event queue
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}
