package parameter

// MaxUnitHealth is the upper bound on configured unit health
const MaxUnitHealth = 100.0

// Melee unit stats
const (
	// MeleeHealth is the starting and maximum health of a melee unit
	MeleeHealth = 100.0

	// MeleeDamage is applied to the target on every tick the heads overlap
	MeleeDamage = 10.0

	// MeleeSpeed equal to TickSpeed moves one block per tick
	MeleeSpeed = 15.0
)

// Ranged unit stats
const (
	RangedHealth = 100.0
	RangedDamage = 10.0
	RangedSpeed  = 15.0

	// RangedAttackRange is the maximum head-to-head distance for firing
	// Units stop closing in once within half of this range
	RangedAttackRange = 200.0

	// RangedCooldown is the number of ticks between shots
	RangedCooldown = 30
)
