package component

// Faction determines valid targets and projectile eligibility
type Faction uint8

const (
	FactionFriendly Faction = iota
	FactionEnemy
)

// Opponent returns the faction this one fights
func (f Faction) Opponent() Faction {
	if f == FactionFriendly {
		return FactionEnemy
	}
	return FactionFriendly
}

func (f Faction) String() string {
	if f == FactionFriendly {
		return "friendly"
	}
	return "enemy"
}

// Kind tags the attack behavior of a unit
type Kind uint8

const (
	KindMelee Kind = iota
	KindRanged
)

func (k Kind) String() string {
	switch k {
	case KindMelee:
		return "melee"
	case KindRanged:
		return "ranged"
	default:
		return "unknown"
	}
}
