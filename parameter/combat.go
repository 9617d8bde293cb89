package parameter

// Projectile stats
const (
	// ProjectileSpeed is the distance travelled per tick (pixels)
	ProjectileSpeed = 5.0

	// ProjectileDamage is applied once, on first hit
	ProjectileDamage = 5.0
)
