package engine

import (
	"testing"

	"github.com/lixenwraith/snake-strategy/component"
	"github.com/lixenwraith/snake-strategy/event"
	"github.com/lixenwraith/snake-strategy/parameter"
	"github.com/lixenwraith/snake-strategy/vmath"
)

func projectilesOf(s *Simulation, f component.Faction) int {
	n := 0
	for _, p := range s.projectiles {
		if p.Owner == f {
			n++
		}
	}
	return n
}

func TestTick_TargetsNearest(t *testing.T) {
	s := newTestSimulation()
	attacker := place(s, vmath.V(300, 300), component.FactionFriendly, component.KindRanged)
	far := place(s, vmath.V(300, 350), component.FactionEnemy, component.KindMelee)
	near := place(s, vmath.V(300, 310), component.FactionEnemy, component.KindMelee)

	s.acquireTarget(attacker)

	if attacker.Target != near.ID {
		t.Errorf("acquired %v, want nearest %v (far %v)", attacker.Target, near.ID, far.ID)
	}
}

func TestTick_TargetTieFirstEncounteredWins(t *testing.T) {
	s := newTestSimulation()
	attacker := place(s, vmath.V(300, 300), component.FactionFriendly, component.KindMelee)
	ranged := place(s, vmath.V(300, 340), component.FactionEnemy, component.KindRanged)
	melee := place(s, vmath.V(300, 260), component.FactionEnemy, component.KindMelee)

	s.acquireTarget(attacker)

	if attacker.Target != melee.ID {
		t.Errorf("tie resolved to %v, want melee %v over ranged %v", attacker.Target, melee.ID, ranged.ID)
	}
}

func TestTick_KeepsLiveTarget(t *testing.T) {
	s := newTestSimulation()
	attacker := place(s, vmath.V(300, 300), component.FactionFriendly, component.KindMelee)
	far := place(s, vmath.V(600, 300), component.FactionEnemy, component.KindMelee)
	place(s, vmath.V(340, 300), component.FactionEnemy, component.KindMelee)

	attacker.Target = far.ID
	s.acquireTarget(attacker)

	if attacker.Target != far.ID {
		t.Error("live assigned target must not be replaced by a nearer one")
	}
}

func TestTick_NoOpponentsNoAction(t *testing.T) {
	s := newTestSimulation()
	u := place(s, vmath.V(300, 300), component.FactionFriendly, component.KindMelee)

	s.Tick()

	if u.Head() != vmath.V(300, 300) || u.HasTarget() {
		t.Errorf("lonely unit acted: head %v target %v", u.Head(), u.Target)
	}
}

func TestTick_RangedHoldBand(t *testing.T) {
	tests := []struct {
		name      string
		enemyAt   vmath.Vec2
		cooldown  int
		wantHead  vmath.Vec2
		wantShots int
	}{
		{"Beyond range moves", vmath.V(400, 100), 0, vmath.V(120, 100), 0},
		{"In range and ready fires without moving", vmath.V(260, 100), 0, vmath.V(100, 100), 1},
		{"In outer band cooling down closes in", vmath.V(260, 100), 5, vmath.V(120, 100), 0},
		{"Inner band cooling down holds", vmath.V(180, 100), 5, vmath.V(100, 100), 0},
		{"Inner band ready fires", vmath.V(180, 100), 0, vmath.V(100, 100), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSimulation()
			shooter := place(s, vmath.V(100, 100), component.FactionFriendly, component.KindRanged)
			place(s, tt.enemyAt, component.FactionEnemy, component.KindMelee)
			// Cooldown is ticked before the check
			if tt.cooldown > 0 {
				shooter.Ranged.Cooldown = tt.cooldown + 1
			}

			s.Tick()

			if shooter.Head() != tt.wantHead {
				t.Errorf("head = %v, want %v", shooter.Head(), tt.wantHead)
			}
			if got := projectilesOf(s, component.FactionFriendly); got != tt.wantShots {
				t.Errorf("shots = %d, want %d", got, tt.wantShots)
			}
			if tt.wantShots > 0 && shooter.Ranged.Cooldown != parameter.RangedCooldown {
				t.Errorf("cooldown = %d, want reset to %d", shooter.Ranged.Cooldown, parameter.RangedCooldown)
			}
		})
	}
}

func TestTick_RangedFireRate(t *testing.T) {
	s := newTestSimulation()
	shooter := place(s, vmath.V(100, 100), component.FactionFriendly, component.KindRanged)
	target := place(s, vmath.V(180, 100), component.FactionEnemy, component.KindMelee)
	target.Speed = 0.0001 // effectively stationary

	fired := 0
	for i := 0; i < 61; i++ {
		s.Tick()
		fired += countEvents(s.Events().Consume(), event.EventProjectileFired)
	}
	// Ticks 1, 31 and 61
	if fired != 3 {
		t.Errorf("fired %d times in 61 ticks, want 3", fired)
	}
	if shooter.Head() != vmath.V(100, 100) {
		t.Errorf("shooter inside hold band moved to %v", shooter.Head())
	}
}

func TestTick_ProjectileAimedAtTargetHead(t *testing.T) {
	s := newTestSimulation()
	place(s, vmath.V(100, 100), component.FactionFriendly, component.KindRanged)
	place(s, vmath.V(100, 260), component.FactionEnemy, component.KindRanged)

	s.Tick()

	var shot *component.Projectile
	for _, p := range s.projectiles {
		if p.Owner == component.FactionFriendly {
			shot = p
		}
	}
	if shot == nil {
		t.Fatal("expected a friendly projectile")
	}
	if shot.Velocity != vmath.V(0, parameter.ProjectileSpeed) {
		t.Errorf("velocity = %v, want (0, %v)", shot.Velocity, parameter.ProjectileSpeed)
	}
	if shot.Position != vmath.V(100, 100) {
		t.Errorf("spawned at %v, want shooter head", shot.Position)
	}
}

func TestTick_PointBlankShotResolvesAtSpawn(t *testing.T) {
	s := newTestSimulation()
	shooter := place(s, vmath.V(100, 100), component.FactionFriendly, component.KindRanged)
	target := place(s, vmath.V(100, 100), component.FactionEnemy, component.KindMelee)

	s.Tick()

	if len(s.projectiles) != 0 {
		t.Fatalf("point-blank shot left %d projectiles on the field", len(s.projectiles))
	}
	if want := parameter.MeleeHealth - parameter.ProjectileDamage; target.Health != want {
		t.Errorf("target health = %v, want %v", target.Health, want)
	}
	// Target stepped off the shared cell after being hit
	if target.Head() != vmath.V(100, 80) {
		t.Errorf("target head = %v, want (100, 80)", target.Head())
	}
	if shooter.Ranged.Cooldown != parameter.RangedCooldown {
		t.Errorf("cooldown = %d, want re-armed %d", shooter.Ranged.Cooldown, parameter.RangedCooldown)
	}

	events := s.Events().Consume()
	if countEvents(events, event.EventProjectileFired) != 1 || countEvents(events, event.EventUnitHit) != 1 {
		t.Errorf("events = %v", events)
	}
}

func TestTick_LethalProjectileAndLazyInvalidation(t *testing.T) {
	s := newTestSimulation()
	victim := place(s, vmath.V(100, 100), component.FactionEnemy, component.KindMelee)
	victim.Health = 5
	backup := place(s, vmath.V(600, 500), component.FactionEnemy, component.KindMelee)
	hunter := place(s, vmath.V(500, 500), component.FactionFriendly, component.KindMelee)
	hunter.Target = victim.ID

	s.projectiles = append(s.projectiles, &component.Projectile{
		Position: vmath.V(90, 100),
		Velocity: vmath.V(5, 0),
		Owner:    component.FactionFriendly,
		Damage:   5,
	})

	s.tick++
	s.updateProjectiles()

	if s.Exists(victim.ID) || s.Counts().EnemyMelee != 1 {
		t.Fatal("victim should be removed in the projectile phase")
	}
	if len(s.projectiles) != 0 {
		t.Error("projectile should be consumed by the hit")
	}
	// Reference is left in place until the hunter examines it
	if got, _ := s.TargetOf(hunter.ID); got != victim.ID {
		t.Error("target reference was eagerly cleared")
	}

	s.updateFaction(component.FactionFriendly)

	if got, _ := s.TargetOf(hunter.ID); got != backup.ID {
		t.Errorf("hunter target = %v, want reacquired %v", got, backup.ID)
	}

	events := s.Events().Consume()
	if countEvents(events, event.EventUnitHit) != 1 || countEvents(events, event.EventUnitKilled) != 1 {
		t.Errorf("events = %v", events)
	}
}

func TestTick_ProjectileSingleHit(t *testing.T) {
	s := newTestSimulation()
	first := place(s, vmath.V(100, 100), component.FactionEnemy, component.KindMelee)
	second := place(s, vmath.V(105, 100), component.FactionEnemy, component.KindRanged)

	s.projectiles = append(s.projectiles, &component.Projectile{
		Position: vmath.V(98, 100),
		Velocity: vmath.V(5, 0),
		Owner:    component.FactionFriendly,
		Damage:   5,
	})

	s.Tick()

	if first.Health != 95 {
		t.Errorf("first health = %v, want 95", first.Health)
	}
	if second.Health != 100 {
		t.Errorf("second health = %v, want untouched 100", second.Health)
	}
	if len(s.projectiles) != 0 {
		t.Error("projectile survived its hit")
	}

	s.Tick()
	if first.Health != 95 || second.Health != 100 {
		t.Error("damage applied twice")
	}
}

func TestTick_ProjectileIgnoresOwnFaction(t *testing.T) {
	s := newTestSimulation()
	ally := place(s, vmath.V(100, 100), component.FactionFriendly, component.KindMelee)
	s.projectiles = append(s.projectiles, &component.Projectile{
		Position: vmath.V(98, 100),
		Velocity: vmath.V(1, 0),
		Owner:    component.FactionFriendly,
		Damage:   5,
	})

	s.Tick()

	if ally.Health != 100 {
		t.Error("friendly fire applied")
	}
	if len(s.projectiles) != 1 {
		t.Error("projectile should pass through allies")
	}
}

func TestTick_OutOfBoundsProjectileRemoved(t *testing.T) {
	s := newTestSimulation()
	s.projectiles = append(s.projectiles,
		&component.Projectile{Position: vmath.V(798, 300), Velocity: vmath.V(5, 0), Owner: component.FactionEnemy, Damage: 5},
		&component.Projectile{Position: vmath.V(400, 300), Velocity: vmath.V(5, 0), Owner: component.FactionEnemy, Damage: 5},
		&component.Projectile{Position: vmath.V(400, 2), Velocity: vmath.V(0, -5), Owner: component.FactionFriendly, Damage: 5},
	)

	s.Tick()

	if len(s.projectiles) != 1 || s.projectiles[0].Position != vmath.V(405, 300) {
		t.Fatalf("remaining projectiles = %d", len(s.projectiles))
	}
	if n := countEvents(s.Events().Consume(), event.EventProjectileExpired); n != 2 {
		t.Errorf("expired events = %d, want 2", n)
	}
}

func TestTick_MeleeContactNeedsOverlap(t *testing.T) {
	s := newTestSimulation()
	friend := place(s, vmath.V(100, 100), component.FactionFriendly, component.KindMelee)
	enemy := place(s, vmath.V(140, 100), component.FactionEnemy, component.KindMelee)

	s.Tick()

	// Friend steps to (120, 100): exactly one block from the enemy, no contact
	if friend.Head() != vmath.V(120, 100) {
		t.Fatalf("friend head = %v", friend.Head())
	}
	if enemy.Health != 100 {
		t.Errorf("enemy one block away was hit: health %v", enemy.Health)
	}
	// Enemy then steps onto the friend and strikes
	if enemy.Head() != vmath.V(120, 100) || friend.Health != 90 {
		t.Errorf("enemy head %v, friend health %v", enemy.Head(), friend.Health)
	}
}

func TestTick_MeleeKillClearsTargetAndDeniesTurn(t *testing.T) {
	s := newTestSimulation()
	friend := place(s, vmath.V(100, 100), component.FactionFriendly, component.KindMelee)
	enemy := place(s, vmath.V(120, 100), component.FactionEnemy, component.KindMelee)
	enemy.Health = 10

	s.Tick()

	if s.Exists(enemy.ID) || s.Counts().EnemyMelee != 0 {
		t.Fatal("enemy should be dead and removed")
	}
	if friend.HasTarget() {
		t.Error("killer must clear its target")
	}
	// Friendly resolves first, so the victim never acts this tick
	if friend.Health != 100 {
		t.Errorf("dead enemy acted: friend health %v", friend.Health)
	}

	var killed *event.UnitKilledPayload
	for _, ev := range s.Events().Consume() {
		if ev.Type == event.EventUnitKilled {
			killed = ev.Payload.(*event.UnitKilledPayload)
		}
	}
	if killed == nil || killed.Killer != friend.ID || killed.Unit != enemy.ID {
		t.Errorf("kill event = %+v", killed)
	}
}

func TestTick_EnemyPhaseAfterFriendly(t *testing.T) {
	s := newTestSimulation()
	friend := place(s, vmath.V(100, 100), component.FactionFriendly, component.KindMelee)
	enemy := place(s, vmath.V(100, 100), component.FactionEnemy, component.KindMelee)

	s.Tick()

	// Both moved toward a coincident target: zero delta steps -Y
	if friend.Head() != vmath.V(100, 80) {
		t.Errorf("friend head = %v, want (100, 80)", friend.Head())
	}
	// Enemy observes the friend's new head and steps toward it
	if enemy.Head() != vmath.V(100, 80) {
		t.Errorf("enemy head = %v, want (100, 80)", enemy.Head())
	}
	if friend.Health != 90 || enemy.Health != 100 {
		t.Errorf("health friend %v enemy %v, want 90 / 100", friend.Health, enemy.Health)
	}
}

func TestTick_ThrottledMelee(t *testing.T) {
	cfg := parameter.DefaultConfig()
	cfg.Melee.Speed = cfg.Playfield.TickSpeed / 2
	s := NewSimulation(cfg)
	slow := place(s, vmath.V(100, 100), component.FactionFriendly, component.KindMelee)
	target := place(s, vmath.V(700, 100), component.FactionEnemy, component.KindRanged)
	target.Speed = 0.0001
	target.Ranged.Range = 0

	for i := 0; i < 6; i++ {
		s.Tick()
	}

	if slow.Head() != vmath.V(160, 100) {
		t.Errorf("half-speed unit at %v after 6 ticks, want (160, 100)", slow.Head())
	}
}

func TestTick_WrapsAcrossEdge(t *testing.T) {
	s := newTestSimulation()
	runner := place(s, vmath.V(780, 300), component.FactionFriendly, component.KindMelee)
	target := place(s, vmath.V(780, 300), component.FactionEnemy, component.KindRanged)
	target.Speed = 0.0001
	target.Ranged.Range = 0
	runner.Target = target.ID
	target.Body[0] = vmath.V(1000, 300) // beyond the edge, reachable only by wrapping

	s.Tick()

	if runner.Head() != vmath.V(0, 300) {
		t.Errorf("runner head = %v, want wrapped (0, 300)", runner.Head())
	}
}

func TestTick_CountsTicks(t *testing.T) {
	s := newTestSimulation()
	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if s.TickCount() != 3 {
		t.Errorf("TickCount = %d, want 3", s.TickCount())
	}
}
