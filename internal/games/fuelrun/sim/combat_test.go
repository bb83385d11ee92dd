package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/fuelrun/internal/core"
)

func stillBullet(at core.Vec2, life time.Duration) Projectile {
	return Projectile{
		Position: at,
		Lifetime: core.NewTimer(life, core.TimerOnce),
		Radius:   1.5,
		Kind:     KindBullet,
	}
}

func TestOverlappingBulletsKillOnce(t *testing.T) {
	for _, k := range []int{1, 3, 8} {
		w := NewWorld(quietTuning(), 11)
		at := core.V(50, 0)
		w.enemies.Insert(Enemy{Position: at})
		for i := 0; i < k; i++ {
			w.projectiles.Insert(stillBullet(at, time.Second))
		}

		report := w.Step(Input{}, frameDelta)

		if w.EnemyCount() != 0 {
			t.Errorf("k=%d: EnemyCount() = %d, want 0", k, w.EnemyCount())
		}
		if n := report.Count(EventEnemyDestroyed); n != 1 {
			t.Errorf("k=%d: destroyed events = %d, want 1", k, n)
		}
		if w.PickupCount() != 1 {
			t.Fatalf("k=%d: PickupCount() = %d, want 1", k, w.PickupCount())
		}
		var killedAt core.Vec2
		for _, e := range report.Events {
			if e.Kind == EventEnemyDestroyed {
				killedAt = e.Position
			}
		}
		if core.Distance(killedAt, at) > 1 {
			t.Errorf("k=%d: enemy destroyed at %v, expected near %v", k, killedAt, at)
		}
		if got := w.Pickups()[0].Position; got != killedAt {
			t.Errorf("k=%d: pickup at %v, want the enemy's last position %v", k, got, killedAt)
		}
		// Bullets survive hits; exactly one burst was added.
		if want := k + w.tuning.ExplosionFragments; w.ProjectileCount() != want {
			t.Errorf("k=%d: ProjectileCount() = %d, want %d", k, w.ProjectileCount(), want)
		}
		if shake := w.Camera().Shake; !almostEqual(shake, w.tuning.ExplosionShake*w.tuning.ShakeDecay, 1e-9) {
			t.Errorf("k=%d: Shake = %v after one frame, want %v", k, shake, w.tuning.ExplosionShake*w.tuning.ShakeDecay)
		}
		if w.Stats().Kills != 1 {
			t.Errorf("k=%d: Kills = %d, want 1", k, w.Stats().Kills)
		}
	}
}

func TestOneBulletKillsEveryEnemyInReach(t *testing.T) {
	w := NewWorld(quietTuning(), 11)
	w.enemies.Insert(Enemy{Position: core.V(40, 0)})
	w.enemies.Insert(Enemy{Position: core.V(41, 1)})
	w.projectiles.Insert(stillBullet(core.V(40.5, 0.5), time.Second))

	report := w.Step(Input{}, frameDelta)

	if report.Count(EventEnemyDestroyed) != 2 {
		t.Errorf("destroyed events = %d, want 2", report.Count(EventEnemyDestroyed))
	}
	if w.PickupCount() != 2 {
		t.Errorf("PickupCount() = %d, want 2", w.PickupCount())
	}
}

func TestMissDoesNotKill(t *testing.T) {
	w := NewWorld(quietTuning(), 11)
	w.enemies.Insert(Enemy{Position: core.V(40, 0)})
	w.projectiles.Insert(stillBullet(core.V(40, 20), time.Second))

	w.Step(Input{}, frameDelta)

	if w.EnemyCount() != 1 {
		t.Errorf("EnemyCount() = %d, want 1", w.EnemyCount())
	}
}

func TestFragmentsFromThisFrameDoNotChain(t *testing.T) {
	w := NewWorld(quietTuning(), 11)
	w.enemies.Insert(Enemy{Position: core.V(40, 0)})
	// Close enough for a fragment of the first explosion, far from the bullet.
	w.enemies.Insert(Enemy{Position: core.V(40, 7)})
	w.projectiles.Insert(stillBullet(core.V(40, 0), time.Second))

	report := w.Step(Input{}, frameDelta)

	if n := report.Count(EventEnemyDestroyed); n != 1 {
		t.Errorf("destroyed events = %d in the explosion frame, want 1", n)
	}
}

func TestProjectileExpiry(t *testing.T) {
	w := NewWorld(quietTuning(), 11)
	short := w.projectiles.Insert(stillBullet(core.V(10, 0), 10*time.Millisecond))
	far := w.projectiles.Insert(stillBullet(core.V(120, 0), time.Minute))
	keep := w.projectiles.Insert(stillBullet(core.V(-10, 0), time.Minute))

	w.Step(Input{}, frameDelta)

	if w.projectiles.Alive(short) {
		t.Error("projectile whose lifetime ran out should be gone")
	}
	if w.projectiles.Alive(far) {
		t.Error("projectile beyond the cull radius should be gone")
	}
	if !w.projectiles.Alive(keep) {
		t.Error("nearby projectile with lifetime left should survive")
	}
}

func TestNoCullWithoutPlayer(t *testing.T) {
	w := NewWorld(quietTuning(), 11)
	far := w.projectiles.Insert(stillBullet(core.V(500, 0), time.Minute))
	w.KillPlayer()

	w.Step(Input{}, frameDelta)
	w.Step(Input{}, frameDelta)

	if !w.projectiles.Alive(far) {
		t.Error("distance cull should be skipped when there is no player")
	}
}

func TestFragmentColor(t *testing.T) {
	tests := []struct {
		roll int
		want ColorClass
	}{
		{0, ColorEmber},
		{1, ColorEmber},
		{2, ColorFlame},
		{3, ColorSpark},
		{4, ColorSpark},
		{5, ColorSmoke},
	}
	for _, tt := range tests {
		if got := fragmentColor(tt.roll); got != tt.want {
			t.Errorf("fragmentColor(%d) = %v, want %v", tt.roll, got, tt.want)
		}
	}
}

func TestBurstFragments(t *testing.T) {
	w := NewWorld(quietTuning(), 11)
	tn := w.tuning
	origin := core.V(5, 5)
	w.spawnBurst(200, origin, core.Vec2{})

	if w.ProjectileCount() != 200 {
		t.Fatalf("ProjectileCount() = %d, want 200", w.ProjectileCount())
	}
	w.projectiles.Each(func(_ Handle, pr *Projectile) {
		if pr.Kind != KindFragment {
			t.Errorf("kind = %v, want fragment", pr.Kind)
		}
		if pr.Position != origin {
			t.Errorf("fragment spawned at %v, want %v", pr.Position, origin)
		}
		if pr.Radius < tn.FragmentRadiusMin || pr.Radius >= tn.FragmentRadiusMax {
			t.Errorf("radius %v out of range", pr.Radius)
		}
		if d := pr.Lifetime.Duration(); d < tn.FragmentLifetimeMin || d >= tn.FragmentLifetimeMax {
			t.Errorf("lifetime %v out of range", d)
		}
		if s := core.Length(pr.Velocity); s < tn.FragmentSpeedMin-1e-9 || s > tn.FragmentSpeedMax+1e-9 {
			t.Errorf("speed %v out of range", s)
		}
		if pr.Color == ColorBullet {
			t.Error("fragments should use a fire color")
		}
	})
}

func TestScatterGunFiresBurst(t *testing.T) {
	tuning := ScatterTuning()
	tuning.TargetEnabled = false
	w := NewWorld(tuning, 11)
	readyGun(mustPlayer(t, w))

	w.Step(Input{Fire: true}, frameDelta)

	if w.ProjectileCount() != tuning.GunBurstCount {
		t.Errorf("ProjectileCount() = %d, want %d", w.ProjectileCount(), tuning.GunBurstCount)
	}
	if p := mustPlayer(t, w); p.Ammo != tuning.StartingAmmo-1 {
		t.Errorf("Ammo = %d, want %d", p.Ammo, tuning.StartingAmmo-1)
	}
}
