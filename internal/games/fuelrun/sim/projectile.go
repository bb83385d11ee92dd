package sim

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// fire emits the shot of the configured gun from the player's position.
func (w *World) fire(p Player) {
	t := &w.tuning
	switch t.FireMode {
	case FireBurst:
		base := r2.Scale(-t.BulletSpeed, core.FromAngle(p.Facing))
		w.spawnBurst(t.GunBurstCount, p.Position, base)
	default:
		w.spawnBullet(p.Position, p.Facing, p.Velocity)
	}
}

// spawnBullet fires one bullet out of the back of the shooter. The bullet
// keeps its own speed but its heading bends toward the shooter's motion.
func (w *World) spawnBullet(origin core.Vec2, facing float64, shooter core.Vec2) Handle {
	t := &w.tuning
	v := r2.Add(r2.Scale(-t.BulletSpeed, core.FromAngle(facing)), w.rng.Offset(t.BulletSpread))
	v = r2.Scale(core.Length(v), core.Normalize(r2.Add(v, shooter)))

	return w.projectiles.Insert(Projectile{
		Position: origin,
		Velocity: v,
		Facing:   core.Angle(v),
		Lifetime: core.NewTimer(t.BulletLifetime, core.TimerOnce),
		Radius:   t.BulletRadius,
		Color:    ColorBullet,
		Kind:     KindBullet,
	})
}

// spawnBurst scatters count fragments from origin. Each fragment moves at
// base plus a random direction of random speed.
func (w *World) spawnBurst(count int, origin, base core.Vec2) {
	t := &w.tuning
	for i := 0; i < count; i++ {
		color := fragmentColor(w.rng.IntN(6))
		radius := w.rng.Range(t.FragmentRadiusMin, t.FragmentRadiusMax)
		life := w.rng.Duration(t.FragmentLifetimeMin, t.FragmentLifetimeMax)
		v := r2.Add(base, w.rng.Offset(w.rng.Range(t.FragmentSpeedMin, t.FragmentSpeedMax)))

		w.projectiles.Insert(Projectile{
			Position: origin,
			Velocity: v,
			Facing:   core.Angle(v),
			Lifetime: core.NewTimer(life, core.TimerOnce),
			Radius:   radius,
			Color:    color,
			Kind:     KindFragment,
		})
	}
}

// fragmentColor maps a roll in [0,5] to a weighted color bucket.
func fragmentColor(roll int) ColorClass {
	switch {
	case roll <= 1:
		return ColorEmber
	case roll == 2:
		return ColorFlame
	case roll <= 4:
		return ColorSpark
	default:
		return ColorSmoke
	}
}

// expireProjectiles ticks lifetimes and marks projectiles that ran out or
// strayed beyond the cull radius. The distance cull needs a live player.
func (w *World) expireProjectiles(shots []Handle, delta time.Duration) {
	cull := w.tuning.CullRadius
	anchor, hasAnchor := core.Vec2{}, false
	if p, ok := w.alivePlayer(); ok && cull > 0 {
		anchor, hasAnchor = p.Position, true
	}

	for _, h := range shots {
		pr, ok := w.projectiles.Get(h)
		if !ok {
			continue
		}
		pr.Lifetime.Tick(delta)
		if pr.Lifetime.Finished() || (hasAnchor && core.Distance(pr.Position, anchor) > cull) {
			w.projectiles.MarkDestroy(h)
		}
	}
}
