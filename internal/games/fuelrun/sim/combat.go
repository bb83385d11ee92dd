package sim

import (
	"time"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// resolveCombat runs projectile hits, projectile expiry and player contact.
// Hits and expiry share one snapshot so fragments spawned by this frame's
// explosions neither hit nor age until the next frame.
func (w *World) resolveCombat(delta time.Duration) {
	shots := w.projectiles.Handles()
	w.resolveHits(shots)
	w.expireProjectiles(shots, delta)
	w.resolvePlayerContact()
}

// resolveHits destroys every enemy touched by a projectile. An enemy dies
// at most once per frame no matter how many projectiles overlap it, and
// projectiles are not consumed by hits.
func (w *World) resolveHits(shots []Handle) {
	reach := w.tuning.ContactRadius
	for _, eh := range w.enemies.Handles() {
		e, ok := w.enemies.Get(eh)
		if !ok {
			continue
		}
		at := e.Position
		for _, ph := range shots {
			pr, ok := w.projectiles.Get(ph)
			if !ok {
				continue
			}
			if core.Distance(at, pr.Position) < reach+pr.Radius {
				w.destroyEnemy(eh, at)
				break
			}
		}
	}
}

func (w *World) destroyEnemy(h Handle, at core.Vec2) {
	if !w.enemies.MarkDestroy(h) {
		return
	}
	t := &w.tuning
	w.TriggerShake(t.ExplosionShake)
	w.spawnBurst(t.ExplosionFragments, at, core.Vec2{})
	w.spawnPickup(at)
	w.stats.Kills++
	w.emit(EventEnemyDestroyed, at)
}

// resolvePlayerContact kills the player when an enemy gets too close.
func (w *World) resolvePlayerContact() {
	reach := w.tuning.PlayerContactRadius
	if reach <= 0 {
		return
	}
	p, ok := w.alivePlayer()
	if !ok {
		return
	}
	at := p.Position
	for _, eh := range w.enemies.Handles() {
		e, _ := w.enemies.Get(eh)
		if core.Distance(at, e.Position) < reach {
			w.killPlayer()
			return
		}
	}
}
