package sim

import (
	"time"

	"github.com/vovakirdan/fuelrun/internal/core"
)

func (w *World) spawnPickup(at core.Vec2) Handle {
	t := &w.tuning
	return w.pickups.Insert(Pickup{
		Position: at,
		Delay:    core.NewTimer(t.PickupDelay, core.TimerOnce),
		Anim:     core.NewTimer(t.PickupFrameTime, core.TimerRepeating),
	})
}

// updatePickups animates canisters, pulls them toward the player once their
// grace period is over and collects the ones within reach.
func (w *World) updatePickups(delta time.Duration) {
	t := &w.tuning
	p, hasPlayer := w.alivePlayer()

	w.pickups.Each(func(h Handle, c *Pickup) {
		c.Anim.Tick(delta)
		c.Frame = (c.Frame + c.Anim.TimesFinishedThisTick()) % t.PickupFrames
		c.Delay.Tick(delta)

		if !hasPlayer {
			return
		}
		if c.Delay.Finished() {
			c.Position = core.Lerp(c.Position, p.Position, t.PickupCollectSpeed)
		}
		if core.Distance(c.Position, p.Position) >= t.PickupRadius {
			return
		}

		w.pickups.MarkDestroy(h)
		p.Ammo = addAmmo(p.Ammo, t.RefillAmount)
		w.stats.PickupsCollected++
		w.stats.FuelCollected += int(t.RefillAmount)
		w.emit(EventPickupCollected, c.Position)
	})
}
