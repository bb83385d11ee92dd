package sim

import (
	"time"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// fuelIconCount is ceil(ammo / refill).
func fuelIconCount(ammo, refill uint32) int {
	if refill == 0 {
		return 0
	}
	return int((uint64(ammo) + uint64(refill) - 1) / uint64(refill))
}

// reconcileHUD grows or shrinks the fuel and star rows to match the player
// and pins them to the top-left corner of the view.
func (w *World) reconcileHUD(delta time.Duration) {
	p, ok := w.alivePlayer()
	if !ok {
		return
	}
	t := &w.tuning

	reconcileRow(&w.fuelIcons, fuelIconCount(p.Ammo, t.RefillAmount), func() Icon {
		return Icon{}
	})
	reconcileRow(&w.stars, int(p.Score), func() Icon {
		return Icon{Anim: core.NewTimer(w.rng.Duration(t.StarTwinkleMin, t.StarTwinkleMax), core.TimerRepeating)}
	})

	left := w.camera.Position.X - t.Width/2 + t.HUDMargin
	top := w.camera.Position.Y + t.Height/2

	i := 0
	w.fuelIcons.Each(func(_ Handle, ic *Icon) {
		ic.Position = core.V(left+float64(i)*t.HUDSpacing, top-22)
		i++
	})
	i = 0
	w.stars.Each(func(_ Handle, ic *Icon) {
		ic.Anim.Tick(delta)
		ic.Frame = (ic.Frame + ic.Anim.TimesFinishedThisTick()) % t.StarFrames
		ic.Position = core.V(left+float64(i)*t.HUDSpacing, top-10)
		i++
	})
}

// reconcileRow inserts or marks icons until the row holds want of them.
// Surplus icons are taken from the end of the row.
func reconcileRow(row *Arena[Icon], want int, mk func() Icon) {
	have := row.Handles()
	for n := len(have); n < want; n++ {
		row.Insert(mk())
	}
	for _, h := range have[min(want, len(have)):] {
		row.MarkDestroy(h)
	}
}
