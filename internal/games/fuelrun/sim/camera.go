package sim

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// updateCamera eases the camera toward a point ahead of the player, applies
// shake and keeps the background dots around the view.
func (w *World) updateCamera(delta time.Duration) {
	t := &w.tuning
	c := &w.camera

	if p, ok := w.alivePlayer(); ok {
		ahead := r2.Scale(t.LookaheadDistance/t.MaxSpeed, p.Velocity)
		k := math.Min(1, t.FollowSpeed*delta.Seconds())
		c.Position = core.Lerp(c.Position, r2.Add(p.Position, ahead), k)
	}

	w.applyShake()
	w.wrapDots()
}

// applyShake jitters the camera by the current magnitude and decays it,
// snapping to zero below the floor.
func (w *World) applyShake() {
	c := &w.camera
	if !(c.Shake > 0) {
		c.Shake = 0
		return
	}
	c.Position = r2.Add(c.Position, w.rng.Offset(c.Shake))
	if c.Shake < w.tuning.ShakeFloor {
		c.Shake = 0
		return
	}
	c.Shake *= w.tuning.ShakeDecay
}

// backgroundGrid lays out one screen of evenly spaced dots centered on the
// origin.
func backgroundGrid(t Tuning) []core.Vec2 {
	if t.DotDistance <= 0 || t.Width <= 0 || t.Height <= 0 {
		return nil
	}
	cols := int(t.Width / t.DotDistance)
	rows := int(t.Height / t.DotDistance)
	dots := make([]core.Vec2, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			dots = append(dots, core.V(
				-t.Width/2+float64(x)*t.DotDistance,
				-t.Height/2+float64(y)*t.DotDistance,
			))
		}
	}
	return dots
}

func (w *World) wrapDots() {
	t := &w.tuning
	c := w.camera.Position
	for i := range w.dots {
		w.dots[i].X = core.WrapAround(w.dots[i].X, c.X, t.Width)
		w.dots[i].Y = core.WrapAround(w.dots[i].Y, c.Y, t.Height)
	}
}

// Dots returns the background dot positions.
func (w *World) Dots() []core.Vec2 {
	out := make([]core.Vec2, len(w.dots))
	copy(out, w.dots)
	return out
}
