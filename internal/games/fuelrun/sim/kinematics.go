package sim

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// integrate moves every moving entity by velocity times delta.
func (w *World) integrate(delta time.Duration) {
	dt := delta.Seconds()
	w.players.Each(func(_ Handle, p *Player) {
		p.Position = advance(p.Position, p.Velocity, dt)
	})
	w.enemies.Each(func(_ Handle, e *Enemy) {
		e.Position = advance(e.Position, e.Velocity, dt)
	})
	w.projectiles.Each(func(_ Handle, pr *Projectile) {
		pr.Position = advance(pr.Position, pr.Velocity, dt)
	})
}

func advance(pos, vel core.Vec2, dt float64) core.Vec2 {
	return r2.Add(pos, r2.Scale(dt, vel))
}
