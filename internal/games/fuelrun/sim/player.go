package sim

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// updatePlayer applies rotation, firing and thrust to the player.
// Rotation is scaled by the frame delta; thrust is a per-frame impulse.
func (w *World) updatePlayer(in Input, delta time.Duration) {
	p, ok := w.alivePlayer()
	if !ok {
		return
	}
	t := &w.tuning
	dt := delta.Seconds()

	if in.TurnLeft {
		p.Facing += t.RotationSpeed * dt
	}
	if in.TurnRight {
		p.Facing -= t.RotationSpeed * dt
	}
	p.Facing = core.FixAngle(p.Facing, 0)

	p.Gun.Tick(delta)
	if in.Fire && p.Gun.Finished() && p.Ammo > 0 {
		p.Ammo--
		p.Gun.Reset()
		p.Velocity = r2.Add(p.Velocity, r2.Scale(t.BoostAcceleration, core.FromAngle(p.Facing)))
		w.fire(*p)
		w.stats.Shots++
		w.emit(EventShot, p.Position)
	}

	p.Velocity = thrust(p.Velocity, p.Facing, t)
}

// thrust adds passive acceleration along facing, caps the speed and
// applies drag. In steer-only mode the speed is preserved and only the
// heading of the velocity changes.
func thrust(v core.Vec2, facing float64, t *Tuning) core.Vec2 {
	push := r2.Scale(t.PassiveAcceleration, core.FromAngle(facing))
	if t.SteerOnly {
		speed := math.Min(core.Length(v), t.MaxSpeed)
		v = r2.Scale(speed, core.Normalize(r2.Add(v, push)))
	} else {
		v = core.ClampLength(r2.Add(v, push), t.MaxSpeed)
	}
	return r2.Scale(t.Drag, v)
}

// killPlayer marks the player destroyed and sets off a death burst.
func (w *World) killPlayer() bool {
	p, ok := w.alivePlayer()
	if !ok {
		return false
	}
	at := p.Position
	w.players.MarkDestroy(w.player)
	w.TriggerShake(w.tuning.ExplosionShake)
	w.spawnBurst(w.tuning.ExplosionFragments, at, core.Vec2{})
	w.emit(EventPlayerDied, at)
	if w.tuning.RespawnOnDeath {
		w.resetRequested = true
	}
	return true
}

func addAmmo(ammo, n uint32) uint32 {
	if ammo > math.MaxUint32-n {
		return math.MaxUint32
	}
	return ammo + n
}
