package sim

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// updateSpawner ticks the spawn timer and places an enemy on the ring
// around the player each time it fires. Every firing shortens the next
// interval; once it would drop below the threshold it falls back to the
// slow interval and the ramp starts again.
func (w *World) updateSpawner(delta time.Duration) {
	if w.spawner == nil {
		return
	}
	p, ok := w.alivePlayer()
	if !ok {
		return
	}
	t := &w.tuning
	s := w.spawner

	s.Timer.Tick(delta)
	if !s.Timer.JustFinished() {
		return
	}

	s.Timer.SetDuration(nextSpawnInterval(s.Timer.Duration(), t))
	s.Timer.Reset()

	pos := r2.Add(p.Position, w.rng.Offset(t.SpawnRadius))
	w.enemies.Insert(Enemy{
		Position: pos,
		Facing:   core.Angle(r2.Sub(p.Position, pos)),
	})
	s.Spawned++
	w.stats.EnemiesSpawned++
	w.emit(EventEnemySpawned, pos)
}

func nextSpawnInterval(current time.Duration, t *Tuning) time.Duration {
	next := time.Duration(float64(current) * t.SpawnDecay)
	if next < t.SpawnThreshold {
		return t.SpawnSlow
	}
	return next
}

// steerEnemies turns every enemy toward the player by at most one frame of
// rotation and accelerates it along the heading it had before turning.
func (w *World) steerEnemies(delta time.Duration) {
	p, ok := w.alivePlayer()
	if !ok {
		return
	}
	t := &w.tuning
	step := t.EnemyRotationSpeed * delta.Seconds()
	goal := p.Position
	limit := w.enemyMaxSpeed

	w.enemies.Each(func(_ Handle, e *Enemy) {
		before := e.Facing
		want := core.FixAngle(core.Angle(r2.Sub(goal, e.Position)), before)
		switch {
		case want < before:
			e.Facing -= step
		case want > before:
			e.Facing += step
		}
		e.Facing = core.FixAngle(e.Facing, 0)

		push := r2.Scale(t.EnemyAcceleration, core.FromAngle(before))
		e.Velocity = core.ClampLength(r2.Add(e.Velocity, push), limit)
	})
}
