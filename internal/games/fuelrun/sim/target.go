package sim

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// spawnTarget places a new target on a random point of the annulus sector
// around the origin.
func (w *World) spawnTarget() {
	t := &w.tuning
	angle := w.rng.Range(t.TargetAngleMin, t.TargetAngleMax)
	radius := w.rng.Range(t.TargetRadiusMin, t.TargetRadiusMax)
	w.target = w.targets.Insert(Target{Position: r2.Scale(radius, core.FromAngle(angle))})
}

// updateTarget replaces the target once the player reaches it and awards a
// star plus a refill while the score is below its cap.
func (w *World) updateTarget() {
	t := &w.tuning
	if !t.TargetEnabled {
		return
	}
	p, ok := w.alivePlayer()
	if !ok || !w.targets.Alive(w.target) {
		return
	}
	tg, _ := w.targets.Get(w.target)
	at := tg.Position
	if core.Distance(p.Position, at) >= t.TargetRadius {
		return
	}

	w.targets.MarkDestroy(w.target)
	w.spawnTarget()
	if p.Score < t.MaxScore {
		p.Score++
		p.Ammo = addAmmo(p.Ammo, t.RefillAmount)
		w.stats.TargetsReached++
	}
	w.emit(EventTargetReached, at)
}

// Arrow returns the pointer that sits between the player and the target,
// and the angle it faces. ok is false when either is missing or they
// coincide.
func (w *World) Arrow() (pos core.Vec2, facing float64, ok bool) {
	p, hasPlayer := w.alivePlayer()
	if !hasPlayer || !w.targets.Alive(w.target) {
		return core.Vec2{}, 0, false
	}
	tg, _ := w.targets.Get(w.target)
	dir := r2.Sub(tg.Position, p.Position)
	if core.Length(dir) == 0 {
		return core.Vec2{}, 0, false
	}
	pos = r2.Add(p.Position, r2.Scale(w.tuning.ArrowDistance, core.Normalize(dir)))
	return pos, core.Angle(dir), true
}
