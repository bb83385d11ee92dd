package fuelrun

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/fuelrun/internal/core"
	"github.com/vovakirdan/fuelrun/internal/games/fuelrun/sim"
)

// Autopilot is a rule-based pilot used by headless runs and demos.
//
// The gun fires out of the back of the vehicle, so shooting an enemy means
// turning away from it, which also carries the vehicle to safety.
type Autopilot struct {
	DangerRange  float64 // enemies closer than this are shot at
	PickupRange  float64 // canisters closer than this are chased
	AimTolerance float64 // radians
	AmmoReserve  uint32  // below this, only fire at threats
}

// NewAutopilot returns an autopilot with sensible defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		DangerRange:  70,
		PickupRange:  120,
		AimTolerance: 0.25,
		AmmoReserve:  30,
	}
}

// Decide picks the input for the next frame. It never requests a reset.
func (a *Autopilot) Decide(w *sim.World) sim.Input {
	p, ok := w.Player()
	if !ok {
		return sim.Input{}
	}

	// Threat first: point the gun at the closest enemy in range.
	if e, dist, ok := nearestEnemy(p.Position, w.Enemies()); ok && dist < a.DangerRange {
		away := core.Angle(r2.Sub(p.Position, e.Position))
		in := a.turnToward(p.Facing, away)
		in.Fire = a.aligned(p.Facing, away) && p.Ammo > 0
		return in
	}

	// Then fuel, then the target.
	goal, hasGoal := core.Vec2{}, false
	if c, dist, ok := nearestPickup(p.Position, w.Pickups()); ok && dist < a.PickupRange {
		goal, hasGoal = c.Position, true
	} else if tg, ok := w.Target(); ok {
		goal, hasGoal = tg.Position, true
	}
	if !hasGoal {
		return sim.Input{}
	}

	heading := core.Angle(r2.Sub(goal, p.Position))
	in := a.turnToward(p.Facing, heading)
	in.Fire = a.aligned(p.Facing, heading) && p.Ammo > a.AmmoReserve
	return in
}

// Frame wraps Decide as a platform input frame.
func (a *Autopilot) Frame(w *sim.World) core.InputFrame {
	in := a.Decide(w)
	f := core.NewInputFrame()
	if in.TurnLeft {
		f.Set(core.ActionLeft)
	}
	if in.TurnRight {
		f.Set(core.ActionRight)
	}
	if in.Fire {
		f.Set(core.ActionFire)
	}
	return f
}

func (a *Autopilot) turnToward(facing, want float64) sim.Input {
	diff := core.FixAngle(want, facing) - facing
	switch {
	case diff > a.AimTolerance/2:
		return sim.Input{TurnLeft: true}
	case diff < -a.AimTolerance/2:
		return sim.Input{TurnRight: true}
	default:
		return sim.Input{}
	}
}

func (a *Autopilot) aligned(facing, want float64) bool {
	return math.Abs(core.FixAngle(want, facing)-facing) <= a.AimTolerance
}

func nearestEnemy(from core.Vec2, enemies []sim.Enemy) (sim.Enemy, float64, bool) {
	best, bestDist, found := sim.Enemy{}, math.MaxFloat64, false
	for _, e := range enemies {
		if d := core.Distance(from, e.Position); d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, bestDist, found
}

func nearestPickup(from core.Vec2, pickups []sim.Pickup) (sim.Pickup, float64, bool) {
	best, bestDist, found := sim.Pickup{}, math.MaxFloat64, false
	for _, c := range pickups {
		if d := core.Distance(from, c.Position); d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, bestDist, found
}
