// Package sim is the deterministic simulation core of Fuel Run.
//
// A World is advanced one frame at a time with Step. Each frame runs the
// systems in a fixed order (player, enemies, integration, combat, pickups,
// target, camera, HUD), then applies deferred destruction and, if requested,
// a full reset. The package performs no I/O and draws nothing: hosts read
// View for rendering and FrameReport events for audio.
package sim

import (
	"time"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// Input is the per-frame intent snapshot.
type Input struct {
	TurnLeft  bool
	TurnRight bool
	Fire      bool
	Reset     bool
}

// Stats accumulates per-run counters. A reset clears them.
type Stats struct {
	Frames           int // frames survived
	Shots            int
	Kills            int
	EnemiesSpawned   int
	PickupsCollected int
	FuelCollected    int // ammunition gained from pickups
	TargetsReached   int
}

// World owns every entity of one simulation.
type World struct {
	tuning Tuning
	rng    *core.RNG

	players     Arena[Player]
	enemies     Arena[Enemy]
	projectiles Arena[Projectile]
	pickups     Arena[Pickup]
	targets     Arena[Target]
	fuelIcons   Arena[Icon]
	stars       Arena[Icon]

	player  Handle
	target  Handle
	spawner *Spawner
	camera  Camera
	dots    []core.Vec2

	enemyMaxSpeed  float64
	resetRequested bool
	frame          uint64
	stats          Stats
	events         []Event
}

// NewWorld creates a world with a fresh player, spawner and target.
func NewWorld(t Tuning, seed int64) *World {
	w := &World{
		tuning: t.sanitize(),
		rng:    core.NewRNG(seed),
	}
	w.enemyMaxSpeed = w.tuning.EnemyMaxSpeed
	w.dots = backgroundGrid(w.tuning)
	w.populate()
	w.reconcileHUD(0)
	return w
}

// populate creates the entities a run starts with.
func (w *World) populate() {
	t := &w.tuning
	w.player = w.players.Insert(Player{
		Ammo: t.StartingAmmo,
		Gun:  core.NewTimer(t.GunCooldown, core.TimerOnce),
	})
	w.spawner = &Spawner{Timer: core.NewTimer(t.SpawnInitial, core.TimerOnce)}
	if t.TargetEnabled {
		w.spawnTarget()
	}
}

// Step advances the world by one frame.
func (w *World) Step(in Input, delta time.Duration) FrameReport {
	if delta < 0 {
		delta = 0
	}
	w.events = nil
	if in.Reset {
		w.resetRequested = true
	}

	w.updatePlayer(in, delta)
	w.updateSpawner(delta)
	w.steerEnemies(delta)
	w.integrate(delta)
	w.resolveCombat(delta)
	w.updatePickups(delta)
	w.updateTarget()
	w.updateCamera(delta)
	w.reconcileHUD(delta)
	w.flush()

	if w.resetRequested {
		w.reset()
	}
	if w.players.Alive(w.player) {
		w.stats.Frames++
	}
	w.frame++

	return FrameReport{Frame: w.frame, Events: w.events}
}

// flush applies every destruction marked during the frame.
func (w *World) flush() {
	w.players.Flush()
	w.enemies.Flush()
	w.projectiles.Flush()
	w.pickups.Flush()
	w.targets.Flush()
	w.fuelIcons.Flush()
	w.stars.Flush()
}

// reset tears down every transient entity and starts a new run.
// The camera and background survive.
func (w *World) reset() {
	w.players.Clear()
	w.enemies.Clear()
	w.projectiles.Clear()
	w.pickups.Clear()
	w.targets.Clear()
	w.fuelIcons.Clear()
	w.stars.Clear()

	w.player = Handle{}
	w.target = Handle{}
	w.spawner = nil
	w.stats = Stats{}
	w.resetRequested = false

	w.populate()
	w.reconcileHUD(0)
	w.emit(EventReset, core.Vec2{})
}

func (w *World) emit(kind EventKind, at core.Vec2) {
	w.events = append(w.events, Event{Kind: kind, Position: at})
}

// alivePlayer returns the player record unless it is missing or dying.
func (w *World) alivePlayer() (*Player, bool) {
	if !w.players.Alive(w.player) {
		return nil, false
	}
	return w.players.Get(w.player)
}

// RequestReset schedules a reset at the end of the next Step.
func (w *World) RequestReset() {
	w.resetRequested = true
}

// KillPlayer destroys the player as if a fatal collision happened.
// It returns false when there is no live player.
func (w *World) KillPlayer() bool {
	return w.killPlayer()
}

// SetEnemyMaxSpeed overrides the enemy speed limit used from the next frame on.
func (w *World) SetEnemyMaxSpeed(v float64) {
	if v < 0 {
		v = 0
	}
	w.enemyMaxSpeed = v
}

// EnemyMaxSpeed returns the enemy speed limit in effect.
func (w *World) EnemyMaxSpeed() float64 {
	return w.enemyMaxSpeed
}

// TriggerShake sets the camera shake magnitude, replacing any shake in flight.
func (w *World) TriggerShake(magnitude float64) {
	if magnitude < 0 {
		magnitude = 0
	}
	w.camera.Shake = magnitude
}

// Player returns a copy of the player, if one is alive.
func (w *World) Player() (Player, bool) {
	p, ok := w.alivePlayer()
	if !ok {
		return Player{}, false
	}
	return *p, true
}

// Target returns a copy of the current target, if any.
func (w *World) Target() (Target, bool) {
	if !w.targets.Alive(w.target) {
		return Target{}, false
	}
	tg, _ := w.targets.Get(w.target)
	return *tg, true
}

// Spawner returns a copy of the enemy spawner, if any.
func (w *World) Spawner() (Spawner, bool) {
	if w.spawner == nil {
		return Spawner{}, false
	}
	return *w.spawner, true
}

// Camera returns the camera state.
func (w *World) Camera() Camera {
	return w.camera
}

// Enemies returns copies of the live enemies in arena order.
func (w *World) Enemies() []Enemy {
	out := make([]Enemy, 0, w.enemies.Len())
	w.enemies.Each(func(_ Handle, e *Enemy) {
		out = append(out, *e)
	})
	return out
}

// Pickups returns copies of the live pickups in arena order.
func (w *World) Pickups() []Pickup {
	out := make([]Pickup, 0, w.pickups.Len())
	w.pickups.Each(func(_ Handle, p *Pickup) {
		out = append(out, *p)
	})
	return out
}

// EnemyCount returns the number of live enemies.
func (w *World) EnemyCount() int { return w.enemies.Len() }

// ProjectileCount returns the number of live bullets and fragments.
func (w *World) ProjectileCount() int { return w.projectiles.Len() }

// PickupCount returns the number of live fuel canisters.
func (w *World) PickupCount() int { return w.pickups.Len() }

// FuelIconCount returns the number of fuel icons in the HUD row.
func (w *World) FuelIconCount() int { return w.fuelIcons.Len() }

// StarCount returns the number of score stars in the HUD row.
func (w *World) StarCount() int { return w.stars.Len() }

// Stats returns the counters of the current run.
func (w *World) Stats() Stats { return w.stats }

// Frame returns the number of frames stepped since creation.
func (w *World) Frame() uint64 { return w.frame }

// Tuning returns the tuning the world runs with.
func (w *World) Tuning() Tuning { return w.tuning }
