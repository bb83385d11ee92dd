package sim

import (
	"math"
	"time"
)

// Snapshot is a flat copy of the observable world state, used to compare
// runs for determinism.
type Snapshot struct {
	Frame uint64

	PlayerAlive bool
	PlayerData  []float64 // X, Y, VX, VY, Facing
	Ammo        uint32
	Score       uint32

	CameraX float64
	CameraY float64
	Shake   float64

	SpawnInterval time.Duration
	EnemyMaxSpeed float64

	// Each enemy is 5 floats: X, Y, VX, VY, Facing
	EnemyData []float64
	// Each projectile is 6 floats: X, Y, VX, VY, Radius, Kind
	ProjectileData []float64
	// Each pickup is 3 floats: X, Y, Frame
	PickupData []float64

	TargetX float64
	TargetY float64

	FuelIcons int
	Stars     int
	Stats     Stats
}

// Snapshot captures the current state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:         w.frame,
		CameraX:       w.camera.Position.X,
		CameraY:       w.camera.Position.Y,
		Shake:         w.camera.Shake,
		EnemyMaxSpeed: w.enemyMaxSpeed,
		FuelIcons:     w.fuelIcons.Len(),
		Stars:         w.stars.Len(),
		Stats:         w.stats,
	}

	if p, ok := w.alivePlayer(); ok {
		snap.PlayerAlive = true
		snap.PlayerData = []float64{p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.Facing}
		snap.Ammo = p.Ammo
		snap.Score = p.Score
	}
	if w.spawner != nil {
		snap.SpawnInterval = w.spawner.Timer.Duration()
	}
	if tg, ok := w.Target(); ok {
		snap.TargetX, snap.TargetY = tg.Position.X, tg.Position.Y
	}

	w.enemies.Each(func(_ Handle, e *Enemy) {
		snap.EnemyData = append(snap.EnemyData, e.Position.X, e.Position.Y, e.Velocity.X, e.Velocity.Y, e.Facing)
	})
	w.projectiles.Each(func(_ Handle, pr *Projectile) {
		snap.ProjectileData = append(snap.ProjectileData,
			pr.Position.X, pr.Position.Y, pr.Velocity.X, pr.Velocity.Y, pr.Radius, float64(pr.Kind))
	})
	w.pickups.Each(func(_ Handle, c *Pickup) {
		snap.PickupData = append(snap.PickupData, c.Position.X, c.Position.Y, float64(c.Frame))
	})

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(v float64) { mix(math.Float64bits(v)) }

	if snap.PlayerAlive {
		mix(1)
	}
	for _, v := range snap.PlayerData {
		mixF(v)
	}
	mix(uint64(snap.Ammo))
	mix(uint64(snap.Score))
	mixF(snap.CameraX)
	mixF(snap.CameraY)
	mixF(snap.Shake)
	mix(uint64(snap.SpawnInterval)) //#nosec G115 -- hash computation
	mixF(snap.EnemyMaxSpeed)

	for _, v := range snap.EnemyData {
		mixF(v)
	}
	for _, v := range snap.ProjectileData {
		mixF(v)
	}
	for _, v := range snap.PickupData {
		mixF(v)
	}

	mixF(snap.TargetX)
	mixF(snap.TargetY)
	for _, v := range []int{snap.FuelIcons, snap.Stars, snap.Stats.Kills, snap.Stats.Shots, snap.Stats.TargetsReached} {
		mix(uint64(v)) //#nosec G115 -- hash computation
	}

	return h
}
