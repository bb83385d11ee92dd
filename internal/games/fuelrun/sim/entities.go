package sim

import (
	"github.com/vovakirdan/fuelrun/internal/core"
)

// Player is the vehicle driven by input.
type Player struct {
	Position core.Vec2
	Velocity core.Vec2
	Facing   float64
	Ammo     uint32
	Gun      core.Timer
	Score    uint32 // targets reached, capped at Tuning.MaxScore
}

// Enemy steers toward the player and dies on any projectile contact.
type Enemy struct {
	Position core.Vec2
	Velocity core.Vec2
	Facing   float64
}

// ProjectileKind distinguishes gun bullets from burst fragments.
type ProjectileKind int

const (
	KindBullet ProjectileKind = iota
	KindFragment
)

// ColorClass is the weighted color bucket of a fragment.
type ColorClass int

const (
	ColorBullet ColorClass = iota
	ColorEmber
	ColorFlame
	ColorSpark
	ColorSmoke
)

// Projectile is a bullet or fragment. Both kill enemies on contact.
type Projectile struct {
	Position core.Vec2
	Velocity core.Vec2
	Facing   float64 // visual only
	Lifetime core.Timer
	Radius   float64
	Color    ColorClass
	Kind     ProjectileKind
}

// Pickup is a fuel canister dropped by a destroyed enemy.
type Pickup struct {
	Position core.Vec2
	Delay    core.Timer // grace period before homing starts
	Anim     core.Timer
	Frame    int
}

// Target is the roaming goal marker.
type Target struct {
	Position core.Vec2
}

// Icon is a HUD element anchored to the camera.
type Icon struct {
	Position core.Vec2
	Anim     core.Timer
	Frame    int
}

// Camera is the view singleton. It exists for the whole life of a World.
type Camera struct {
	Position core.Vec2
	Shake    float64
}

// Spawner paces enemy creation.
type Spawner struct {
	Timer   core.Timer
	Spawned int
}
