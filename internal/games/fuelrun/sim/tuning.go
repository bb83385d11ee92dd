package sim

import (
	"math"
	"time"
)

// FireMode selects what the player's gun emits.
type FireMode int

const (
	FireAimed FireMode = iota // One bullet per shot
	FireBurst                 // A small fan of fragments per shot
)

// Tuning holds every constant the simulation reads. Distances are world
// units, speeds are units per second unless noted.
type Tuning struct {
	// Player
	RotationSpeed       float64 // radians per second
	BoostAcceleration   float64 // velocity impulse per shot
	PassiveAcceleration float64 // velocity added per frame along facing
	MaxSpeed            float64
	Drag                float64 // per-frame velocity multiplier
	SteerOnly           bool    // passive thrust turns velocity without adding speed
	StartingAmmo        uint32
	PlayerContactRadius float64 // enemy contact distance that kills the player, 0 disables
	RespawnOnDeath      bool

	// Gun
	FireMode      FireMode
	GunCooldown   time.Duration
	GunBurstCount int

	// Aimed bullets
	BulletSpeed    float64
	BulletSpread   float64
	BulletLifetime time.Duration
	BulletRadius   float64
	CullRadius     float64

	// Fragments
	FragmentRadiusMin   float64
	FragmentRadiusMax   float64
	FragmentLifetimeMin time.Duration
	FragmentLifetimeMax time.Duration
	FragmentSpeedMin    float64
	FragmentSpeedMax    float64

	// Enemies
	EnemyAcceleration  float64 // velocity added per frame along facing
	EnemyMaxSpeed      float64
	EnemyRotationSpeed float64 // radians per second

	// Spawner
	SpawnInitial   time.Duration
	SpawnDecay     float64
	SpawnThreshold time.Duration
	SpawnSlow      time.Duration
	SpawnRadius    float64

	// Combat
	ContactRadius      float64
	ExplosionFragments int
	ExplosionShake     float64

	// Pickups
	PickupDelay        time.Duration
	PickupFrameTime    time.Duration
	PickupFrames       int
	PickupCollectSpeed float64 // per-frame lerp factor once homing
	PickupRadius       float64
	RefillAmount       uint32

	// Target
	TargetEnabled   bool
	TargetRadius    float64
	TargetAngleMin  float64
	TargetAngleMax  float64
	TargetRadiusMin float64
	TargetRadiusMax float64
	MaxScore        uint32
	ArrowDistance   float64
	StarFrames      int
	StarTwinkleMin  time.Duration
	StarTwinkleMax  time.Duration

	// Camera
	FollowSpeed       float64
	LookaheadDistance float64
	ShakeDecay        float64
	ShakeFloor        float64

	// Canvas
	Width       float64
	Height      float64
	DotDistance float64
	HUDSpacing  float64
	HUDMargin   float64
}

// DefaultTuning returns the tuning of the standard aimed-gun game.
func DefaultTuning() Tuning {
	return Tuning{
		RotationSpeed:       7,
		BoostAcceleration:   11,
		PassiveAcceleration: 5,
		MaxSpeed:            145,
		Drag:                0.998,
		StartingAmmo:        100,
		PlayerContactRadius: 6,

		FireMode:      FireAimed,
		GunCooldown:   50 * time.Millisecond,
		GunBurstCount: 10,

		BulletSpeed:    70,
		BulletSpread:   30,
		BulletLifetime: 1500 * time.Millisecond,
		BulletRadius:   1.5,
		CullRadius:     80,

		FragmentRadiusMin:   1.0,
		FragmentRadiusMax:   2.5,
		FragmentLifetimeMin: 50 * time.Millisecond,
		FragmentLifetimeMax: 250 * time.Millisecond,
		FragmentSpeedMin:    20,
		FragmentSpeedMax:    90,

		EnemyAcceleration:  8,
		EnemyMaxSpeed:      150,
		EnemyRotationSpeed: 4,

		SpawnInitial:   3 * time.Second,
		SpawnDecay:     0.9,
		SpawnThreshold: 500 * time.Millisecond,
		SpawnSlow:      time.Second,
		SpawnRadius:    320,

		ContactRadius:      4,
		ExplosionFragments: 45,
		ExplosionShake:     4,

		PickupDelay:        time.Second,
		PickupFrameTime:    200 * time.Millisecond,
		PickupFrames:       9,
		PickupCollectSpeed: 0.45,
		PickupRadius:       4,
		RefillAmount:       60,

		TargetEnabled:   true,
		TargetRadius:    24,
		TargetAngleMin:  1.0,
		TargetAngleMax:  2.5,
		TargetRadiusMin: 50,
		TargetRadiusMax: 450,
		MaxScore:        35,
		ArrowDistance:   20,
		StarFrames:      8,
		StarTwinkleMin:  170 * time.Millisecond,
		StarTwinkleMax:  230 * time.Millisecond,

		FollowSpeed:       0.95,
		LookaheadDistance: 170,
		ShakeDecay:        0.9,
		ShakeFloor:        0.1,

		Width:       320,
		Height:      180,
		DotDistance: 10,
		HUDSpacing:  9,
		HUDMargin:   8,
	}
}

// ScatterTuning returns the tuning of the burst-gun variant.
func ScatterTuning() Tuning {
	t := DefaultTuning()
	t.FireMode = FireBurst
	return t
}

// sanitize replaces values that would break the frame loop with safe ones.
func (t Tuning) sanitize() Tuning {
	if t.PickupFrames <= 0 {
		t.PickupFrames = 1
	}
	if t.StarFrames <= 0 {
		t.StarFrames = 1
	}
	if t.RefillAmount == 0 {
		t.RefillAmount = 1
	}
	if t.MaxSpeed <= 0 || math.IsNaN(t.MaxSpeed) {
		t.MaxSpeed = 1
	}
	if t.GunBurstCount <= 0 {
		t.GunBurstCount = 1
	}
	if t.SpawnSlow <= 0 {
		t.SpawnSlow = time.Second
	}
	return t
}
