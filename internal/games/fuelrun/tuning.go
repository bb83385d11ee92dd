package fuelrun

import (
	"github.com/vovakirdan/fuelrun/internal/config"
	"github.com/vovakirdan/fuelrun/internal/games/fuelrun/sim"
)

// TuningFromConfig converts a loaded configuration into simulation tuning.
func TuningFromConfig(cfg config.FuelRunConfig) sim.Tuning {
	mode := sim.FireAimed
	if cfg.Gun.Mode == "burst" {
		mode = sim.FireBurst
	}

	return sim.Tuning{
		RotationSpeed:       cfg.Player.RotationSpeed,
		BoostAcceleration:   cfg.Player.BoostAcceleration,
		PassiveAcceleration: cfg.Player.PassiveAcceleration,
		MaxSpeed:            cfg.Player.MaxSpeed,
		Drag:                cfg.Player.Drag,
		SteerOnly:           cfg.Player.SteerOnly,
		StartingAmmo:        cfg.Player.StartingAmmo,
		PlayerContactRadius: cfg.Player.ContactRadius,
		RespawnOnDeath:      cfg.Player.RespawnOnDeath,

		FireMode:      mode,
		GunCooldown:   cfg.Gun.Cooldown,
		GunBurstCount: cfg.Gun.BurstCount,

		BulletSpeed:    cfg.Bullets.Speed,
		BulletSpread:   cfg.Bullets.Spread,
		BulletLifetime: cfg.Bullets.Lifetime,
		BulletRadius:   cfg.Bullets.Radius,
		CullRadius:     cfg.Bullets.CullRadius,

		FragmentRadiusMin:   cfg.Fragments.RadiusMin,
		FragmentRadiusMax:   cfg.Fragments.RadiusMax,
		FragmentLifetimeMin: cfg.Fragments.LifetimeMin,
		FragmentLifetimeMax: cfg.Fragments.LifetimeMax,
		FragmentSpeedMin:    cfg.Fragments.SpeedMin,
		FragmentSpeedMax:    cfg.Fragments.SpeedMax,

		EnemyAcceleration:  cfg.Enemies.Acceleration,
		EnemyMaxSpeed:      cfg.Enemies.MaxSpeed,
		EnemyRotationSpeed: cfg.Enemies.RotationSpeed,

		SpawnInitial:   cfg.Spawner.Initial,
		SpawnDecay:     cfg.Spawner.Decay,
		SpawnThreshold: cfg.Spawner.Threshold,
		SpawnSlow:      cfg.Spawner.Slow,
		SpawnRadius:    cfg.Spawner.Radius,

		ContactRadius:      cfg.Combat.ContactRadius,
		ExplosionFragments: cfg.Combat.ExplosionFragments,
		ExplosionShake:     cfg.Combat.ExplosionShake,

		PickupDelay:        cfg.Pickups.Delay,
		PickupFrameTime:    cfg.Pickups.FrameTime,
		PickupFrames:       cfg.Pickups.Frames,
		PickupCollectSpeed: cfg.Pickups.CollectSpeed,
		PickupRadius:       cfg.Pickups.Radius,
		RefillAmount:       cfg.Pickups.Refill,

		TargetEnabled:   cfg.Target.Enabled,
		TargetRadius:    cfg.Target.Radius,
		TargetAngleMin:  cfg.Target.AngleMin,
		TargetAngleMax:  cfg.Target.AngleMax,
		TargetRadiusMin: cfg.Target.DistanceMin,
		TargetRadiusMax: cfg.Target.DistanceMax,
		MaxScore:        cfg.Target.MaxScore,
		ArrowDistance:   cfg.Target.ArrowDistance,
		StarFrames:      cfg.Target.StarFrames,
		StarTwinkleMin:  cfg.Target.TwinkleMin,
		StarTwinkleMax:  cfg.Target.TwinkleMax,

		FollowSpeed:       cfg.Camera.FollowSpeed,
		LookaheadDistance: cfg.Camera.Lookahead,
		ShakeDecay:        cfg.Camera.ShakeDecay,
		ShakeFloor:        cfg.Camera.ShakeFloor,

		Width:       cfg.Canvas.Width,
		Height:      cfg.Canvas.Height,
		DotDistance: cfg.Canvas.DotDistance,
		HUDSpacing:  cfg.Canvas.HUDSpacing,
		HUDMargin:   cfg.Canvas.HUDMargin,
	}
}
