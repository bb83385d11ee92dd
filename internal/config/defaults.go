package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/fuelrun.yaml
var defaultFuelRunYAML []byte

// DefaultFuelRunConfig returns the default Fuel Run configuration.
// It mirrors defaults/fuelrun.yaml.
func DefaultFuelRunConfig() FuelRunConfig {
	return FuelRunConfig{
		Player: PlayerConfig{
			RotationSpeed:       7,
			BoostAcceleration:   11,
			PassiveAcceleration: 5,
			MaxSpeed:            145,
			Drag:                0.998,
			StartingAmmo:        100,
			ContactRadius:       6,
		},
		Gun: GunConfig{
			Mode:       "aimed",
			Cooldown:   50 * time.Millisecond,
			BurstCount: 10,
		},
		Bullets: BulletConfig{
			Speed:      70,
			Spread:     30,
			Lifetime:   1500 * time.Millisecond,
			Radius:     1.5,
			CullRadius: 80,
		},
		Fragments: FragmentConfig{
			RadiusMin:   1.0,
			RadiusMax:   2.5,
			LifetimeMin: 50 * time.Millisecond,
			LifetimeMax: 250 * time.Millisecond,
			SpeedMin:    20,
			SpeedMax:    90,
		},
		Enemies: EnemyConfig{
			Acceleration:  8,
			MaxSpeed:      150,
			RotationSpeed: 4,
		},
		Spawner: SpawnerConfig{
			Initial:   3 * time.Second,
			Decay:     0.9,
			Threshold: 500 * time.Millisecond,
			Slow:      time.Second,
			Radius:    320,
		},
		Combat: CombatConfig{
			ContactRadius:      4,
			ExplosionFragments: 45,
			ExplosionShake:     4,
		},
		Pickups: PickupConfig{
			Delay:        time.Second,
			FrameTime:    200 * time.Millisecond,
			Frames:       9,
			CollectSpeed: 0.45,
			Radius:       4,
			Refill:       60,
		},
		Target: TargetConfig{
			Enabled:       true,
			Radius:        24,
			AngleMin:      1.0,
			AngleMax:      2.5,
			DistanceMin:   50,
			DistanceMax:   450,
			MaxScore:      35,
			ArrowDistance: 20,
			StarFrames:    8,
			TwinkleMin:    170 * time.Millisecond,
			TwinkleMax:    230 * time.Millisecond,
		},
		Camera: CameraConfig{
			FollowSpeed: 0.95,
			Lookahead:   170,
			ShakeDecay:  0.9,
			ShakeFloor:  0.1,
		},
		Canvas: CanvasConfig{
			Width:       320,
			Height:      180,
			DotDistance: 10,
			HUDSpacing:  9,
			HUDMargin:   8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "fuelrun", "fuelrun_scatter":
		return defaultFuelRunYAML
	default:
		return nil
	}
}
