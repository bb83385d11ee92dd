// Package config provides YAML-based game configuration loading and
// difficulty management for Fuel Run.
package config

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnknownPreset is returned for difficulty names other than the four presets.
	ErrUnknownPreset = errors.New("config: unknown difficulty preset")
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// FuelRunConfig contains all configuration for Fuel Run.
type FuelRunConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Gun        GunConfig        `yaml:"gun"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Fragments  FragmentConfig   `yaml:"fragments"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Combat     CombatConfig     `yaml:"combat"`
	Pickups    PickupConfig     `yaml:"pickups"`
	Target     TargetConfig     `yaml:"target"`
	Camera     CameraConfig     `yaml:"camera"`
	Canvas     CanvasConfig     `yaml:"canvas"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player's vehicle.
type PlayerConfig struct {
	RotationSpeed       float64 `yaml:"rotation_speed"`       // Radians per second
	BoostAcceleration   float64 `yaml:"boost_acceleration"`   // Impulse per shot
	PassiveAcceleration float64 `yaml:"passive_acceleration"` // Added every frame
	MaxSpeed            float64 `yaml:"max_speed"`
	Drag                float64 `yaml:"drag"` // Per-frame velocity multiplier
	SteerOnly           bool    `yaml:"steer_only"`
	StartingAmmo        uint32  `yaml:"starting_ammo"`
	ContactRadius       float64 `yaml:"contact_radius"` // 0 disables enemy-contact death
	RespawnOnDeath      bool    `yaml:"respawn_on_death"`
}

// GunConfig defines the player's gun.
type GunConfig struct {
	Mode       string        `yaml:"mode"` // "aimed" or "burst"
	Cooldown   time.Duration `yaml:"cooldown"`
	BurstCount int           `yaml:"burst_count"`
}

// BulletConfig defines aimed bullets.
type BulletConfig struct {
	Speed      float64       `yaml:"speed"`
	Spread     float64       `yaml:"spread"`
	Lifetime   time.Duration `yaml:"lifetime"`
	Radius     float64       `yaml:"radius"`
	CullRadius float64       `yaml:"cull_radius"`
}

// FragmentConfig defines burst fragments.
type FragmentConfig struct {
	RadiusMin   float64       `yaml:"radius_min"`
	RadiusMax   float64       `yaml:"radius_max"`
	LifetimeMin time.Duration `yaml:"lifetime_min"`
	LifetimeMax time.Duration `yaml:"lifetime_max"`
	SpeedMin    float64       `yaml:"speed_min"`
	SpeedMax    float64       `yaml:"speed_max"`
}

// EnemyConfig defines enemy steering.
type EnemyConfig struct {
	Acceleration  float64 `yaml:"acceleration"`
	MaxSpeed      float64 `yaml:"max_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
}

// SpawnerConfig defines enemy spawn pacing.
type SpawnerConfig struct {
	Initial   time.Duration `yaml:"initial"`
	Decay     float64       `yaml:"decay"`
	Threshold time.Duration `yaml:"threshold"`
	Slow      time.Duration `yaml:"slow"`
	Radius    float64       `yaml:"radius"`
}

// CombatConfig defines hit detection and explosions.
type CombatConfig struct {
	ContactRadius      float64 `yaml:"contact_radius"`
	ExplosionFragments int     `yaml:"explosion_fragments"`
	ExplosionShake     float64 `yaml:"explosion_shake"`
}

// PickupConfig defines fuel canisters.
type PickupConfig struct {
	Delay        time.Duration `yaml:"delay"`
	FrameTime    time.Duration `yaml:"frame_time"`
	Frames       int           `yaml:"frames"`
	CollectSpeed float64       `yaml:"collect_speed"`
	Radius       float64       `yaml:"radius"`
	Refill       uint32        `yaml:"refill"`
}

// TargetConfig defines the roaming target.
type TargetConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Radius        float64       `yaml:"radius"`
	AngleMin      float64       `yaml:"angle_min"`
	AngleMax      float64       `yaml:"angle_max"`
	DistanceMin   float64       `yaml:"distance_min"`
	DistanceMax   float64       `yaml:"distance_max"`
	MaxScore      uint32        `yaml:"max_score"`
	ArrowDistance float64       `yaml:"arrow_distance"`
	StarFrames    int           `yaml:"star_frames"`
	TwinkleMin    time.Duration `yaml:"twinkle_min"`
	TwinkleMax    time.Duration `yaml:"twinkle_max"`
}

// CameraConfig defines camera follow and shake.
type CameraConfig struct {
	FollowSpeed float64 `yaml:"follow_speed"`
	Lookahead   float64 `yaml:"lookahead"`
	ShakeDecay  float64 `yaml:"shake_decay"`
	ShakeFloor  float64 `yaml:"shake_floor"`
}

// CanvasConfig defines the virtual resolution and HUD layout.
type CanvasConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	DotDistance float64 `yaml:"dot_distance"`
	HUDSpacing  float64 `yaml:"hud_spacing"`
	HUDMargin   float64 `yaml:"hud_margin"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate reports every out-of-range value, joined into one error.
func (c *FuelRunConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positiveDur := func(name string, d time.Duration) {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, d))
		}
	}
	fraction := func(name string, v float64, inclusiveTop bool) {
		top := ")"
		if inclusiveTop {
			top = "]"
		}
		if !(v > 0) || v > 1 || (!inclusiveTop && v == 1) {
			errs = append(errs, fmt.Errorf("%s must be in (0, 1%s, got %v", name, top, v))
		}
	}
	ordered := func(name string, lo, hi float64) {
		if lo > hi {
			errs = append(errs, fmt.Errorf("%s: min %v exceeds max %v", name, lo, hi))
		}
	}

	positive("player.max_speed", c.Player.MaxSpeed)
	fraction("player.drag", c.Player.Drag, true)
	positiveDur("gun.cooldown", c.Gun.Cooldown)
	if c.Gun.Mode != "aimed" && c.Gun.Mode != "burst" {
		errs = append(errs, fmt.Errorf("gun.mode must be aimed or burst, got %q", c.Gun.Mode))
	}
	if c.Gun.Mode == "burst" && c.Gun.BurstCount <= 0 {
		errs = append(errs, fmt.Errorf("gun.burst_count must be positive in burst mode, got %d", c.Gun.BurstCount))
	}
	positive("bullets.speed", c.Bullets.Speed)
	positiveDur("bullets.lifetime", c.Bullets.Lifetime)
	ordered("fragments.radius", c.Fragments.RadiusMin, c.Fragments.RadiusMax)
	ordered("fragments.speed", c.Fragments.SpeedMin, c.Fragments.SpeedMax)
	ordered("fragments.lifetime", float64(c.Fragments.LifetimeMin), float64(c.Fragments.LifetimeMax))
	positive("enemies.max_speed", c.Enemies.MaxSpeed)
	positiveDur("spawner.initial", c.Spawner.Initial)
	positiveDur("spawner.threshold", c.Spawner.Threshold)
	positiveDur("spawner.slow", c.Spawner.Slow)
	fraction("spawner.decay", c.Spawner.Decay, false)
	positive("combat.contact_radius", c.Combat.ContactRadius)
	if c.Combat.ExplosionFragments < 0 {
		errs = append(errs, fmt.Errorf("combat.explosion_fragments must not be negative, got %d", c.Combat.ExplosionFragments))
	}
	positiveDur("pickups.frame_time", c.Pickups.FrameTime)
	if c.Pickups.Frames <= 0 {
		errs = append(errs, fmt.Errorf("pickups.frames must be positive, got %d", c.Pickups.Frames))
	}
	if c.Pickups.Refill == 0 {
		errs = append(errs, errors.New("pickups.refill must be positive"))
	}
	fraction("pickups.collect_speed", c.Pickups.CollectSpeed, true)
	if c.Target.Enabled {
		positive("target.radius", c.Target.Radius)
		ordered("target.angle", c.Target.AngleMin, c.Target.AngleMax)
		ordered("target.distance", c.Target.DistanceMin, c.Target.DistanceMax)
	}
	fraction("camera.shake_decay", c.Camera.ShakeDecay, false)
	positive("canvas.width", c.Canvas.Width)
	positive("canvas.height", c.Canvas.Height)
	switch c.Difficulty.Progression.Type {
	case ProgressionScore, ProgressionTime, ProgressionNone:
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
