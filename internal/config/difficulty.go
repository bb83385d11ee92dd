package config

import "math"

// Progression kinds accepted in difficulty.progression.type.
const (
	ProgressionScore = "score"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// Progress is how far a run has come, as the difficulty curve sees it.
type Progress struct {
	Score  int
	Frames int
}

// DifficultyManager turns run progress into a 0..1 level and scales the
// enemy speed limit with it.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, floor: unit(cfg.InitialLevel)}
}

// SetEnabled switches progression on or off. A disabled manager stays at the
// initial level.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves with progress.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level maps progress onto [initial_level, 1].
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.floor
	}

	var reached int
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		reached = p.Score
	case ProgressionTime:
		reached = p.Frames
	default:
		return d.floor
	}

	maxAt := max(d.cfg.Progression.MaxAt, 1)
	t := unit(float64(reached) / float64(maxAt))
	return d.floor + t*(1-d.floor)
}

// EnemyMaxSpeed scales base up to base*(1+speed_multiplier) at full difficulty.
func (d *DifficultyManager) EnemyMaxSpeed(base float64, p Progress) float64 {
	return base * (1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
