package core

import (
	"math"
	"math/rand"
	"time"
)

// RNG is the single seeded random source of a simulation.
// Every random draw goes through it so a seed fully determines a run.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a generator seeded with seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a value in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Range returns a value uniformly drawn from [lo, hi).
func (g *RNG) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Float64()*(hi-lo)
}

// IntN returns a value in [0, n). Returns 0 when n <= 0.
func (g *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.Intn(n)
}

// Angle returns an angle drawn uniformly from the full circle.
func (g *RNG) Angle() float64 {
	return g.Range(0, 2*math.Pi)
}

// Direction returns a unit vector pointing in a random direction.
func (g *RNG) Direction() Vec2 {
	return FromAngle(g.Angle())
}

// Offset returns a vector of the given magnitude in a random direction.
func (g *RNG) Offset(magnitude float64) Vec2 {
	d := g.Direction()
	return V(d.X*magnitude, d.Y*magnitude)
}

// Duration returns a duration drawn uniformly from [lo, hi).
func (g *RNG) Duration(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(g.r.Int63n(int64(hi-lo)))
}
