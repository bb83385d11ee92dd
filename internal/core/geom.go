// Package core provides the fundamental types shared by the simulation and
// the platform layer: vector math, timers, seeded randomness, input actions
// and the character screen buffer. It never imports Bubble Tea so game logic
// stays pure and testable.
package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is the world-space vector type. Positive Y points up.
type Vec2 = r2.Vec

// V is shorthand for building a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at theta radians.
func FromAngle(theta float64) Vec2 {
	return Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
}

// Angle returns the polar angle of v in (-π, π].
func Angle(v Vec2) float64 {
	return FixAngle(math.Atan2(v.Y, v.X), 0)
}

// Length returns the magnitude of v.
func Length(v Vec2) float64 {
	return r2.Norm(v)
}

// Normalize returns the unit vector colinear to v.
// The zero vector (or a vector with non-finite components) maps to the zero vector.
func Normalize(v Vec2) Vec2 {
	n := r2.Norm(v)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Vec2{}
	}
	return r2.Scale(1/n, v)
}

// ClampLength rescales v so its magnitude does not exceed limit.
// The direction is preserved.
func ClampLength(v Vec2, limit float64) Vec2 {
	n := r2.Norm(v)
	if n <= limit || n == 0 {
		return v
	}
	return r2.Scale(limit/n, v)
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// Lerp moves a toward b by fraction t.
func Lerp(a, b Vec2, t float64) Vec2 {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

// maxFixSteps bounds the ±2π loop in FixAngle. Differences larger than this
// many turns are first reduced with math.Remainder.
const maxFixSteps = 32

// FixAngle brings angle into (ref-π, ref+π] by repeated ±2π steps, so the two
// values can be compared without ambiguity at the ±π seam.
// Non-finite inputs are returned unchanged.
func FixAngle(angle, ref float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) || math.IsNaN(ref) || math.IsInf(ref, 0) {
		return angle
	}
	if math.Abs(angle-ref) > maxFixSteps*2*math.Pi {
		angle = ref + math.Remainder(angle-ref, 2*math.Pi)
	}
	for angle-ref > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle-ref <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// WrapAround shifts value by whole multiples of extent until it lies within
// half an extent of ref. Used to recycle background markers around the camera.
func WrapAround(value, ref, extent float64) float64 {
	if extent <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	half := extent / 2
	if math.Abs(value-ref) > maxFixSteps*extent {
		value = ref + math.Remainder(value-ref, extent)
	}
	for value-ref > half {
		value -= extent
	}
	for value-ref < -half {
		value += extent
	}
	return value
}

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
