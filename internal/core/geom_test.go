package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNormalizeZeroVector(t *testing.T) {
	got := Normalize(Vec2{})
	if got.X != 0 || got.Y != 0 {
		t.Errorf("Normalize(0) = %v, expected zero vector", got)
	}

	got = Normalize(V(math.NaN(), 1))
	if got.X != 0 || got.Y != 0 {
		t.Errorf("Normalize(NaN) = %v, expected zero vector", got)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	tests := []Vec2{V(3, 4), V(-1, 0), V(0, -7), V(1e-3, 2e-3)}
	for _, v := range tests {
		n := Normalize(v)
		if !almostEqual(Length(n), 1, epsilon) {
			t.Errorf("|Normalize(%v)| = %f, expected 1", v, Length(n))
		}
	}
}

func TestClampLength(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		limit float64
	}{
		{"axis aligned", V(300, 0), 145},
		{"diagonal", V(-200, 200), 145},
		{"tiny overshoot", V(145.0001, 0), 145},
		{"steep", V(1, -900), 150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClampLength(tc.v, tc.limit)
			if !almostEqual(Length(got), tc.limit, 1e-6) {
				t.Errorf("|ClampLength| = %f, expected %f", Length(got), tc.limit)
			}
			before := Normalize(tc.v)
			after := Normalize(got)
			if !almostEqual(before.X, after.X, 1e-9) || !almostEqual(before.Y, after.Y, 1e-9) {
				t.Errorf("direction changed: %v -> %v", before, after)
			}
		})
	}

	under := V(3, 4)
	if got := ClampLength(under, 10); got != under {
		t.Errorf("ClampLength should not touch %v, got %v", under, got)
	}
	if got := ClampLength(Vec2{}, 0); got.X != 0 || got.Y != 0 {
		t.Errorf("ClampLength(0, 0) = %v", got)
	}
}

func TestFixAngleRangeAndIdempotence(t *testing.T) {
	angles := []float64{0, math.Pi, -math.Pi, 3 * math.Pi, -7.5, 12.25, 1000, -1000, 1e9}
	refs := []float64{0, 1, -2.5, math.Pi, 40}

	for _, a := range angles {
		for _, ref := range refs {
			once := FixAngle(a, ref)
			if once-ref > math.Pi+1e-9 || once-ref <= -math.Pi {
				t.Errorf("FixAngle(%f, %f) = %f outside reference window", a, ref, once)
			}
			twice := FixAngle(once, ref)
			if twice != once {
				t.Errorf("FixAngle not idempotent for (%f, %f): %f then %f", a, ref, once, twice)
			}
			if !almostEqual(math.Sin(once), math.Sin(a), 1e-6) || !almostEqual(math.Cos(once), math.Cos(a), 1e-6) {
				t.Errorf("FixAngle(%f, %f) = %f is not the same direction", a, ref, once)
			}
		}
	}
}

func TestFixAngleSeam(t *testing.T) {
	if got := FixAngle(-math.Pi, 0); got != math.Pi {
		t.Errorf("FixAngle(-π, 0) = %f, want π", got)
	}
	for _, ref := range []float64{0, 1, -2} {
		for _, a := range []float64{ref - math.Pi, ref + math.Pi} {
			got := FixAngle(a, ref)
			if d := got - ref; d <= -math.Pi || d > math.Pi {
				t.Errorf("FixAngle(%f, %f) = %f outside (ref-π, ref+π]", a, ref, got)
			}
		}
	}
}

func TestFixAngleNonFinite(t *testing.T) {
	if got := FixAngle(math.Inf(1), 0); !math.IsInf(got, 1) {
		t.Errorf("FixAngle(+Inf) = %f", got)
	}
	if got := FixAngle(1, math.NaN()); got != 1 {
		t.Errorf("FixAngle(1, NaN) = %f, expected input back", got)
	}
}

func TestWrapAround(t *testing.T) {
	tests := []struct {
		value, ref, extent, expected float64
	}{
		{0, 0, 320, 0},
		{170, 0, 320, -150},
		{-170, 0, 320, 150},
		{1000, 0, 320, 40},
		{5, 1000, 320, 965},
		{160, 0, 320, 160},
	}

	for _, tc := range tests {
		got := WrapAround(tc.value, tc.ref, tc.extent)
		if !almostEqual(got, tc.expected, 1e-9) {
			t.Errorf("WrapAround(%f, %f, %f) = %f, expected %f", tc.value, tc.ref, tc.extent, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	got := Lerp(V(0, 0), V(10, -20), 0.45)
	if !almostEqual(got.X, 4.5, epsilon) || !almostEqual(got.Y, -9, epsilon) {
		t.Errorf("Lerp = %v, expected (4.5, -9)", got)
	}
}

func TestAngleNegativeXAxis(t *testing.T) {
	for _, v := range []Vec2{V(-1, 0), {X: -1, Y: math.Copysign(0, -1)}} {
		if got := Angle(v); got != math.Pi {
			t.Errorf("Angle(%v) = %f, want π", v, got)
		}
	}
}

func TestAngleRoundTrip(t *testing.T) {
	for _, theta := range []float64{0, 0.5, -2, 3} {
		if got := Angle(FromAngle(theta)); !almostEqual(got, theta, 1e-9) {
			t.Errorf("Angle(FromAngle(%f)) = %f", theta, got)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f", got)
	}
}
