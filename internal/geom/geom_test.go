package geom

import (
	"math"
	"math/rand"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"midpoint", 0, 10, 0.5, 5},
		{"no movement", 3, 7, 0, 3},
		{"full movement", 3, 7, 1, 7},
		{"typical ease factor", 0, 100, 0.15, 15},
		{"negative direction", 10, 0, 0.5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Lerp(tc.a, tc.b, tc.t)
			if math.Abs(result-tc.expected) > 1e-12 {
				t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tc.a, tc.b, tc.t, result, tc.expected)
			}
		})
	}
}

func TestLerpNeverOvershoots(t *testing.T) {
	// Repeated application with factor in (0,1] must converge without
	// crossing the target.
	pos := 0.0
	target := 100.0
	for i := 0; i < 200; i++ {
		pos = Lerp(pos, target, 0.15)
		if pos > target {
			t.Fatalf("overshoot at iteration %d: %v > %v", i, pos, target)
		}
	}
	if math.Abs(pos-target) > 0.001 {
		t.Errorf("did not converge: %v", pos)
	}
}

func TestLerpVec(t *testing.T) {
	got := LerpVec(Vec2{0, 10}, Vec2{10, 0}, 0.5)
	if got.X != 5 || got.Y != 5 {
		t.Errorf("LerpVec = %+v, expected {5 5}", got)
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", Vec2{3, 4}, Vec2{3, 4}, 0},
		{"3-4-5 triangle", Vec2{0, 0}, Vec2{3, 4}, 5},
		{"horizontal", Vec2{-2, 0}, Vec2{2, 0}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Dist(tc.b); math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("Dist = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampVec(t *testing.T) {
	got := ClampVec(Vec2{-10, 700}, 20, 780, 20, 580)
	if got.X != 20 || got.Y != 580 {
		t.Errorf("ClampVec = %+v, expected {20 580}", got)
	}
}

func TestUniformRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		v := Uniform(rng, 10, 35)
		if v < 10 || v >= 35 {
			t.Fatalf("Uniform(10, 35) = %v out of range", v)
		}
	}
}

func TestVecArithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -4}

	if got := a.Add(b); got != (Vec2{4, -2}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{-2, 6}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{2, 4}) {
		t.Errorf("Scale = %+v", got)
	}
}
