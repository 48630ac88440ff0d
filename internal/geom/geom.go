// Package geom provides the small vector and interpolation helpers the
// simulation is built on. It contains no external dependencies so the
// game logic stays pure and testable.
package geom

import (
	"math"
	"math/rand"
)

// Vec2 is a 2D point or displacement in surface units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dist returns the Euclidean distance between v and w.
func (v Vec2) Dist(w Vec2) float64 {
	return math.Hypot(v.X-w.X, v.Y-w.Y)
}

// Lerp moves a a fixed fraction t of the remaining distance toward b.
// For t in (0, 1] the result never overshoots b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec applies Lerp to each axis independently.
func LerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

// Clamp restricts a value to [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampVec clamps each axis of v to the rectangle [minX,maxX]×[minY,maxY].
func ClampVec(v Vec2, minX, maxX, minY, maxY float64) Vec2 {
	return Vec2{Clamp(v.X, minX, maxX), Clamp(v.Y, minY, maxY)}
}

// Uniform draws a value from [lo, hi) using the given RNG.
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
