// Package core provides fundamental math types and utilities for the runner
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep simulation logic pure and testable.
package core

import "math"

// Vec3 is a point in corridor space.
// X is the lane axis, Y is vertical, Z is the forward axis.
// More negative Z is farther ahead of the player.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// DistXZ returns the distance between two points projected onto the
// ground plane (lane and forward axes, vertical ignored).
func (v Vec3) DistXZ(o Vec3) float64 {
	dx := v.X - o.X
	dz := v.Z - o.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Lerp interpolates from a toward b by t. t is clamped to [0, 1] so a
// large frame delta can never overshoot the target.
func Lerp(a, b, t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a + (b-a)*t
}

// IntervalsOverlap reports whether the closed intervals [aLo, aHi] and
// [bLo, bHi] intersect.
func IntervalsOverlap(aLo, aHi, bLo, bHi float64) bool {
	return aLo <= bHi && bLo <= aHi
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
