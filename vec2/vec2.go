// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package vec2 provides the 2D vector and scalar primitives needed by the
// narrowphase collision core: addition, subtraction, scalar multiplication,
// dot and 2D cross product, perpendicular rotation, length, normalization,
// and lerp.
//
// Vec2 is a type alias for mgl64.Vec2 so that every arithmetic method
// (Add, Sub, Mul, Dot, Len, ...) mathgl already provides is available
// directly; this package only adds the handful of 2D-specific operations
// mathgl does not.
package vec2

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used for near-zero-length comparisons.
const Epsilon = 1e-9

// Vec2 is an immutable 2D point or direction.
type Vec2 = mgl64.Vec2

// New creates a Vec2 from its components.
func New(x, y float64) Vec2 { return Vec2{x, y} }

// Cross returns the 2D (scalar) cross product of a and b: a.X*b.Y - a.Y*b.X.
// This is the Z component of the 3D cross product of (a,0) and (b,0).
func Cross(a, b Vec2) float64 { return a.X()*b.Y() - a.Y()*b.X() }

// Perp rotates v by +90 degrees: (x, y) -> (-y, x).
func Perp(v Vec2) Vec2 { return Vec2{-v.Y(), v.X()} }

// LenSqr returns the squared length of v, avoiding the square root.
func LenSqr(v Vec2) float64 { return v.Dot(v) }

// Unit returns v normalized to unit length. If v is the zero vector,
// (1, 0) is returned as the conventional tie-breaker used throughout the
// collision kernels.
func Unit(v Vec2) Vec2 {
	l := v.Len()
	if l < Epsilon {
		return Vec2{1, 0}
	}
	return v.Mul(1 / l)
}

// Lerp linearly interpolates between a and b by t, per component.
// t is not clamped; callers that need clamping should run t through Clamp01.
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Clamp01 clamps t to the closed interval [0, 1].
func Clamp01(t float64) float64 {
	return math.Min(math.Max(t, 0), 1)
}

// LerpScalar linearly interpolates between scalars a and b by t.
func LerpScalar(a, b, t float64) float64 {
	return a + (b-a)*t
}
