// Package core provides the opaque vector/color algebra and ray primitives
// that the rest of the tracer builds on, plus the per-worker random sampler.
package core

import (
	"fmt"
	"math"
)

// V3 is a 3-component float64 vector, used both for positions/directions and
// for linear-space RGB color.
type V3 struct {
	X, Y, Z float64
}

// NewV3 creates a new V3.
func NewV3(x, y, z float64) V3 {
	return V3{X: x, Y: y, Z: z}
}

func (v V3) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

// Add returns the component-wise sum of two vectors.
func (v V3) Add(o V3) V3 { return V3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Subtract returns the component-wise difference of two vectors.
func (v V3) Subtract(o V3) V3 { return V3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Multiply returns the vector scaled by a scalar.
func (v V3) Multiply(s float64) V3 { return V3{v.X * s, v.Y * s, v.Z * s} }

// Negate returns the vector pointing in the opposite direction.
func (v V3) Negate() V3 { return V3{-v.X, -v.Y, -v.Z} }

// MultiplyVec returns the Hadamard (component-wise) product of two vectors.
func (v V3) MultiplyVec(o V3) V3 { return V3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Dot returns the dot product of two vectors.
func (v V3) Dot(o V3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v V3) Cross(o V3) V3 {
	return V3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of the vector.
func (v V3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// LengthSquared returns the squared Euclidean length of the vector, avoiding
// the sqrt when only comparison is needed.
func (v V3) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Normalize returns a unit-length vector in the same direction. The zero
// vector normalizes to itself.
func (v V3) Normalize() V3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Multiply(1.0 / length)
}

// NearZero reports whether every component's magnitude is below a small
// epsilon, used to detect degenerate scatter directions.
func (v V3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Clamp returns the vector with each component clamped to [lo, hi].
func (v V3) Clamp(lo, hi float64) V3 {
	clamp := func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
	return V3{clamp(v.X), clamp(v.Y), clamp(v.Z)}
}

// Lerp linearly interpolates between v and o by t in [0, 1].
func (v V3) Lerp(o V3, t float64) V3 {
	return v.Multiply(1 - t).Add(o.Multiply(t))
}
