package core

// V4 is a 4-component RGBA color, used for the final per-pixel accumulation
// and for the image buffer the encoder consumes.
type V4 struct {
	R, G, B, A float64
}

// NewV4 creates a new V4.
func NewV4(r, g, b, a float64) V4 {
	return V4{R: r, G: g, B: b, A: a}
}

// Add returns the component-wise sum of two colors.
func (v V4) Add(o V4) V4 {
	return V4{v.R + o.R, v.G + o.G, v.B + o.B, v.A + o.A}
}

// Multiply returns the color scaled by a scalar.
func (v V4) Multiply(s float64) V4 {
	return V4{v.R * s, v.G * s, v.B * s, v.A * s}
}

// MultiplyVec returns the Hadamard (component-wise) product of two colors.
func (v V4) MultiplyVec(o V4) V4 {
	return V4{v.R * o.R, v.G * o.G, v.B * o.B, v.A * o.A}
}

// Clamp returns the color with each channel clamped to [lo, hi].
func (v V4) Clamp(lo, hi float64) V4 {
	clamp := func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
	return V4{clamp(v.R), clamp(v.G), clamp(v.B), clamp(v.A)}
}

// FromV3 builds an opaque V4 (alpha = 1) from a V3 color.
func FromV3(v V3) V4 {
	return V4{R: v.X, G: v.Y, B: v.Z, A: 1.0}
}

// V3 drops the alpha channel, returning the RGB as a V3.
func (v V4) V3() V3 {
	return V3{X: v.R, Y: v.G, Z: v.B}
}

// White and Black are common color constants used by the sky gradient and
// absorption results.
var (
	White = NewV4(1, 1, 1, 1)
	Black = NewV4(0, 0, 0, 1)
)
