// Package camera implements the thin-lens depth-of-field camera that maps
// normalized image-plane coordinates to world-space rays.
package camera

import (
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// Camera projects rays from a thin lens through an image plane positioned
// at the focus distance. With LensRadius 0 it behaves as a pinhole camera.
type Camera struct {
	Origin      core.V3
	Forward     core.V3
	Up          core.V3
	Right       core.V3
	FOV         float64 // vertical field of view, radians
	AspectRatio float64
	FocusDist   float64
	LensRadius  float64
}

// NewCamera builds a Camera looking from `lookFrom` toward `lookAt`, with
// `vup` defining the up direction. fovDegrees is the vertical field of
// view; aperture and focusDist configure the thin lens (aperture 0 gives a
// pinhole camera, matching the original's default construction).
func NewCamera(lookFrom, lookAt, vup core.V3, fovDegrees, aspectRatio, aperture, focusDist float64) *Camera {
	forward := lookAt.Subtract(lookFrom).Normalize()
	right := forward.Cross(vup).Normalize()
	up := right.Cross(forward).Normalize()

	return &Camera{
		Origin:      lookFrom,
		Forward:     forward,
		Up:          up,
		Right:       right,
		FOV:         fovDegrees * math.Pi / 180,
		AspectRatio: aspectRatio,
		FocusDist:   focusDist,
		LensRadius:  aperture / 2,
	}
}

// imagePlaneDim returns the (width, height) of the image plane at unit
// distance from the camera, derived from the vertical FOV.
func (c *Camera) imagePlaneDim() (width, height float64) {
	height = 2 * math.Tan(c.FOV/2)
	width = height * c.AspectRatio
	return width, height
}

// GetRay generates a ray for normalized image coordinates (u, v) in
// [0, 1]x[0, 1], u increasing rightward and v increasing downward. When
// LensRadius is 0 every ray for a given (u, v) originates at Origin,
// giving a deterministic pinhole camera; otherwise the ray origin is
// jittered across the lens by sampler, producing the depth-of-field blur.
func (c *Camera) GetRay(u, v float64, sampler core.Sampler) core.Ray {
	width, height := c.imagePlaneDim()
	planeCenter := c.Origin.Add(c.Forward.Multiply(c.FocusDist))

	topLeft := planeCenter.
		Subtract(c.Right.Multiply(width / 2 * c.FocusDist)).
		Add(c.Up.Multiply(height / 2 * c.FocusDist))

	target := topLeft.
		Add(c.Right.Multiply(u * width * c.FocusDist)).
		Subtract(c.Up.Multiply(v * height * c.FocusDist))

	origin := c.Origin
	if c.LensRadius > 0 {
		lensPoint := sampler.InUnitDisk().Multiply(c.LensRadius)
		origin = origin.Add(c.Right.Multiply(lensPoint.X)).Add(c.Up.Multiply(lensPoint.Y))
	}

	return core.NewRay(origin, target.Subtract(origin))
}
