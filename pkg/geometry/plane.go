package geometry

import (
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

// Plane is an infinite plane defined by a unit normal and an offset such
// that points p on the plane satisfy dot(p, Normal) = Offset. Planes are
// always static and are never placed in the BVH; the integrator tests
// them with a separate linear scan.
type Plane struct {
	Normal core.V3
	Offset float64
	Mat    material.Material
}

// NewPlane creates a Plane. Normal must already be unit length; NewPlane
// normalizes defensively so a slightly denormalized caller-provided
// normal doesn't silently break the intersection math.
func NewPlane(normal core.V3, offset float64, mat material.Material) *Plane {
	return &Plane{Normal: normal.Normalize(), Offset: offset, Mat: mat}
}

// Hit computes t = (offset - dot(normal, origin)) / dot(dir, normal); a
// zero (or near-zero) denominator means the ray is parallel to the
// plane, which is a miss, not a divide-by-zero fault.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := (p.Offset - ray.Origin.Dot(p.Normal)) / denom
	if t <= tMin || t > tMax {
		return nil, false
	}

	hit := &material.HitRecord{Point: ray.At(t), T: t, Material: p.Mat}
	hit.SetFaceNormal(ray, p.Normal)
	return hit, true
}

// BoundingBox returns a very large (but finite) box, since an infinite
// plane has no tight bounds and is excluded from the BVH entirely.
func (p *Plane) BoundingBox() AABB {
	const big = 1e7
	return NewAABB(core.NewV3(-big, -big, -big), core.NewV3(big, big, big))
}
