package geometry

import (
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

// Sphere is a static sphere: center + radius. Motion is layered on top of
// this by pkg/scene's SphereObject, which shifts the center by
// velocity*time before delegating to Sphere.Hit.
type Sphere struct {
	Center core.V3
	Radius float64
	Mat    material.Material
}

// NewSphere creates a Sphere. Radius must be > 0; callers constructing
// scenes should validate this before calling NewSphere, since a
// non-positive radius is a programmer error rather than a recoverable
// condition.
func NewSphere(center core.V3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Hit implements the analytic sphere intersection: with a normalized ray
// direction, a = 1, so the quadratic reduces to a simple b, c form. The
// nearer root greater than tMin is preferred; if it falls outside
// (tMin, tMax], the farther root is tried before giving up.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-b - sqrtD) / 2
	if root <= tMin || root > tMax {
		root = (-b + sqrtD) / 2
		if root <= tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	hit := &material.HitRecord{Point: point, T: root, Material: s.Mat}
	hit.SetFaceNormal(ray, outwardNormal)
	return hit, true
}

// BoundingBox returns the sphere's axis-aligned bounding box.
func (s *Sphere) BoundingBox() AABB {
	r := core.NewV3(s.Radius, s.Radius, s.Radius)
	return NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
