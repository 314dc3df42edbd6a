package geometry

import (
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

// Disc is a circular disc: a center, a unit normal and a radius. It is
// static and participates in the BVH alongside Sphere and Quad.
type Disc struct {
	Center core.V3
	Normal core.V3
	Radius float64
	Mat    material.Material

	right core.V3
	up    core.V3
}

// NewDisc creates a Disc, deriving an orthonormal right/up basis from the
// normal so BoundingBox can find the disc's axis-aligned extent.
func NewDisc(center, normal core.V3, radius float64, mat material.Material) *Disc {
	n := normal.Normalize()

	var seed core.V3
	if math.Abs(n.X) > 0.1 {
		seed = core.NewV3(0, 1, 0)
	} else {
		seed = core.NewV3(1, 0, 0)
	}

	right := seed.Cross(n).Normalize()
	up := n.Cross(right).Normalize()

	return &Disc{Center: center, Normal: n, Radius: radius, Mat: mat, right: right, up: up}
}

// Hit intersects the disc's plane, then rejects points beyond the radius.
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t <= tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	if point.Subtract(d.Center).LengthSquared() > d.Radius*d.Radius {
		return nil, false
	}

	hit := &material.HitRecord{Point: point, T: t, Material: d.Mat}
	hit.SetFaceNormal(ray, d.Normal)
	return hit, true
}

// BoundingBox returns the AABB of the four corners of the square that
// circumscribes the disc in its right/up basis.
func (d *Disc) BoundingBox() AABB {
	rightExtent := d.right.Multiply(d.Radius)
	upExtent := d.up.Multiply(d.Radius)

	c1 := d.Center.Add(rightExtent).Add(upExtent)
	c2 := d.Center.Add(rightExtent).Subtract(upExtent)
	c3 := d.Center.Subtract(rightExtent).Add(upExtent)
	c4 := d.Center.Subtract(rightExtent).Subtract(upExtent)

	return NewAABBFromPoints(c1, c2, c3, c4)
}
