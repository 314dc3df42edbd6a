package geometry

import (
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

// Quad is a parallelogram defined by one corner and two edge vectors. It is
// a static, passive primitive (no emission) supplementing the sphere/plane
// core per SPEC_FULL.md §4.
type Quad struct {
	Corner core.V3
	U, V   core.V3
	Normal core.V3
	Mat    material.Material

	d float64 // plane constant: dot(normal, corner)
	w core.V3 // cached for the barycentric-style in-quad test
}

// NewQuad creates a Quad from a corner and two edge vectors.
func NewQuad(corner, u, v core.V3, mat material.Material) *Quad {
	normal := u.Cross(v).Normalize()
	cross := u.Cross(v)
	return &Quad{
		Corner: corner,
		U:      u,
		V:      v,
		Normal: normal,
		Mat:    mat,
		d:      normal.Dot(corner),
		w:      normal.Multiply(1.0 / normal.Dot(cross)),
	}
}

// Hit intersects the quad's plane, then rejects points outside the
// parallelogram using the cached w vector's projection onto each edge.
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denom := ray.Direction.Dot(q.Normal)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denom
	if t <= tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	fromCorner := point.Subtract(q.Corner)

	alpha := q.w.Dot(fromCorner.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(fromCorner))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &material.HitRecord{Point: point, T: t, Material: q.Mat}
	hit.SetFaceNormal(ray, q.Normal)
	return hit, true
}

// BoundingBox returns the AABB enclosing all four corners of the quad.
func (q *Quad) BoundingBox() AABB {
	c0 := q.Corner
	c1 := q.Corner.Add(q.U)
	c2 := q.Corner.Add(q.V)
	c3 := q.Corner.Add(q.U).Add(q.V)
	return NewAABBFromPoints(c0, c1, c2, c3)
}
