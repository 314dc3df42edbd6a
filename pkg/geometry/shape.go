package geometry

import (
	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

// Shape is anything that can be intersected and bounded at a single,
// fixed point in time. Sphere, Plane, Quad and Disc all implement it;
// Plane is never placed in the BVH, but sharing the interface keeps one
// intersection contract for every primitive.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox() AABB
}

// TimeShape is what the BVH actually stores: something that can be
// intersected at an arbitrary ray time and whose bounds are known over a
// swept time interval. This is what lets a single BVH leaf represent a
// moving sphere without every static shape having to know about time at
// all.
type TimeShape interface {
	HitAt(ray core.Ray, tMin, tMax, time float64) (*material.HitRecord, bool)
	SweptBoundingBox(startTime, endTime float64) AABB
}

// Static adapts a time-invariant Shape (Quad, Disc, a non-moving Sphere)
// into a TimeShape: time is accepted but ignored, and the swept bounding
// box is just the shape's own bounding box.
type Static struct {
	Shape
}

// HitAt ignores time and delegates to the wrapped Shape.
func (s Static) HitAt(ray core.Ray, tMin, tMax, _ float64) (*material.HitRecord, bool) {
	return s.Hit(ray, tMin, tMax)
}

// SweptBoundingBox ignores the interval and returns the shape's fixed bounding box.
func (s Static) SweptBoundingBox(_, _ float64) AABB {
	return s.BoundingBox()
}

// TMin is the self-intersection offset applied everywhere a ray is cast
// against scene geometry, preventing shadow acne on scattered rays.
const TMin = 0.001
