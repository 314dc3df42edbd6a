// Package geometry implements the ray-primitive intersection tests and the
// bounding-volume hierarchy that accelerates them.
package geometry

import (
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// AABB is an axis-aligned bounding box, stored as min/max corners.
type AABB struct {
	Min core.V3
	Max core.V3
}

// NewAABB builds an AABB from its min and max corners.
func NewAABB(min, max core.V3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints returns the smallest AABB containing all given points.
func NewAABBFromPoints(points ...core.V3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = core.NewV3(math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z))
		max = core.NewV3(math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z))
	}
	return AABB{Min: min, Max: max}
}

// Hit performs the slab test: per axis it computes the
// entry/exit t values, swapping so t0 <= t1 (handles negative and infinite
// reciprocal directions correctly), then intersects the per-axis intervals.
// It reports only hit/no-hit — AABB hits are used purely to prune BVH
// traversal, never to produce a surface interaction.
func (b AABB) Hit(ray core.Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin, dir, lo, hi := axisComponents(ray, b, axis)

		invDir := 1.0 / dir // division by zero yields +-Inf, handled by the comparisons below
		t0 := (lo - origin) * invDir
		t1 := (hi - origin) * invDir
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax <= tMin {
			return false
		}
	}
	return true
}

func axisComponents(ray core.Ray, b AABB, axis int) (origin, dir, lo, hi float64) {
	switch axis {
	case 0:
		return ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X
	case 1:
		return ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y
	default:
		return ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z
	}
}

// Union returns the smallest AABB containing both b and other: the
// per-axis max of the upper bounds and min of the lower bounds.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: core.NewV3(
			math.Min(b.Min.X, other.Min.X),
			math.Min(b.Min.Y, other.Min.Y),
			math.Min(b.Min.Z, other.Min.Z),
		),
		Max: core.NewV3(
			math.Max(b.Max.X, other.Max.X),
			math.Max(b.Max.Y, other.Max.Y),
			math.Max(b.Max.Z, other.Max.Z),
		),
	}
}

// Center returns the AABB's center point.
func (b AABB) Center() core.V3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the AABB's extent along each axis.
func (b AABB) Size() core.V3 {
	return b.Max.Subtract(b.Min)
}

// AxisExtent returns the extent of the box along the given axis (0=X, 1=Y,
// 2=Z).
func (b AABB) AxisExtent(axis int) float64 {
	switch axis {
	case 0:
		return b.Max.X - b.Min.X
	case 1:
		return b.Max.Y - b.Min.Y
	default:
		return b.Max.Z - b.Min.Z
	}
}

// AxisCenter returns the center coordinate along the given axis.
func (b AABB) AxisCenter(axis int) float64 {
	c := b.Center()
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}
