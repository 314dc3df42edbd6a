// Package scene holds the objects that make up a renderable scene: the
// sphere/plane object lists, the camera, and the BVH built over them.
package scene

import (
	"github.com/pkg/errors"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/geometry"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

// MaxSpheres and MaxPlanes bound a World's capacity, grounded on the
// original's fixed-size SphereObject[4192]/PlaneObject[64] arrays. A Go
// World stores these in growable slices, but AddSphere/AddPlane still
// enforce the same ceilings so scene files can't silently grow past the
// renderer's expected working set.
const (
	MaxSpheres = 4192
	MaxPlanes  = 64
)

// SphereObject is a sphere that may move linearly over the shutter
// interval: its position at time t is Center + Velocity*t, grounded on
// render_world.h's SphereObject.pos().
type SphereObject struct {
	Center   core.V3
	Radius   float64
	Velocity core.V3
	Mat      material.Material
}

// PositionAt returns the sphere's center at the given time.
func (s SphereObject) PositionAt(t float64) core.V3 {
	return s.Center.Add(s.Velocity.Multiply(t))
}

// SweptBoundingBox returns the AABB enclosing the sphere's full sweep
// between startTime and endTime, the union of its bounds at both endpoints
// (render_world.h's get_bounding_box). This makes SphereObject a
// geometry.TimeShape, so it can be placed directly into the BVH.
func (s SphereObject) SweptBoundingBox(startTime, endTime float64) geometry.AABB {
	start := geometry.NewSphere(s.PositionAt(startTime), s.Radius, s.Mat).BoundingBox()
	end := geometry.NewSphere(s.PositionAt(endTime), s.Radius, s.Mat).BoundingBox()
	return start.Union(end)
}

// HitAt intersects the ray against the sphere's position at the given
// time, satisfying geometry.TimeShape.
func (s SphereObject) HitAt(ray core.Ray, tMin, tMax, time float64) (*material.HitRecord, bool) {
	return geometry.NewSphere(s.PositionAt(time), s.Radius, s.Mat).Hit(ray, tMin, tMax)
}

// PlaneObject pairs a static Plane with its material (render_world.h's
// PlaneObject). Planes never move and are never placed in the BVH.
type PlaneObject struct {
	Normal core.V3
	Offset float64
	Mat    material.Material
}

func (p PlaneObject) shape() *geometry.Plane {
	return geometry.NewPlane(p.Normal, p.Offset, p.Mat)
}

// World holds the append-only object lists that make up a scene, plus the
// shutter interval over which sphere motion is evaluated.
type World struct {
	Spheres []SphereObject
	Planes  []PlaneObject

	StartTime float64
	EndTime   float64
}

// NewWorld returns an empty World with a closed shutter (StartTime ==
// EndTime == 0), matching a static scene by default.
func NewWorld() *World {
	return &World{}
}

// AddSphere appends a (possibly moving) sphere to the world. It returns an
// error, not a panic, because scene files are untrusted input and a scene
// that exceeds MaxSpheres is a recoverable configuration problem, not a
// programmer error.
func (w *World) AddSphere(center core.V3, radius float64, mat material.Material, velocity core.V3) error {
	if len(w.Spheres) >= MaxSpheres {
		return errors.Errorf("scene: too many spheres (max %d)", MaxSpheres)
	}
	if radius <= 0 {
		return errors.Errorf("scene: sphere radius must be positive, got %f", radius)
	}
	w.Spheres = append(w.Spheres, SphereObject{Center: center, Radius: radius, Velocity: velocity, Mat: mat})
	return nil
}

// AddPlane appends a plane to the world, defined by dot(p, normal) ==
// offset.
func (w *World) AddPlane(normal core.V3, offset float64, mat material.Material) error {
	if len(w.Planes) >= MaxPlanes {
		return errors.Errorf("scene: too many planes (max %d)", MaxPlanes)
	}
	w.Planes = append(w.Planes, PlaneObject{Normal: normal.Normalize(), Offset: offset, Mat: mat})
	return nil
}

// SetShutter sets the interval over which moving spheres are swept,
// start <= end.
func (w *World) SetShutter(start, end float64) error {
	if end < start {
		return errors.Errorf("scene: shutter end (%f) precedes start (%f)", end, start)
	}
	w.StartTime = start
	w.EndTime = end
	return nil
}

// BVHShapes returns the TimeShape for every sphere plus any supplemental
// static primitives (Quad, Disc), ready to build a BVH over. Planes are
// excluded: they are tested with a separate linear scan, never placed in
// the BVH.
func (w *World) BVHShapes(extra ...geometry.Shape) []geometry.TimeShape {
	shapes := make([]geometry.TimeShape, 0, len(w.Spheres)+len(extra))
	for _, s := range w.Spheres {
		shapes = append(shapes, s)
	}
	for _, e := range extra {
		shapes = append(shapes, geometry.Static{Shape: e})
	}
	return shapes
}

// PlaneShapes returns the plane primitives as Shapes, for the linear scan
// the integrator runs outside the BVH.
func (w *World) PlaneShapes() []geometry.Shape {
	shapes := make([]geometry.Shape, len(w.Planes))
	for i, p := range w.Planes {
		shapes[i] = p.shape()
	}
	return shapes
}
