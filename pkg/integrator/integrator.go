// Package integrator implements the bounded-depth recursive path
// integrator that turns a ray into a radiance value.
package integrator

import (
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/geometry"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
	"github.com/halvorsen-dev/pathtracer/pkg/scene"
)

// Integrator evaluates cast_ray against a fixed scene. MaxDepth bounds the
// recursion; there is deliberately no Russian roulette termination —
// recursion always runs to either a miss, an absorption, or depth 0.
type Integrator struct {
	Scene    *scene.Scene
	MaxDepth int
}

// NewIntegrator builds an Integrator over scn with the given max depth.
func NewIntegrator(scn *scene.Scene, maxDepth int) *Integrator {
	return &Integrator{Scene: scn, MaxDepth: maxDepth}
}

// skyBottom and skyTop are the sky gradient's endpoints, seen by rays
// pointing straight down and straight up respectively.
var (
	skyBottom = core.NewV3(1, 1, 1)
	skyTop    = core.NewV3(0.7, 0.8, 0.9)
)

// CastRay recursively traces ray through the scene, returning its
// radiance as an opaque V4. depth bounds the remaining bounces; time
// selects where in the shutter interval moving spheres are evaluated.
func (in *Integrator) CastRay(ray core.Ray, depth int, time float64, sampler core.Sampler) core.V4 {
	if depth == 0 {
		return core.Black
	}

	hit, ok := in.closestHit(ray, time)
	if !ok {
		t := 0.5 * (ray.Direction.Y + 1)
		return core.FromV3(skyBottom.Lerp(skyTop, t))
	}

	result, scattered := hit.Material.Scatter(ray, *hit, sampler)
	if !scattered {
		return core.Black
	}

	incoming := in.CastRay(result.Scattered, depth-1, time, sampler)
	return core.FromV3(result.Attenuation.MultiplyVec(incoming.V3()))
}

// closestHit tests ray against every plane (linear scan, small N) and the
// BVH, keeping the nearer intersection beyond geometry.TMin.
func (in *Integrator) closestHit(ray core.Ray, time float64) (hit *material.HitRecord, ok bool) {
	const tMax = math.MaxFloat64
	closest := tMax
	var best *material.HitRecord

	for _, plane := range in.Scene.Planes() {
		if h, hitOk := plane.Hit(ray, geometry.TMin, closest); hitOk {
			best = h
			closest = h.T
		}
	}

	if bvh := in.Scene.BVH(); bvh != nil {
		if h, hitOk := bvh.Hit(ray, geometry.TMin, closest, time); hitOk {
			best = h
			closest = h.T
		}
	}

	return best, best != nil
}
