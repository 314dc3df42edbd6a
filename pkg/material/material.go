// Package material implements the three-case material model: Diffuse
// (Lambertian), Metal, and Dielectric. Each produces a scattered ray and
// an attenuation, or signals absorption.
package material

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// Material is a sum type over the three supported surface behaviors. A
// concrete Go interface with three implementations stands in for a
// tagged variant/enum — no virtual dispatch is needed beyond Go's own
// interface call, and the hot path never switches on a type tag.
type Material interface {
	// Scatter computes a scattered ray and attenuation given an incoming
	// ray and a hit. The second return reports whether the ray scatters at
	// all (false means the ray is absorbed).
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult is what a Material.Scatter call produces.
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.V3
}

// HitRecord describes a ray-primitive intersection: the point, the surface
// normal (already oriented to face the incoming ray per SetFaceNormal), the
// ray parameter, whether the front face was hit, and the surface's material.
type HitRecord struct {
	Point     core.V3
	Normal    core.V3
	T         float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal to oppose the ray direction and records
// whether the front (outward-facing) side was hit: the intersector always
// reports the geometric outward normal, and front/back is derived here
// from the ray, not baked into the primitive.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.V3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
