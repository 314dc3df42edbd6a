package material

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// Metal is a glossy reflective material. Roughness 0 is a perfect mirror;
// higher roughness perturbs the reflection direction by a random point
// inside a sphere of that radius.
type Metal struct {
	Albedo    core.V3
	Roughness float64
}

// NewMetal creates a Metal material. A negative roughness is clamped to 0;
// 0 is a perfect mirror.
func NewMetal(albedo core.V3, roughness float64) *Metal {
	if roughness < 0 {
		roughness = 0
	}
	return &Metal{Albedo: albedo, Roughness: roughness}
}

// reflect computes the reflection of v off a surface with normal n:
// r = v - 2*dot(v,n)*n.
func reflect(v, n core.V3) core.V3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Scatter implements Material.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction, hit.Normal)

	if m.Roughness > 0 {
		fuzzTarget := hit.Point.Add(reflected).Add(sampler.InUnitSphere().Multiply(m.Roughness))
		reflected = fuzzTarget.Subtract(hit.Point)
	}

	// A fuzzed reflection that dips below the surface is absorbed rather
	// than scattered.
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}
