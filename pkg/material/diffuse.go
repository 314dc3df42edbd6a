package material

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// Diffuse is a perfectly Lambertian material: it scatters toward
// normal + a random unit vector, falling back to the normal itself if
// that sum is (near) zero.
type Diffuse struct {
	Albedo core.V3
}

// NewDiffuse creates a Diffuse material with the given attenuation color.
func NewDiffuse(albedo core.V3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Scatter implements Material.
func (d *Diffuse) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(sampler.UnitVector())
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: d.Albedo,
	}, true
}
