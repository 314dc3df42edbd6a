package material

import (
	"math"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

// Dielectric is a transparent material (e.g. glass) that both reflects and
// refracts; it never absorbs color (attenuation is always white). Governed
// by a single refractive index.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a Dielectric material with the given refractive
// index (e.g. 1.5 for glass).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Reflectance approximates the Fresnel reflectance via Schlick's formula:
// r0 + (1-r0)*(1-cosine)^5, where r0 = ((1-eta)/(1+eta))^2.
func Reflectance(cosine, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

func refract(uv, n core.V3, etaRatio float64) core.V3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Scatter implements Material. The ray's effective refraction ratio flips
// between entering (n_world / n_material) and exiting (n_material / n_world)
// based on hit.FrontFace, so the caller never needs to flip the geometric
// normal itself.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	const worldIndex = 1.0

	var eta float64
	if hit.FrontFace {
		eta = worldIndex / d.RefractiveIndex
	} else {
		eta = d.RefractiveIndex / worldIndex
	}

	unitDir := rayIn.Direction
	cosTheta := math.Min(-unitDir.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	cannotRefract := eta*sinTheta > 1.0

	var direction core.V3
	if cannotRefract || Reflectance(cosTheta, eta) > sampler.Float64() {
		direction = reflect(unitDir, hit.Normal)
	} else {
		direction = refract(unitDir, hit.Normal, eta)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewV3(1, 1, 1),
	}, true
}
