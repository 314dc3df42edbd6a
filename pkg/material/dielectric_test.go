package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

func TestReflectanceAtNormalIncidence(t *testing.T) {
	// Schlick's approximation at cosTheta=1 yields r0 exactly.
	eta := 1.0 / 1.5
	r0 := (1 - eta) / (1 + eta)
	r0 *= r0

	got := Reflectance(1.0, eta)

	assert.InDelta(t, r0, got, 1e-12)
}

func TestReflectanceMatchesSpecExample(t *testing.T) {
	// n=1.5, head-on ray -> r0 == 0.04.
	eta := 1.0 / 1.5
	got := Reflectance(1.0, eta)

	assert.InDelta(t, 0.04, got, 1e-3)
}

func TestDielectricAttenuationIsWhite(t *testing.T) {
	d := NewDielectric(1.5)
	assert.Equal(t, 1.5, d.RefractiveIndex)

	hit := HitRecord{Point: core.NewV3(0, 0, 1), Normal: core.NewV3(0, 0, 1), FrontFace: true}
	ray := core.NewRay(core.NewV3(0, 0, 3), core.NewV3(0, 0, -1))
	result, _ := d.Scatter(ray, hit, fixedSampler{f64: 0.5})
	assert.Equal(t, core.NewV3(1, 1, 1), result.Attenuation)
}

func TestDielectricHeadOnRayRefractsWhenSampleAboveReflectance(t *testing.T) {
	d := NewDielectric(1.5)
	hit := HitRecord{Point: core.NewV3(0, 0, 1), Normal: core.NewV3(0, 0, 1), FrontFace: true}
	ray := core.NewRay(core.NewV3(0, 0, 3), core.NewV3(0, 0, -1))

	// Reflectance at normal incidence is 0.04; a sample of 0.5 is above it,
	// so the ray refracts straight through.
	result, scattered := d.Scatter(ray, hit, fixedSampler{f64: 0.5})

	assert.True(t, scattered)
	assert.Equal(t, core.NewV3(1, 1, 1), result.Attenuation)
	assert.InDelta(t, 0.0, result.Scattered.Direction.X, 1e-9)
	assert.InDelta(t, 0.0, result.Scattered.Direction.Y, 1e-9)
	assert.InDelta(t, -1.0, result.Scattered.Direction.Z, 1e-9)
}

func TestDielectricHeadOnRayReflectsWhenSampleBelowReflectance(t *testing.T) {
	d := NewDielectric(1.5)
	hit := HitRecord{Point: core.NewV3(0, 0, 1), Normal: core.NewV3(0, 0, 1), FrontFace: true}
	ray := core.NewRay(core.NewV3(0, 0, 3), core.NewV3(0, 0, -1))

	result, scattered := d.Scatter(ray, hit, fixedSampler{f64: 0.01})

	assert.True(t, scattered)
	assert.InDelta(t, 1.0, result.Scattered.Direction.Z, 1e-9)
}
