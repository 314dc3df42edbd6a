package integrator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/scene"
)

func emptyScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := &scene.Scene{World: scene.NewWorld()}
	s.Build(rand.New(rand.NewSource(1)))
	return s
}

func TestCastRayDepthZeroIsAlwaysBlack(t *testing.T) {
	in := NewIntegrator(emptyScene(t), 0)
	sampler := core.NewSampler(rand.New(rand.NewSource(1)))
	ray := core.NewRay(core.NewV3(0, 0, 0), core.NewV3(0, 0, -1))

	result := in.CastRay(ray, 0, 0, sampler)

	assert.Equal(t, core.Black, result)
}

func TestCastRayMissReturnsSkyGradient(t *testing.T) {
	in := NewIntegrator(emptyScene(t), 5)
	sampler := core.NewSampler(rand.New(rand.NewSource(1)))

	// straight up: ray.dir.y == 1, so t == 1, result == skyTop
	ray := core.NewRay(core.NewV3(0, 0, 0), core.NewV3(0, 1, 0))
	result := in.CastRay(ray, 5, 0, sampler)

	assert.InDelta(t, 0.7, result.R, 1e-9)
	assert.InDelta(t, 0.8, result.G, 1e-9)
	assert.InDelta(t, 0.9, result.B, 1e-9)
}

func TestCastRayMissStraightDownReturnsWhite(t *testing.T) {
	in := NewIntegrator(emptyScene(t), 5)
	sampler := core.NewSampler(rand.New(rand.NewSource(1)))

	ray := core.NewRay(core.NewV3(0, 0, 0), core.NewV3(0, -1, 0))
	result := in.CastRay(ray, 5, 0, sampler)

	assert.InDelta(t, 1.0, result.R, 1e-9)
	assert.InDelta(t, 1.0, result.G, 1e-9)
	assert.InDelta(t, 1.0, result.B, 1e-9)
}

func TestCastRayHitsDefaultSceneCenterSphere(t *testing.T) {
	s, err := scene.NewDefaultScene(1.0)
	require.NoError(t, err)
	s.Build(rand.New(rand.NewSource(1)))

	in := NewIntegrator(s, 5)
	sampler := core.NewSampler(rand.New(rand.NewSource(1)))

	ray := core.NewRay(core.NewV3(0, 5, 0), core.NewV3(0, -1, 0))
	result := in.CastRay(ray, 5, 0, sampler)

	// the ray meets the top of the blue diffuse center sphere before the
	// ground plane; its material attenuates some sky light back.
	assert.True(t, result.R > 0 || result.G > 0 || result.B > 0)
}
