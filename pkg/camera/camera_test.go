package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/halvorsen-dev/pathtracer/pkg/core"
)

func TestCameraForwardDirection(t *testing.T) {
	c := NewCamera(core.NewV3(0, 0, 0), core.NewV3(0, 0, -1), core.NewV3(0, 1, 0), 45, 1.0, 0, 1)

	expected := core.NewV3(0, 0, -1)
	if math.Abs(c.Forward.X-expected.X) > 1e-6 ||
		math.Abs(c.Forward.Y-expected.Y) > 1e-6 ||
		math.Abs(c.Forward.Z-expected.Z) > 1e-6 {
		t.Errorf("expected forward %v, got %v", expected, c.Forward)
	}
}

func TestCameraCenterRayMatchesLookAt(t *testing.T) {
	c := NewCamera(core.NewV3(0, 0, 0), core.NewV3(0, 0, -1), core.NewV3(0, 1, 0), 90, 1.0, 0, 5)
	sampler := core.NewSampler(rand.New(rand.NewSource(1)))

	ray := c.GetRay(0.5, 0.5, sampler)

	if math.Abs(ray.Direction.X) > 1e-6 || math.Abs(ray.Direction.Y) > 1e-6 {
		t.Errorf("center ray should point straight down -Z, got %v", ray.Direction)
	}
	if ray.Direction.Z >= 0 {
		t.Errorf("center ray should point in -Z, got %v", ray.Direction)
	}
}

func TestPinholeCameraIsDeterministic(t *testing.T) {
	// A pinhole camera (aperture 0) produces the same ray for the same
	// (u, v) regardless of the sampler's state.
	c := NewCamera(core.NewV3(0, 0, 0), core.NewV3(0, 0, -1), core.NewV3(0, 1, 0), 60, 1.6, 0, 1)

	s1 := core.NewSampler(rand.New(rand.NewSource(1)))
	s2 := core.NewSampler(rand.New(rand.NewSource(99)))

	r1 := c.GetRay(0.3, 0.7, s1)
	r2 := c.GetRay(0.3, 0.7, s2)

	if r1.Origin != r2.Origin || r1.Direction != r2.Direction {
		t.Errorf("pinhole camera should be deterministic per (u,v): got %v and %v", r1, r2)
	}
}

func TestLensCameraJittersOrigin(t *testing.T) {
	c := NewCamera(core.NewV3(0, 0, 0), core.NewV3(0, 0, -1), core.NewV3(0, 1, 0), 60, 1.0, 2.0, 5)
	rng := rand.New(rand.NewSource(7))
	sampler := core.NewSampler(rng)

	first := c.GetRay(0.5, 0.5, sampler)
	differs := false
	for i := 0; i < 20; i++ {
		next := c.GetRay(0.5, 0.5, sampler)
		if next.Origin != first.Origin {
			differs = true
			break
		}
	}

	if !differs {
		t.Error("expected lens camera to jitter ray origin across samples")
	}
}

func TestImagePlaneDimScalesWithAspectRatio(t *testing.T) {
	c := NewCamera(core.NewV3(0, 0, 0), core.NewV3(0, 0, -1), core.NewV3(0, 1, 0), 90, 2.0, 0, 1)
	width, height := c.imagePlaneDim()

	if math.Abs(width-2*height) > 1e-9 {
		t.Errorf("expected width == 2*height for aspect ratio 2.0, got width=%f height=%f", width, height)
	}
}
