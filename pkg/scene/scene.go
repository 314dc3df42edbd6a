package scene

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/halvorsen-dev/pathtracer/pkg/camera"
	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/geometry"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

// Scene bundles a World, its Camera, and the BVH built over its objects —
// everything the integrator needs to cast rays.
type Scene struct {
	World  *World
	Camera *camera.Camera
	Quads  []*geometry.Quad
	Discs  []*geometry.Disc

	bvh *geometry.BVH
}

// Build constructs the BVH over the world's spheres plus any supplemental
// quads/discs, using rng to pick the BVH's random split axes. It must be
// called once after the scene's objects are finalized and before
// rendering begins; the BVH is read-only thereafter and safe to share
// across worker goroutines without locking.
func (s *Scene) Build(rng *rand.Rand) {
	extra := make([]geometry.Shape, 0, len(s.Quads)+len(s.Discs))
	for _, q := range s.Quads {
		extra = append(extra, q)
	}
	for _, d := range s.Discs {
		extra = append(extra, d)
	}

	s.bvh = geometry.NewBVH(s.World.BVHShapes(extra...), s.World.StartTime, s.World.EndTime, rng)
}

// BVH returns the scene's acceleration structure. It is nil until Build
// has run.
func (s *Scene) BVH() *geometry.BVH {
	return s.bvh
}

// Planes returns the world's plane primitives as Shapes, for the
// integrator's separate linear scan.
func (s *Scene) Planes() []geometry.Shape {
	return s.World.PlaneShapes()
}

// NewDefaultScene builds the zero-config hard-coded scene: a ground
// plane and a small cluster of spheres in the three material kinds, lit
// by a simple sky gradient (handled by the integrator, not the scene).
func NewDefaultScene(aspectRatio float64) (*Scene, error) {
	world := NewWorld()

	ground := material.NewDiffuse(core.NewV3(0.5, 0.5, 0.5))
	if err := world.AddPlane(core.NewV3(0, 1, 0), 0, ground); err != nil {
		return nil, errors.Wrap(err, "scene: building default ground plane")
	}

	centerDiffuse := material.NewDiffuse(core.NewV3(0.1, 0.2, 0.5))
	if err := world.AddSphere(core.NewV3(0, 1, 0), 1.0, centerDiffuse, core.V3{}); err != nil {
		return nil, errors.Wrap(err, "scene: adding default center sphere")
	}

	leftMetal := material.NewMetal(core.NewV3(0.8, 0.8, 0.8), 0.0)
	if err := world.AddSphere(core.NewV3(-2.2, 1, 0), 1.0, leftMetal, core.V3{}); err != nil {
		return nil, errors.Wrap(err, "scene: adding default left sphere")
	}

	rightGlass := material.NewDielectric(1.5)
	if err := world.AddSphere(core.NewV3(2.2, 1, 0), 1.0, rightGlass, core.V3{}); err != nil {
		return nil, errors.Wrap(err, "scene: adding default right sphere")
	}

	fuzzyMetal := material.NewMetal(core.NewV3(0.7, 0.6, 0.5), 0.3)
	if err := world.AddSphere(core.NewV3(0.6, 0.4, 1.6), 0.4, fuzzyMetal, core.NewV3(0, 0, 0)); err != nil {
		return nil, errors.Wrap(err, "scene: adding default accent sphere")
	}

	cam := camera.NewCamera(
		core.NewV3(0, 1.5, 6),
		core.NewV3(0, 1, 0),
		core.NewV3(0, 1, 0),
		35,
		aspectRatio,
		0,
		10,
	)

	return &Scene{World: world, Camera: cam}, nil
}
