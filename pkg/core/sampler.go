package core

import "math/rand"

// Sampler produces uniform random numbers for one worker's rendering work.
// Each worker owns its own Sampler (backed by its own *rand.Rand) so that no
// synchronization is needed on the hot path — a shared *rand.Rand would
// force either a mutex or a data race.
type Sampler interface {
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
	// InUnitSphere returns a uniformly-distributed point inside the unit
	// ball, via rejection sampling.
	InUnitSphere() V3
	// UnitVector returns a uniformly-distributed point on the unit sphere's
	// surface.
	UnitVector() V3
	// InUnitDisk returns a uniformly-distributed point inside the unit disk
	// in the XY plane (Z == 0), used by the camera's lens sampling.
	InUnitDisk() V3
}

// randSampler is the default Sampler backed by a per-worker *rand.Rand.
type randSampler struct {
	rng *rand.Rand
}

// NewSampler wraps a *rand.Rand as a Sampler. Callers construct one
// *rand.Rand per worker goroutine (e.g. seeded from a per-worker seed
// sequence) and never share it across goroutines.
func NewSampler(rng *rand.Rand) Sampler {
	return &randSampler{rng: rng}
}

func (s *randSampler) Float64() float64 {
	return s.rng.Float64()
}

func (s *randSampler) InUnitSphere() V3 {
	for {
		p := V3{
			X: 2*s.rng.Float64() - 1,
			Y: 2*s.rng.Float64() - 1,
			Z: 2*s.rng.Float64() - 1,
		}
		if p.LengthSquared() <= 1 {
			return p
		}
	}
}

func (s *randSampler) UnitVector() V3 {
	return s.InUnitSphere().Normalize()
}

func (s *randSampler) InUnitDisk() V3 {
	for {
		p := V3{
			X: 2*s.rng.Float64() - 1,
			Y: 2*s.rng.Float64() - 1,
			Z: 0,
		}
		if p.X*p.X+p.Y*p.Y <= 1 {
			return p
		}
	}
}
