package material

import "github.com/halvorsen-dev/pathtracer/pkg/core"

// fixedSampler returns a configurable constant from Float64, used to force
// the reflect/refract branch in dielectric scattering tests.
type fixedSampler struct {
	f64 float64
}

func (s fixedSampler) Float64() float64      { return s.f64 }
func (s fixedSampler) InUnitSphere() core.V3 { return core.V3{} }
func (s fixedSampler) UnitVector() core.V3   { return core.NewV3(0, 0, 1) }
func (s fixedSampler) InUnitDisk() core.V3   { return core.V3{} }
