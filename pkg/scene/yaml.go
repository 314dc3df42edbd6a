package scene

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/halvorsen-dev/pathtracer/pkg/camera"
	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/material"
)

// sceneConfig is the YAML-facing shape of a scene description. It mirrors
// the scene-construction API one field at a time rather than exposing
// World/Camera directly, so the file format can stay stable even as the
// in-memory types evolve.
type sceneConfig struct {
	Camera struct {
		Position [3]float64 `yaml:"position"`
		LookAt   [3]float64 `yaml:"look_at"`
		Up       [3]float64 `yaml:"up"`
		FOV      float64    `yaml:"fov_degrees"`
		Aperture float64    `yaml:"aperture"`
		Focus    float64    `yaml:"focus_distance"`
	} `yaml:"camera"`

	Shutter struct {
		Start float64 `yaml:"start"`
		End   float64 `yaml:"end"`
	} `yaml:"shutter"`

	Spheres []sphereConfig `yaml:"spheres"`
	Planes  []planeConfig  `yaml:"planes"`
}

type sphereConfig struct {
	Center   [3]float64     `yaml:"center"`
	Radius   float64        `yaml:"radius"`
	Velocity [3]float64     `yaml:"velocity"`
	Material materialConfig `yaml:"material"`
}

type planeConfig struct {
	Normal   [3]float64     `yaml:"normal"`
	Offset   float64        `yaml:"offset"`
	Material materialConfig `yaml:"material"`
}

// materialConfig's Kind selects one of the three material constructors:
// "diffuse", "metal", or "dielectric".
type materialConfig struct {
	Kind            string     `yaml:"kind"`
	Color           [3]float64 `yaml:"color"`
	Roughness       float64    `yaml:"roughness"`
	RefractiveIndex float64    `yaml:"refractive_index"`
}

func (m materialConfig) build() (material.Material, error) {
	switch m.Kind {
	case "diffuse":
		return material.NewDiffuse(vecOf(m.Color)), nil
	case "metal":
		return material.NewMetal(vecOf(m.Color), m.Roughness), nil
	case "dielectric":
		return material.NewDielectric(m.RefractiveIndex), nil
	default:
		return nil, errors.Errorf("scene: unsupported material kind %q", m.Kind)
	}
}

func vecOf(xyz [3]float64) core.V3 {
	return core.NewV3(xyz[0], xyz[1], xyz[2])
}

// LoadYAML parses a scene description and builds a Scene from it. This
// supplements the hard-coded default scene with a declarative
// alternative for library callers; the CLI does not read scene files and
// always renders NewDefaultScene.
func LoadYAML(data []byte, aspectRatio float64) (*Scene, error) {
	var cfg sceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "scene: parsing YAML")
	}

	world := NewWorld()
	if err := world.SetShutter(cfg.Shutter.Start, cfg.Shutter.End); err != nil {
		return nil, errors.Wrap(err, "scene: setting shutter")
	}

	for i, sc := range cfg.Spheres {
		mat, err := sc.Material.build()
		if err != nil {
			return nil, errors.Wrapf(err, "scene: sphere %d", i)
		}
		if err := world.AddSphere(vecOf(sc.Center), sc.Radius, mat, vecOf(sc.Velocity)); err != nil {
			return nil, errors.Wrapf(err, "scene: sphere %d", i)
		}
	}

	for i, pc := range cfg.Planes {
		mat, err := pc.Material.build()
		if err != nil {
			return nil, errors.Wrapf(err, "scene: plane %d", i)
		}
		if err := world.AddPlane(vecOf(pc.Normal), pc.Offset, mat); err != nil {
			return nil, errors.Wrapf(err, "scene: plane %d", i)
		}
	}

	fov := cfg.Camera.FOV
	if fov == 0 {
		fov = 40
	}
	focus := cfg.Camera.Focus
	if focus == 0 {
		focus = 10
	}
	up := vecOf(cfg.Camera.Up)
	if up == (core.V3{}) {
		up = core.NewV3(0, 1, 0)
	}

	cam := camera.NewCamera(vecOf(cfg.Camera.Position), vecOf(cfg.Camera.LookAt), up, fov, aspectRatio, cfg.Camera.Aperture, focus)

	return &Scene{World: world, Camera: cam}, nil
}
