package scene

import (
	"spheretracer/pkg/core"
	"spheretracer/pkg/geometry"
	"spheretracer/pkg/material"
)

// NewDefaultScene builds the demo scene: a diffuse sphere flanked by a glass
// sphere and a mirror metal sphere, resting on a large diffuse ground sphere
func NewDefaultScene() *Scene {
	s := New()

	center := material.NewLambertian(core.NewVec3(0.3, 0.2, 0.8))
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5), center)
	s.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100), ground)
	s.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5), glass)
	s.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5), gold)

	return s
}
