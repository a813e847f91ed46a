package material

import (
	"math/rand"

	"spheretracer/pkg/core"
	"spheretracer/pkg/geometry"
)

// Metal represents a metallic material with specular reflection.
// Roughness is not clamped; values above 1 just produce wilder fuzz
// and more grazing absorption.
type Metal struct {
	Albedo    core.Vec3 // Metal color
	Roughness float64   // 0 = perfect mirror
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, roughness float64) *Metal {
	return &Metal{Albedo: albedo, Roughness: roughness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit geometry.Hit, random *rand.Rand) (ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	// Perturb the reflection to produce glossy fuzz
	if m.Roughness > 0 {
		perturbation := core.UniformInUnitBall(random).Multiply(m.Roughness)
		reflected = reflected.Add(perturbation)
	}

	// A perturbed direction pointing back into the surface is absorbed;
	// this is how rough metals self-shadow at grazing angles
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}
