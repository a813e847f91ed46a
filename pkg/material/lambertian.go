package material

import (
	"math/rand"

	"spheretracer/pkg/core"
	"spheretracer/pkg/geometry"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base reflected color
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// Adding a uniform on-sphere sample to the normal approximates
// cosine-weighted diffuse sampling. Never absorbs.
func (l *Lambertian) Scatter(rayIn core.Ray, hit geometry.Hit, random *rand.Rand) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.UniformOnUnitSphere(random))

	// The sample can nearly cancel the normal; fall back to the normal
	// itself to avoid a degenerate zero-length direction
	if scatterDirection.Length() < 1e-8 {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo,
	}, true
}
