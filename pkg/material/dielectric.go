package material

import (
	"math"
	"math/rand"

	"spheretracer/pkg/core"
	"spheretracer/pkg/geometry"
)

// Dielectric represents a transparent refractive material like glass
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Never absorbs; clear glass attenuates by pure white.
func (d *Dielectric) Scatter(rayIn core.Ray, hit geometry.Hit, random *rand.Rand) (ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// The ratio selection keys off Hit.Front; see the note on that
	// predicate for the sign convention the pair depends on
	var refractionRatio float64
	if hit.Front(rayIn) {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()

	// Flip the geometric normal to oppose the incoming ray for the
	// refraction computation
	normal := hit.Normal
	if unitDirection.Dot(normal) > 0 {
		normal = normal.Negate()
	}
	cosTheta := math.Min(-unitDirection.Dot(normal), 1.0)

	// Refraction fails on total internal reflection; a Schlick-style
	// reflectance test against one uniform draw also selects reflection
	// with probability increasing toward grazing angles
	direction, ok := unitDirection.Refract(normal, refractionRatio)
	if !ok || reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = unitDirection.Reflect(normal)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// reflectance calculates the Fresnel reflectance using Schlick's approximation
func reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
