package material

import (
	"math/rand"

	"spheretracer/pkg/core"
	"spheretracer/pkg/geometry"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter maps an incoming ray and a hit into a scattered ray and an
	// attenuation. A false return means the ray was absorbed.
	Scatter(rayIn core.Ray, hit geometry.Hit, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray, originating at the hit point
	Attenuation core.Vec3 // Color factor applied to the recursive contribution
}
