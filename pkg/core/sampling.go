package core

import (
	"math"
	"math/rand"
)

// UniformOnUnitSphere generates a uniform random direction on the unit sphere.
// Three independent standard normal draws give a rotationally symmetric vector,
// so normalizing yields uniform angular density with no rejection.
func UniformOnUnitSphere(random *rand.Rand) Vec3 {
	p := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
	return p.Normalize()
}

// UniformInUnitBall generates a uniform random point inside the unit ball.
// The cube root is the inverse-CDF transform that keeps volumetric density
// uniform instead of concentrating mass near the surface.
func UniformInUnitBall(random *rand.Rand) Vec3 {
	r := math.Cbrt(random.Float64())
	return UniformOnUnitSphere(random).Multiply(r)
}

// UniformInUnitDisc generates a random point in the unit disc (z = 0),
// used for thin-lens depth of field
func UniformInUnitDisc(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		// Accept if inside unit disc
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
}
