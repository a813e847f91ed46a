package integrator

import (
	"math"
	"math/rand"

	"spheretracer/pkg/core"
	"spheretracer/pkg/scene"
)

// Epsilon for the lower probe bound. Prevents shadow acne: without it the
// scattered ray re-intersects the surface it just left due to floating-point
// rounding of the hit point.
const tMinEpsilon = 0.001

// PathTracer computes per-sample radiance by recursively scattering rays
// through the scene. It is a single-sample Monte-Carlo estimator of the
// rendering equation; all variance reduction comes from averaging
// independent samples.
type PathTracer struct {
	SkyTop    core.Vec3   // Sky color straight up
	SkyBottom core.Vec3   // Sky color at the horizon and below
	Debug     core.Logger // Optional per-bounce trace output
}

// NewPathTracer creates a path tracer with the standard white-to-blue sky
func NewPathTracer() *PathTracer {
	return &PathTracer{
		SkyTop:    core.NewVec3(0.5, 0.7, 1.0),
		SkyBottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// RayColor returns the radiance estimate for a single ray. Recursion stops
// at depth 0, a hard cutoff rather than a convergence criterion.
func (pt *PathTracer) RayColor(ray core.Ray, s *scene.Scene, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, mat, ok := s.Probe(ray, tMinEpsilon, math.Inf(1))
	if !ok {
		return pt.skyGradient(ray)
	}

	if pt.Debug != nil {
		pt.Debug.Printf("hit t=%.4f p=%v n=%v front=%t from %v",
			hit.T, hit.Point, hit.Normal, hit.Front(ray), ray.Direction)
	}

	scatter, scattered := mat.Scatter(ray, hit, random)
	if !scattered {
		return core.Vec3{}
	}

	if pt.Debug != nil {
		pt.Debug.Printf("  -> scattered to %v with atten %v",
			scatter.Scattered.Direction, scatter.Attenuation)
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, s, depth-1, random))
}

// skyGradient returns the background color for a ray that missed everything
func (pt *PathTracer) skyGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map the vertical component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return pt.SkyBottom.Multiply(1.0 - t).Add(pt.SkyTop.Multiply(t))
}
