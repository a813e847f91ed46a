package geometry

import "spheretracer/pkg/core"

// Hit contains information about a ray-shape intersection
type Hit struct {
	Point  core.Vec3 // Point of intersection
	T      float64   // Parameter t along the ray
	Normal core.Vec3 // Unit outward geometric normal at the intersection
}

// Front reports which side of the surface the ray approached from, by
// comparing the outward normal against the incoming ray direction. The
// dielectric material relies on this exact sign convention to pick its
// refraction ratio; the two must change together or refraction flips at
// every surface crossing.
func (h Hit) Front(ray core.Ray) bool {
	return h.Normal.Dot(ray.Direction) > 0
}

// Probe is the capability of a shape to report where a ray intersects it.
// A returned hit satisfies tMin < hit.T <= tMax.
type Probe interface {
	Probe(ray core.Ray, tMin, tMax float64) (Hit, bool)
}
