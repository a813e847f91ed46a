package geometry

import (
	"math"

	"spheretracer/pkg/core"
)

// Sphere represents a sphere shape. Radius must be positive; this is a
// caller obligation, not validated here.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Probe tests if a ray intersects the sphere within (tMin, tMax].
// The ray direction need not be normalized; t is relative to its magnitude.
func (s *Sphere) Probe(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic coefficients with b = 2h: at² + 2ht + c = 0
	a := ray.Direction.LengthSquared()
	h := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-h - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-h + sqrtD) / a
		if root < tMin || root > tMax {
			return Hit{}, false
		}
	}

	point := ray.At(root)
	return Hit{
		Point:  point,
		T:      root,
		Normal: point.Subtract(s.Center).Multiply(1.0 / s.Radius),
	}, true
}
