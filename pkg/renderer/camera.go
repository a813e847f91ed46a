package renderer

import (
	"math"
	"math/rand"

	"spheretracer/pkg/core"
)

// Camera is a thin-lens camera producing primary rays from normalized
// screen coordinates. A non-zero aperture defocuses geometry off the
// focus plane, modeling depth of field.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
}

// NewCamera creates a thin-lens camera. fovy is the vertical field of view
// in degrees; focusDist is the distance to the plane that renders sharp.
func NewCamera(aspect, fovy, aperture, focusDist float64, lookFrom, lookAt, up core.Vec3) *Camera {
	theta := fovy * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspect * viewportHeight

	// Orthonormal basis: w looks backward, u right, v up
	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := lookFrom
	horizontal := u.Multiply(viewportWidth * focusDist)
	vertical := v.Multiply(viewportHeight * focusDist)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      aperture / 2,
	}
}

// Ray generates a primary ray for screen coordinates (s, t) in [0,1],
// sampling a lens offset for depth of field
func (c *Camera) Ray(s, t float64, random *rand.Rand) core.Ray {
	lens := core.UniformInUnitDisc(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(lens.X).Add(c.v.Multiply(lens.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
