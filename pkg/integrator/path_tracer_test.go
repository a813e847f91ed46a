package integrator

import (
	"math"
	"math/rand"
	"testing"

	"spheretracer/pkg/core"
	"spheretracer/pkg/geometry"
	"spheretracer/pkg/material"
	"spheretracer/pkg/scene"
)

func TestPathTracer_DepthZeroIsBlack(t *testing.T) {
	pt := NewPathTracer()
	random := rand.New(rand.NewSource(42))
	s := scene.NewDefaultScene()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := pt.RayColor(ray, s, 0, random)

	if color != (core.Vec3{}) {
		t.Errorf("Expected black at depth 0, got %v", color)
	}
}

func TestPathTracer_MissReturnsSkyGradient(t *testing.T) {
	pt := NewPathTracer()
	random := rand.New(rand.NewSource(42))
	s := scene.New()

	tests := []struct {
		name      string
		direction core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0)},
		{"straight down", core.NewVec3(0, -1, 0)},
		{"horizontal", core.NewVec3(1, 0, 0)},
		{"oblique unnormalized", core.NewVec3(2, 3, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			got := pt.RayColor(ray, s, 10, random)

			// The analytic gradient for the same direction
			ty := 0.5 * (tt.direction.Normalize().Y + 1.0)
			expected := core.NewVec3(1, 1, 1).Multiply(1 - ty).
				Add(core.NewVec3(0.5, 0.7, 1.0).Multiply(ty))

			if got.Subtract(expected).Length() > 1e-12 {
				t.Errorf("Expected sky color %v, got %v", expected, got)
			}
		})
	}
}

// absorber always absorbs, for exercising the black-on-absorption path
type absorber struct{}

func (absorber) Scatter(rayIn core.Ray, hit geometry.Hit, random *rand.Rand) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

func TestPathTracer_AbsorptionIsBlack(t *testing.T) {
	pt := NewPathTracer()
	random := rand.New(rand.NewSource(42))

	s := scene.New()
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5), absorber{})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := pt.RayColor(ray, s, 10, random)

	if color != (core.Vec3{}) {
		t.Errorf("Expected black for an absorbed ray, got %v", color)
	}
}

// fixedScatter bounces every ray straight up with a constant attenuation
type fixedScatter struct {
	attenuation core.Vec3
}

func (f fixedScatter) Scatter(rayIn core.Ray, hit geometry.Hit, random *rand.Rand) (material.ScatterResult, bool) {
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
		Attenuation: f.attenuation,
	}, true
}

func TestPathTracer_AttenuationMultipliesRecursion(t *testing.T) {
	pt := NewPathTracer()
	random := rand.New(rand.NewSource(42))

	s := scene.New()
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5), fixedScatter{core.NewVec3(0.5, 0.25, 1.0)})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := pt.RayColor(ray, s, 10, random)

	// One bounce: attenuation times the straight-up sky color (0.5,0.7,1.0)
	expected := core.NewVec3(0.5, 0.25, 1.0).MultiplyVec(core.NewVec3(0.5, 0.7, 1.0))
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPathTracer_EpsilonPreventsSelfIntersection(t *testing.T) {
	pt := NewPathTracer()
	random := rand.New(rand.NewSource(42))

	// A single mirror sphere: the reflected ray starts on the surface and
	// must escape to the sky instead of re-hitting its own origin forever
	s := scene.New()
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5), material.NewMetal(core.NewVec3(1, 1, 1), 0))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := pt.RayColor(ray, s, 50, random)

	// Head-on mirror bounce goes straight back toward +z (horizontal),
	// where the sky gradient is the midpoint color
	expected := core.NewVec3(0.75, 0.85, 1.0)
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected escaped mirror bounce %v, got %v", expected, got)
	}
}

func TestPathTracer_DefaultSceneGroundVisible(t *testing.T) {
	pt := NewPathTracer()
	random := rand.New(rand.NewSource(42))
	s := scene.NewDefaultScene()

	// A steep downward ray hits the yellow ground; after diffuse bounces
	// the estimate must stay finite and non-negative
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.2, -1, -0.3))
	color := pt.RayColor(ray, s, 40, random)

	for _, c := range []float64{color.X, color.Y, color.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			t.Fatalf("Radiance estimate is not a finite non-negative color: %v", color)
		}
	}
}
