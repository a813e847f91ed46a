package scene

import (
	"spheretracer/pkg/core"
	"spheretracer/pkg/geometry"
	"spheretracer/pkg/material"
)

// Scene is an ordered collection of geometry paired 1:1 with materials.
// Materials are shared by reference and immutable after construction, so
// the scene is safe for concurrent probing once built.
type Scene struct {
	objects   []geometry.Probe
	materials []material.Material
}

// New creates an empty scene
func New() *Scene {
	return &Scene{}
}

// Add appends a geometry/material pair to the scene
func (s *Scene) Add(object geometry.Probe, mat material.Material) {
	s.objects = append(s.objects, object)
	s.materials = append(s.materials, mat)
}

// Probe finds the globally nearest intersection within (tMin, tMax] across
// all objects, narrowing the search bound to the closest hit found so far
func (s *Scene) Probe(ray core.Ray, tMin, tMax float64) (geometry.Hit, material.Material, bool) {
	var closestHit geometry.Hit
	var closestMaterial material.Material
	closestSoFar := tMax
	hitAnything := false

	for i, object := range s.objects {
		if hit, ok := object.Probe(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
			closestMaterial = s.materials[i]
		}
	}

	return closestHit, closestMaterial, hitAnything
}
