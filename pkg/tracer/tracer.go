package tracer

import (
	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/geometry"
	"github.com/hmartin/go-shader-tracer/pkg/material"
)

// Kind identifies one primitive kind in the scene
type Kind uint8

const (
	KindSphere Kind = 1 << iota
	KindTriangle
	KindQuad
	KindGround
)

// KindSet is a set of primitive kinds included in the active trace.
// Disabling a kind keeps its primitives in the scene data but excludes
// them from the scan, so toggling is a data decision rather than a
// rebuild.
type KindSet uint8

// NewKindSet builds a set from the given kinds
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= KindSet(k)
	}
	return s
}

// Has reports whether the kind is active
func (s KindSet) Has(k Kind) bool {
	return s&KindSet(k) != 0
}

// DefaultActiveKinds matches the shipping configuration: only quads are
// scanned; spheres, triangles and the ground plane stay loaded but idle.
func DefaultActiveKinds() KindSet {
	return NewKindSet(KindQuad)
}

// Scene holds the read-only primitive collections for one frame plus the
// trace configuration. Collections are append-only while the scene is
// being built and must not be mutated once a dispatch is rendering.
type Scene struct {
	Spheres   []*geometry.Sphere
	Triangles []*geometry.Triangle
	Quads     []*geometry.Quad
	Ground    *geometry.GroundPlane

	// Active selects which primitive kinds the trace scans
	Active KindSet

	// TriangleOverride, when set, replaces the material of every triangle
	// added through AddTriangle. The default is the fixed placeholder the
	// shipping configuration applies to all triangle hits; set it to nil
	// to honor per-triangle materials.
	TriangleOverride *material.Material

	// Background supplies radiance for rays that leave the scene.
	// Nil means a black sky.
	Background core.Background
}

// DefaultTriangleMaterial is the placeholder applied to triangle hits in
// the shipping configuration
func DefaultTriangleMaterial() material.Material {
	return material.Material{
		Albedo:     core.NewVec3(0.98, 0.64, 0.54),
		Specular:   core.NewVec3(0.2, 0.2, 0.2),
		Smoothness: 0.2,
	}
}

// NewScene creates an empty scene with the default active kinds and the
// default triangle material override
func NewScene() *Scene {
	override := DefaultTriangleMaterial()
	return &Scene{
		Active:           DefaultActiveKinds(),
		TriangleOverride: &override,
	}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(sphere *geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

// AddTriangle appends a triangle to the scene, applying the material
// override when one is configured
func (s *Scene) AddTriangle(tri *geometry.Triangle) {
	if s.TriangleOverride != nil {
		tri.Material = *s.TriangleOverride
	}
	s.Triangles = append(s.Triangles, tri)
}

// AddQuad appends a quad to the scene
func (s *Scene) AddQuad(quad *geometry.Quad) {
	s.Quads = append(s.Quads, quad)
}

// SetGround installs the ground plane
func (s *Scene) SetGround(ground *geometry.GroundPlane) {
	s.Ground = ground
}

// Trace finds the closest intersection of the ray with the active
// primitive collections by brute-force linear scan. Returns the
// +Inf-distance sentinel record when nothing is hit.
func (s *Scene) Trace(ray core.Ray) material.HitRecord {
	hit := material.NewMiss()

	if s.Active.Has(KindQuad) {
		for _, quad := range s.Quads {
			quad.Intersect(ray, &hit)
		}
	}
	if s.Active.Has(KindSphere) {
		for _, sphere := range s.Spheres {
			sphere.Intersect(ray, &hit)
		}
	}
	if s.Active.Has(KindTriangle) {
		for _, tri := range s.Triangles {
			tri.Intersect(ray, &hit)
		}
	}
	if s.Active.Has(KindGround) && s.Ground != nil {
		s.Ground.Intersect(ray, &hit)
	}

	return hit
}
