package geometry

import (
	"math"

	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/material"
)

// Sphere represents a sphere primitive
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests the ray against the sphere and records the closer of the
// two quadratic roots when it lies in front of the ray
func (s *Sphere) Intersect(ray core.Ray, hit *material.HitRecord) {
	// Project origin-to-center onto the ray direction
	d := ray.Origin.Subtract(s.Center)
	p1 := -ray.Direction.Dot(d)

	discriminant := p1*p1 - (d.Dot(d) - s.Radius*s.Radius)
	if discriminant < 0 {
		return
	}

	// Smaller positive root, or the far root when the origin is inside
	p2 := math.Sqrt(discriminant)
	t := p1 - p2
	if t <= 0 {
		t = p1 + p2
	}

	position := ray.At(t)
	normal := position.Subtract(s.Center).Normalize()
	hit.Record(t, position, normal, s.Material)
}
