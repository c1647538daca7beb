package geometry

import (
	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/material"
)

// Triangle represents a single triangle primitive. Vertices are wound
// clockwise as seen from the front face; back faces are culled.
type Triangle struct {
	P1, P2, P3 core.Vec3
	Material   material.Material
}

// NewTriangle creates a new triangle
func NewTriangle(p1, p2, p3 core.Vec3, mat material.Material) *Triangle {
	return &Triangle{P1: p1, P2: p2, P3: p3, Material: mat}
}

const triangleEpsilon = 1e-8

// Intersect runs Möller–Trumbore against the triangle. The determinant
// test culls back faces along with near-parallel rays.
func (tr *Triangle) Intersect(ray core.Ray, hit *material.HitRecord) {
	edge1 := tr.P2.Subtract(tr.P1)
	edge2 := tr.P3.Subtract(tr.P1)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if det < triangleEpsilon {
		return
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(tr.P1)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return
	}

	t := edge2.Dot(qvec) * invDet
	normal := edge1.Cross(edge2).Normalize()
	hit.Record(t, ray.At(t), normal, tr.Material)
}
