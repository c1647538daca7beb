package geometry

import (
	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/material"
)

// Quad represents a planar convex quadrilateral with clockwise-wound
// corners P1..P4. The plane normal and plane equation offset are
// precomputed at construction.
type Quad struct {
	P1, P2, P3, P4 core.Vec3
	Normal         core.Vec3 // front-face plane normal
	D              float64   // plane equation offset: Normal·X = D
	Material       material.Material
}

// NewQuad creates a new quad from four clockwise corners. The corners are
// assumed coplanar; the plane is taken from P1 and the winding.
func NewQuad(p1, p2, p3, p4 core.Vec3, mat material.Material) *Quad {
	normal := p4.Subtract(p1).Cross(p2.Subtract(p1)).Normalize()
	return &Quad{
		P1:       p1,
		P2:       p2,
		P3:       p3,
		P4:       p4,
		Normal:   normal,
		D:        normal.Dot(p1),
		Material: mat,
	}
}

// Intersect tests the ray against the quad: back-face cull, plane
// intersection from the precomputed equation, then four edge-sign checks
// for the point-in-quad test.
func (q *Quad) Intersect(ray core.Ray, hit *material.HitRecord) {
	// Cull when the ray does not oppose the front normal. This also
	// rejects rays parallel to the plane before the division below.
	denom := ray.Direction.Dot(q.Normal)
	if denom >= 0 {
		return
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denom
	if t <= 0 || t >= hit.Distance {
		return
	}
	point := ray.At(t)

	// The point is inside the quad when it lies on the inner side of all
	// four edges. Edge normals are cross(edge, normal) projected checks.
	if !q.insideEdge(q.P1, q.P2, point) ||
		!q.insideEdge(q.P2, q.P3, point) ||
		!q.insideEdge(q.P3, q.P4, point) ||
		!q.insideEdge(q.P4, q.P1, point) {
		return
	}

	hit.Record(t, point, q.Normal, q.Material)
}

// insideEdge reports whether the point lies on the interior side of the
// edge from a to b
func (q *Quad) insideEdge(a, b, point core.Vec3) bool {
	edgeNormal := b.Subtract(a).Cross(q.Normal)
	return point.Subtract(a).Dot(edgeNormal) >= 0
}
