package geometry

import (
	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/material"
)

// GroundPlane is the implicit plane y=0 with normal (0,1,0). It carries a
// fixed material, typically with a checkerboard texture attached.
type GroundPlane struct {
	Material material.Material
}

// NewGroundPlane creates a ground plane with the given material
func NewGroundPlane(mat material.Material) *GroundPlane {
	return &GroundPlane{Material: mat}
}

var groundNormal = core.NewVec3(0, 1, 0)

// Intersect tests the ray against the y=0 plane. Rays parallel to the
// plane miss; the explicit guard keeps a 0/0 NaN out of the hit record.
func (g *GroundPlane) Intersect(ray core.Ray, hit *material.HitRecord) {
	if ray.Direction.Y == 0 {
		return
	}
	t := -ray.Origin.Y / ray.Direction.Y
	hit.Record(t, ray.At(t), groundNormal, g.Material)
}
