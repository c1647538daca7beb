package geometry

import (
	"math"
	"testing"

	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/material"
)

func TestGroundPlane_Intersect_FromAbove(t *testing.T) {
	ground := NewGroundPlane(testMaterial())
	ray := core.NewRay(core.NewVec3(3, 2, 0), core.NewVec3(0, -1, 0))

	hit := material.NewMiss()
	ground.Intersect(ray, &hit)

	if hit.IsMiss() {
		t.Fatal("Expected ground hit, got miss")
	}
	if math.Abs(hit.Distance-2.0) > 1e-9 {
		t.Errorf("Expected distance 2, got %f", hit.Distance)
	}
	if hit.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normal (0,1,0), got %v", hit.Normal)
	}
	if hit.Position.Subtract(core.NewVec3(3, 0, 0)).Length() > 1e-9 {
		t.Errorf("Expected position (3,0,0), got %v", hit.Position)
	}
}

func TestGroundPlane_Intersect_Degenerate(t *testing.T) {
	ground := NewGroundPlane(testMaterial())

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
	}{
		{"parallel above plane", core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)},
		// origin.y = 0 and direction.y = 0 is the 0/0 case that must not
		// feed NaN into the hit record
		{"parallel in plane", core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)},
		{"receding from plane", core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := material.NewMiss()
			ground.Intersect(core.NewRay(tt.origin, tt.dir), &hit)
			if !hit.IsMiss() {
				t.Errorf("Expected miss, got hit at %f", hit.Distance)
			}
			if math.IsNaN(hit.Distance) {
				t.Error("Hit distance corrupted to NaN")
			}
		})
	}
}

func TestGroundPlane_CheckerboardMaterial(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	blue := core.NewVec3(0, 0, 1)
	mat := material.NewDiffuse(core.NewVec3(1, 1, 1))
	mat.Texture = material.NewCheckerboardTexture(1.0, red, blue)
	ground := NewGroundPlane(mat)

	hit := material.NewMiss()
	ground.Intersect(core.NewRay(core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, -1, 0)), &hit)
	if hit.Albedo != red {
		t.Errorf("Expected checker color %v at (0.5,0,0.5), got %v", red, hit.Albedo)
	}

	hit = material.NewMiss()
	ground.Intersect(core.NewRay(core.NewVec3(1.5, 1, 0.5), core.NewVec3(0, -1, 0)), &hit)
	if hit.Albedo != blue {
		t.Errorf("Expected checker color %v at (1.5,0,0.5), got %v", blue, hit.Albedo)
	}
}
