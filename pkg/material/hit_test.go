package material

import (
	"math"
	"testing"

	"github.com/hmartin/go-shader-tracer/pkg/core"
)

func TestHitRecord_MissSentinel(t *testing.T) {
	hit := NewMiss()
	if !hit.IsMiss() {
		t.Error("Fresh record should be a miss")
	}
	if !math.IsInf(hit.Distance, 1) {
		t.Errorf("Expected +Inf distance, got %f", hit.Distance)
	}
}

func TestHitRecord_Record(t *testing.T) {
	mat := NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))

	tests := []struct {
		name     string
		existing float64 // distance already recorded (+Inf for none)
		t        float64
		accepted bool
	}{
		{"first hit", math.Inf(1), 4.0, true},
		{"closer hit replaces", 4.0, 2.0, true},
		{"farther hit rejected", 2.0, 3.0, false},
		{"equal distance rejected", 2.0, 2.0, false},
		{"behind ray rejected", math.Inf(1), -1.0, false},
		{"zero distance rejected", math.Inf(1), 0.0, false},
		{"NaN rejected", math.Inf(1), math.NaN(), false},
		{"infinite rejected", math.Inf(1), math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := NewMiss()
			hit.Distance = tt.existing

			accepted := hit.Record(tt.t, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), mat)
			if accepted != tt.accepted {
				t.Errorf("Expected accepted=%t, got %t", tt.accepted, accepted)
			}
			if !accepted && hit.Distance != tt.existing {
				t.Errorf("Rejected candidate mutated distance: %f", hit.Distance)
			}
			if accepted && hit.Distance != tt.t {
				t.Errorf("Expected distance %f, got %f", tt.t, hit.Distance)
			}
		})
	}
}

func TestHitRecord_RecordCopiesMaterial(t *testing.T) {
	mat := Material{
		Albedo:     core.NewVec3(0.9, 0.1, 0.2),
		Specular:   core.NewVec3(0.2, 0.2, 0.2),
		Smoothness: 0.7,
		Emission:   core.NewVec3(1, 2, 3),
	}

	hit := NewMiss()
	hit.Record(1.5, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), mat)

	if hit.Albedo != mat.Albedo || hit.Specular != mat.Specular ||
		hit.Smoothness != mat.Smoothness || hit.Emission != mat.Emission {
		t.Errorf("Material fields not copied verbatim: %+v", hit)
	}
}

func TestHitRecord_RecordEvaluatesTexture(t *testing.T) {
	mat := NewDiffuse(core.NewVec3(1, 1, 1))
	mat.Texture = NewCheckerboardTexture(1.0, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))

	hit := NewMiss()
	hit.Record(1.0, core.NewVec3(0.5, 0, 0.5), core.NewVec3(0, 1, 0), mat)
	if hit.Albedo != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected checker color1 at (0.5,0,0.5), got %v", hit.Albedo)
	}

	hit = NewMiss()
	hit.Record(1.0, core.NewVec3(1.5, 0, 0.5), core.NewVec3(0, 1, 0), mat)
	if hit.Albedo != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected checker color2 at (1.5,0,0.5), got %v", hit.Albedo)
	}
}
