package material

import (
	"math"

	"github.com/hmartin/go-shader-tracer/pkg/core"
)

// HitRecord is the best intersection found so far for one ray. Distance
// starts at +Inf and only ever decreases as closer intersections are
// recorded; a record still at +Inf means the ray missed the scene.
type HitRecord struct {
	Distance float64
	Position core.Vec3
	Normal   core.Vec3

	// Material fields copied from the intersected primitive
	Albedo     core.Vec3
	Specular   core.Vec3
	Smoothness float64
	Emission   core.Vec3
}

// NewMiss returns the sentinel record for "no intersection yet"
func NewMiss() HitRecord {
	return HitRecord{Distance: math.Inf(1)}
}

// IsMiss reports whether no intersection has been recorded
func (h *HitRecord) IsMiss() bool {
	return math.IsInf(h.Distance, 1)
}

// Record conditionally updates the hit with a candidate intersection.
// The candidate is accepted only when it is in front of the ray (t > 0),
// strictly closer than the current best, and finite. Returns whether the
// update was applied.
func (h *HitRecord) Record(t float64, position, normal core.Vec3, mat Material) bool {
	if t <= 0 || t >= h.Distance || math.IsNaN(t) {
		return false
	}
	h.Distance = t
	h.Position = position
	h.Normal = normal
	h.Albedo = mat.AlbedoAt(position)
	h.Specular = mat.Specular
	h.Smoothness = mat.Smoothness
	h.Emission = mat.Emission
	return true
}
