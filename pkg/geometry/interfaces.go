package geometry

import (
	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/material"
)

// Intersectable is implemented by every primitive shape. Intersect tests
// the ray against the shape and updates the hit record in place, but only
// when the intersection is in front of the ray (t > 0) and strictly closer
// than the current best. A miss leaves the record untouched.
type Intersectable interface {
	Intersect(ray core.Ray, hit *material.HitRecord)
}
