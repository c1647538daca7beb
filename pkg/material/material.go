package material

import (
	"github.com/hmartin/go-shader-tracer/pkg/core"
)

// Texture evaluates a procedural albedo at a world-space point. A nil
// texture means the material's flat Albedo is used.
type Texture func(point core.Vec3) core.Vec3

// Material is the reflectance record attached to a primitive. It is
// immutable scene data; intersectors copy its fields into the hit record.
type Material struct {
	Albedo     core.Vec3 // diffuse reflectance per channel
	Specular   core.Vec3 // specular reflectance per channel
	Smoothness float64   // glossiness in [0,1], mapped to a Phong exponent when shading
	Emission   core.Vec3 // emitted radiance per channel
	Texture    Texture   // optional procedural albedo override
}

// NewDiffuse creates a matte material with the given albedo
func NewDiffuse(albedo core.Vec3) Material {
	return Material{Albedo: albedo}
}

// NewSpecular creates a glossy material
func NewSpecular(specular core.Vec3, smoothness float64) Material {
	return Material{Specular: specular, Smoothness: smoothness}
}

// NewEmissive creates a light-emitting material
func NewEmissive(emission core.Vec3) Material {
	return Material{Emission: emission}
}

// AlbedoAt returns the albedo at a world-space point, evaluating the
// procedural texture when one is set
func (m Material) AlbedoAt(point core.Vec3) core.Vec3 {
	if m.Texture != nil {
		return m.Texture(point)
	}
	return m.Albedo
}
