package shader

import (
	"math"

	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/material"
)

// Offset for new ray origins along the surface normal, avoiding immediate
// self-intersection with the surface just hit.
const originEpsilon = 0.001

// Shader turns a traced hit into the next bounce: it mutates the ray's
// origin, direction and energy in place and returns the radiance emitted
// at this bounce.
type Shader struct {
	// Background supplies radiance for rays that miss the scene.
	// Nil means black.
	Background core.Background
}

// NewShader creates a shader with no background
func NewShader() *Shader {
	return &Shader{}
}

// smoothnessToPhongAlpha maps smoothness in [0,1] to a Phong lobe
// exponent in [1, 10000]
func smoothnessToPhongAlpha(smoothness float64) float64 {
	return math.Pow(10000.0, smoothness*smoothness)
}

// Shade evaluates the hit and advances the ray one bounce, returning the
// emitted radiance of this bounce.
//
// On a miss the ray's energy is zeroed, terminating the path, and the
// background hook's radiance is returned. On a hit, a roulette draw picks
// the specular or diffuse response weighted by mean reflectance, the ray
// is redirected by hemisphere sampling, and the energy is scaled by the
// chosen branch's throughput divided by its selection probability so the
// estimator stays unbiased.
func (sh *Shader) Shade(ray *core.Ray, hit *material.HitRecord, sampler *core.Sampler) core.Vec3 {
	if hit.IsMiss() {
		ray.Energy = core.Vec3{}
		if sh.Background != nil {
			return sh.Background.Sample(*ray)
		}
		return core.Vec3{}
	}

	ray.Origin = hit.Position.Add(hit.Normal.Multiply(originEpsilon))

	// Energy-conservation clamp: diffuse and specular reflectance may not
	// sum above one in any channel
	albedo := hit.Albedo.Min(core.NewVec3(1, 1, 1).Subtract(hit.Specular))

	specChance := hit.Specular.Mean()
	diffChance := albedo.Mean()
	sum := specChance + diffChance
	if sum <= 0 {
		// Pure absorber: nothing to reflect, so the roulette would divide
		// by zero. Kill the path and keep only the emission.
		ray.Energy = core.Vec3{}
		return hit.Emission
	}
	specChance /= sum
	diffChance /= sum

	if sampler.Draw() < specChance {
		// Glossy specular bounce around the mirror reflection
		alpha := smoothnessToPhongAlpha(hit.Smoothness)
		ray.Direction = core.SampleHemisphere(sampler, ray.Direction.Reflect(hit.Normal), alpha)
		f := (alpha + 2) / (alpha + 1)
		// The cosine term is deliberately left unclamped: grazing samples
		// under the horizon carry a small negative weight.
		cosine := hit.Normal.Dot(ray.Direction)
		ray.Energy = ray.Energy.MultiplyVec(hit.Specular.Multiply(cosine * f / specChance))
	} else {
		// Cosine-weighted diffuse bounce around the surface normal
		ray.Direction = core.SampleHemisphere(sampler, hit.Normal, 1.0)
		ray.Energy = ray.Energy.MultiplyVec(albedo.Multiply(1.0 / diffChance))
	}

	return hit.Emission
}
