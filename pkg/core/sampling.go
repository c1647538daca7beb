package core

import (
	"math"
)

// TangentFrame builds an orthonormal basis (tangent, binormal) around the
// given normal. The helper axis switches from (1,0,0) to (0,0,1) when the
// normal is nearly parallel to X, which would otherwise degenerate the
// cross product.
func TangentFrame(normal Vec3) (tangent, binormal Vec3) {
	helper := NewVec3(1, 0, 0)
	if math.Abs(normal.X) > 0.99 {
		helper = NewVec3(0, 0, 1)
	}
	tangent = normal.Cross(helper).Normalize()
	binormal = normal.Cross(tangent)
	return tangent, binormal
}

// SampleHemisphere draws a random direction in the hemisphere around the
// given normal, consuming two values from the sampler.
//
// The lobe exponent controls how tightly samples cluster around the normal:
// lobe 1 gives cosine-weighted diffuse sampling, larger exponents give a
// Phong-style glossy lobe (pass the mirror reflection as the normal for
// specular bounces).
func SampleHemisphere(sampler *Sampler, normal Vec3, lobe float64) Vec3 {
	cosTheta := math.Pow(sampler.Draw(), 1.0/(1.0+lobe))
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sampler.Draw()

	// Tangent-space direction, then rotate into world space
	tangent, binormal := TangentFrame(normal)
	return tangent.Multiply(math.Cos(phi) * sinTheta).
		Add(binormal.Multiply(math.Sin(phi) * sinTheta)).
		Add(normal.Multiply(cosTheta))
}
