package material

import (
	"math"

	"github.com/hmartin/go-shader-tracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural planar checkerboard pattern
// evaluated in the XZ plane. checkSize is the world-space edge length of
// one check. Typically attached to the ground plane material.
func NewCheckerboardTexture(checkSize float64, color1, color2 core.Vec3) Texture {
	return func(point core.Vec3) core.Vec3 {
		checkX := int(math.Floor(point.X / checkSize))
		checkZ := int(math.Floor(point.Z / checkSize))
		if (checkX+checkZ)%2 == 0 {
			return color1
		}
		return color2
	}
}

// NewGradientTexture creates a vertical gradient from color1 (bottom) to
// color2 (top) over the given height range
func NewGradientTexture(yMin, yMax float64, color1, color2 core.Vec3) Texture {
	return func(point core.Vec3) core.Vec3 {
		t := (point.Y - yMin) / (yMax - yMin)
		t = math.Max(0, math.Min(1, t))
		return color1.Multiply(1.0 - t).Add(color2.Multiply(t))
	}
}
