package renderer

import "github.com/hmartin/go-shader-tracer/pkg/core"

// RenderStats contains statistics about one rendering pass
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
}

// PixelStats accumulates radiance samples for a single pixel across
// passes. Each tile owns a disjoint region of the shared stats array, so
// workers never write the same pixel concurrently.
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for the final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new radiance sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// Color returns the current average color for this pixel
func (ps *PixelStats) Color() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
