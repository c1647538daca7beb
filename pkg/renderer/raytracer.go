package renderer

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/shader"
	"github.com/hmartin/go-shader-tracer/pkg/tracer"
)

// Config contains rendering configuration
type Config struct {
	Width, Height int
	MaxBounces    int // Maximum trace/shade pairs per pixel sample
	Passes        int // Number of accumulation passes (one sample per pass)
	TileSize      int // Edge length of dispatch tiles
	NumWorkers    int // Parallel workers (0 = CPU count)
}

// DefaultConfig returns the shipping configuration: 8 bounces, 8×8 tiles
func DefaultConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		MaxBounces: 8,
		Passes:     64,
		TileSize:   8,
	}
}

// Raytracer evaluates camera rays against a scene. It holds only
// read-only, frame-scoped state and is safe to share across workers; all
// mutable per-pixel state lives on the stack of TracePixel.
type Raytracer struct {
	world  *tracer.Scene
	camera *Camera
	shader *shader.Shader
	config Config
}

// NewRaytracer creates a new raytracer for the given scene and camera
func NewRaytracer(world *tracer.Scene, camera *Camera, config Config) *Raytracer {
	if config.MaxBounces <= 0 {
		config.MaxBounces = 8
	}
	if config.TileSize <= 0 {
		config.TileSize = 8
	}
	return &Raytracer{
		world:  world,
		camera: camera,
		shader: &shader.Shader{Background: world.Background},
		config: config,
	}
}

// Config returns the render configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// TracePixel runs the bounce loop for a single pixel sample: generate the
// camera ray from the jittered pixel position, then alternate trace and
// shade up to the bounce limit, accumulating emitted radiance weighted by
// the ray's energy before each shade. The loop exits early once the
// energy is exactly zero in every channel.
func (rt *Raytracer) TracePixel(x, y int, jitter mgl64.Vec2, seedBase float64) core.Vec3 {
	// Map the jittered pixel to [-1,1] with +v up
	u := (float64(x)+jitter.X())/float64(rt.config.Width)*2 - 1
	v := -((float64(y)+jitter.Y())/float64(rt.config.Height)*2 - 1)

	sampler := core.NewSampler(seedBase, float64(x), float64(y))
	ray := rt.camera.Ray(u, v)

	var radiance core.Vec3
	for bounce := 0; bounce < rt.config.MaxBounces; bounce++ {
		hit := rt.world.Trace(ray)
		energy := ray.Energy
		emitted := rt.shader.Shade(&ray, &hit, sampler)
		radiance = radiance.Add(energy.MultiplyVec(emitted))

		if ray.Energy.IsZero() {
			break
		}
	}
	return radiance
}

// RenderBounds renders one sample for every pixel in bounds into the
// shared stats array. Bounds of concurrent calls never overlap, so the
// writes are disjoint.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, jitter mgl64.Vec2, seedBase float64) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			color := rt.TracePixel(x, y, jitter, seedBase)
			pixelStats[y][x].AddSample(color)
			stats.TotalSamples++
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}
