package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hmartin/go-shader-tracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ProgressiveRenderer accumulates samples over multiple passes. Every
// pass dispatches the full tile grid with a fresh sub-pixel jitter and a
// fresh RNG seed base, so successive passes decorrelate both the
// anti-aliasing offsets and the Monte Carlo noise.
type ProgressiveRenderer struct {
	raytracer  *Raytracer
	tiles      []*Tile
	pixelStats [][]PixelStats
	hostRand   *rand.Rand // per-frame jitter and seed bases, host side
	logger     core.Logger
}

// NewProgressiveRenderer creates a progressive renderer for the raytracer
func NewProgressiveRenderer(raytracer *Raytracer, logger core.Logger) *ProgressiveRenderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	config := raytracer.Config()

	pixelStats := make([][]PixelStats, config.Height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, config.Width)
	}

	return &ProgressiveRenderer{
		raytracer:  raytracer,
		tiles:      NewTileGrid(config.Width, config.Height, config.TileSize),
		pixelStats: pixelStats,
		hostRand:   rand.New(rand.NewSource(42)), // deterministic for testing
		logger:     logger,
	}
}

// RenderPass renders one accumulation pass across all tiles and returns
// the merged statistics. Each pass dispatches a fresh worker pool; the
// task queue is buffered for the full tile grid, so submission never
// blocks.
func (pr *ProgressiveRenderer) RenderPass(passNumber int) RenderStats {
	jitter := mgl64.Vec2{pr.hostRand.Float64(), pr.hostRand.Float64()}
	seedBase := 1.0 + pr.hostRand.Float64()*float64(passNumber)*100.0

	pool := NewWorkerPool(pr.raytracer, pr.raytracer.Config().NumWorkers)
	pool.Start()
	for i, tile := range pr.tiles {
		pool.SubmitTask(TileTask{
			Tile:       tile,
			Jitter:     jitter,
			SeedBase:   seedBase,
			TaskID:     i,
			PixelStats: pr.pixelStats,
		})
	}
	pool.Stop()

	var merged RenderStats
	for range pr.tiles {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		merged.TotalPixels += result.Stats.TotalPixels
		merged.TotalSamples += result.Stats.TotalSamples
	}
	if merged.TotalPixels > 0 {
		merged.AverageSamples = float64(merged.TotalSamples) / float64(merged.TotalPixels)
	}
	return merged
}

// Render runs all configured passes, accumulating samples. The context
// is checked between passes; cancellation returns the image rendered so
// far. The callback, when set, receives the image after every pass for
// interactive preview.
func (pr *ProgressiveRenderer) Render(ctx context.Context, onPass func(pass int, img image.Image)) (image.Image, RenderStats, error) {
	config := pr.raytracer.Config()
	var total RenderStats
	total.TotalPixels = config.Width * config.Height

	for pass := 1; pass <= config.Passes; pass++ {
		select {
		case <-ctx.Done():
			pr.logger.Printf("Render cancelled after %d passes\n", pass-1)
			return pr.Image(), total, ctx.Err()
		default:
		}

		stats := pr.RenderPass(pass)
		total.TotalSamples += stats.TotalSamples
		if total.TotalPixels > 0 {
			total.AverageSamples = float64(total.TotalSamples) / float64(total.TotalPixels)
		}

		if onPass != nil {
			onPass(pass, pr.Image())
		}
	}

	return pr.Image(), total, nil
}

// Image converts the accumulated pixel statistics to an image, applying
// gamma correction and an opaque alpha
func (pr *ProgressiveRenderer) Image() image.Image {
	config := pr.raytracer.Config()
	img := image.NewRGBA(image.Rect(0, 0, config.Width, config.Height))

	for y := 0; y < config.Height; y++ {
		for x := 0; x < config.Width; x++ {
			c := pr.pixelStats[y][x].Color().GammaCorrect(2.0).Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(c.X * 255.999),
				G: uint8(c.Y * 255.999),
				B: uint8(c.Z * 255.999),
				A: 255,
			})
		}
	}
	return img
}
