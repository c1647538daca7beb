package renderer

import (
	"context"
	"image"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/geometry"
	"github.com/hmartin/go-shader-tracer/pkg/material"
	"github.com/hmartin/go-shader-tracer/pkg/tracer"
)

// newFurnaceWorld builds a single huge emissive quad filling the whole
// field of view of a camera at the origin looking down -Z. The material
// reflects nothing, so every path terminates after the first bounce.
func newFurnaceWorld(emission core.Vec3) *tracer.Scene {
	world := tracer.NewScene()
	world.AddQuad(geometry.NewQuad(
		core.NewVec3(-1000, 1000, -10),
		core.NewVec3(1000, 1000, -10),
		core.NewVec3(1000, -1000, -10),
		core.NewVec3(-1000, -1000, -10),
		material.NewEmissive(emission),
	))
	return world
}

// newClosedBoxWorld builds a [-1,1]^3 box of six inward-facing quads
// around the origin, all with the given material. Rays starting inside
// always hit a wall.
func newClosedBoxWorld(mat material.Material) *tracer.Scene {
	world := tracer.NewScene()
	quads := [][4]core.Vec3{
		// z=-1 facing +Z
		{core.NewVec3(-1, 1, -1), core.NewVec3(1, 1, -1), core.NewVec3(1, -1, -1), core.NewVec3(-1, -1, -1)},
		// z=+1 facing -Z
		{core.NewVec3(1, 1, 1), core.NewVec3(-1, 1, 1), core.NewVec3(-1, -1, 1), core.NewVec3(1, -1, 1)},
		// x=-1 facing +X
		{core.NewVec3(-1, 1, 1), core.NewVec3(-1, 1, -1), core.NewVec3(-1, -1, -1), core.NewVec3(-1, -1, 1)},
		// x=+1 facing -X
		{core.NewVec3(1, 1, -1), core.NewVec3(1, 1, 1), core.NewVec3(1, -1, 1), core.NewVec3(1, -1, -1)},
		// y=-1 facing +Y
		{core.NewVec3(-1, -1, -1), core.NewVec3(1, -1, -1), core.NewVec3(1, -1, 1), core.NewVec3(-1, -1, 1)},
		// y=+1 facing -Y
		{core.NewVec3(-1, 1, 1), core.NewVec3(1, 1, 1), core.NewVec3(1, 1, -1), core.NewVec3(-1, 1, -1)},
	}
	for _, q := range quads {
		world.AddQuad(geometry.NewQuad(q[0], q[1], q[2], q[3], mat))
	}
	return world
}

func originCamera() *Camera {
	return NewCamera(CameraConfig{
		Eye:         core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: 1.0,
	})
}

func TestClosedBoxWorld_InwardNormals(t *testing.T) {
	world := newClosedBoxWorld(material.NewDiffuse(core.NewVec3(1, 1, 1)))
	for i, quad := range world.Quads {
		// Every wall's front normal must point at the box center
		center := quad.P1.Add(quad.P2).Add(quad.P3).Add(quad.P4).Multiply(0.25)
		toCenter := center.Negate().Normalize() // center of box is the origin
		if quad.Normal.Dot(toCenter) < 0.99 {
			t.Errorf("Quad %d normal %v does not face the box interior", i, quad.Normal)
		}
	}
}

func TestRaytracer_TracePixel_FurnaceFirstBounce(t *testing.T) {
	world := newFurnaceWorld(core.NewVec3(1, 1, 1))
	rt := NewRaytracer(world, originCamera(), Config{Width: 16, Height: 16, MaxBounces: 8})

	// Every camera ray hits the emissive quad on the first bounce with
	// full energy, and the material absorbs everything after that
	for _, px := range [][2]int{{0, 0}, {8, 8}, {15, 3}} {
		radiance := rt.TracePixel(px[0], px[1], mgl64.Vec2{0.5, 0.5}, 1.0)
		if radiance.Subtract(core.NewVec3(1, 1, 1)).Length() > 1e-9 {
			t.Errorf("Pixel %v: expected radiance (1,1,1), got %v", px, radiance)
		}
	}
}

func TestRaytracer_TracePixel_EmptySceneIsBlack(t *testing.T) {
	rt := NewRaytracer(tracer.NewScene(), originCamera(), Config{Width: 8, Height: 8, MaxBounces: 8})

	radiance := rt.TracePixel(4, 4, mgl64.Vec2{0.5, 0.5}, 1.0)
	if !radiance.IsZero() {
		t.Errorf("Expected black for empty scene, got %v", radiance)
	}
}

func TestRaytracer_TracePixel_BounceCap(t *testing.T) {
	// A closed box of perfectly diffuse white walls never attenuates the
	// path, so each of the capped bounces contributes exactly the wall
	// emission and the loop must stop at the limit.
	mat := material.Material{
		Albedo:   core.NewVec3(1, 1, 1),
		Emission: core.NewVec3(0.1, 0.1, 0.1),
	}
	world := newClosedBoxWorld(mat)

	const maxBounces = 8
	rt := NewRaytracer(world, originCamera(), Config{Width: 8, Height: 8, MaxBounces: maxBounces})

	radiance := rt.TracePixel(3, 5, mgl64.Vec2{0.5, 0.5}, 1.0)
	expected := 0.1 * maxBounces
	if math.Abs(radiance.X-expected) > 1e-9 {
		t.Errorf("Expected %d bounces worth of emission (%f), got %f", maxBounces, expected, radiance.X)
	}
}

func TestRaytracer_TracePixel_BackgroundHook(t *testing.T) {
	world := tracer.NewScene()
	sky := core.NewVec3(0.25, 0.5, 0.75)
	world.Background = constantBackground{color: sky}

	rt := NewRaytracer(world, originCamera(), Config{Width: 8, Height: 8, MaxBounces: 8})
	radiance := rt.TracePixel(2, 2, mgl64.Vec2{0.5, 0.5}, 1.0)

	if radiance.Subtract(sky).Length() > 1e-12 {
		t.Errorf("Expected background radiance %v, got %v", sky, radiance)
	}
}

type constantBackground struct {
	color core.Vec3
}

func (b constantBackground) Sample(ray core.Ray) core.Vec3 {
	return b.color
}

func TestRaytracer_RenderBounds(t *testing.T) {
	world := newFurnaceWorld(core.NewVec3(1, 1, 1))
	rt := NewRaytracer(world, originCamera(), Config{Width: 8, Height: 8, MaxBounces: 8})

	pixelStats := make([][]PixelStats, 8)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, 8)
	}

	bounds := image.Rect(2, 2, 6, 6)
	stats := rt.RenderBounds(bounds, pixelStats, mgl64.Vec2{0.5, 0.5}, 1.0)

	if stats.TotalPixels != 16 || stats.TotalSamples != 16 {
		t.Errorf("Expected 16 pixels / 16 samples, got %d / %d", stats.TotalPixels, stats.TotalSamples)
	}
	if pixelStats[3][3].SampleCount != 1 {
		t.Errorf("Expected one sample inside bounds, got %d", pixelStats[3][3].SampleCount)
	}
	if pixelStats[0][0].SampleCount != 0 {
		t.Errorf("Expected no samples outside bounds, got %d", pixelStats[0][0].SampleCount)
	}
}

func TestProgressiveRenderer_FurnaceImage(t *testing.T) {
	world := newFurnaceWorld(core.NewVec3(1, 1, 1))
	rt := NewRaytracer(world, originCamera(), Config{
		Width: 4, Height: 4, MaxBounces: 8, Passes: 3, TileSize: 2, NumWorkers: 2,
	})
	pr := NewProgressiveRenderer(rt, nil)

	img, stats, err := pr.Render(context.Background(), nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.TotalSamples != 4*4*3 {
		t.Errorf("Expected 48 samples over 3 passes, got %d", stats.TotalSamples)
	}

	rgba := img.(*image.RGBA)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := rgba.RGBAAt(x, y)
			if c.R != 255 || c.G != 255 || c.B != 255 || c.A != 255 {
				t.Errorf("Pixel (%d,%d): expected (255,255,255,255), got %v", x, y, c)
			}
		}
	}
}

func TestProgressiveRenderer_Cancellation(t *testing.T) {
	world := newFurnaceWorld(core.NewVec3(1, 1, 1))
	rt := NewRaytracer(world, originCamera(), Config{
		Width: 4, Height: 4, MaxBounces: 8, Passes: 100, TileSize: 2,
	})
	pr := NewProgressiveRenderer(rt, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := pr.Render(ctx, nil)
	if err == nil {
		t.Error("Expected context error for cancelled render")
	}
	if img == nil {
		t.Error("Cancelled render should still return the partial image")
	}
}
