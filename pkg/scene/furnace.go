package scene

import (
	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/geometry"
	"github.com/hmartin/go-shader-tracer/pkg/material"
	"github.com/hmartin/go-shader-tracer/pkg/renderer"
	"github.com/hmartin/go-shader-tracer/pkg/tracer"
)

// NewFurnaceScene creates a calibration scene: a single emissive quad
// covering the whole field of view. Every camera ray hits it on the
// first bounce, so every pixel of the converged image is exactly the
// quad's emission. Useful for validating the render pipeline end to end.
func NewFurnaceScene() *Scene {
	world := tracer.NewScene()
	world.AddQuad(geometry.NewQuad(
		core.NewVec3(-1000, 1000, -10),
		core.NewVec3(1000, 1000, -10),
		core.NewVec3(1000, -1000, -10),
		core.NewVec3(-1000, -1000, -10),
		material.NewEmissive(core.NewVec3(1, 1, 1)),
	))

	return &Scene{
		Name:  "furnace",
		World: world,
		Camera: renderer.CameraConfig{
			Eye:         core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        60,
			AspectRatio: 1.0,
		},
	}
}
