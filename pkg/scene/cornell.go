package scene

import (
	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/geometry"
	"github.com/hmartin/go-shader-tracer/pkg/material"
	"github.com/hmartin/go-shader-tracer/pkg/renderer"
	"github.com/hmartin/go-shader-tracer/pkg/tracer"
)

// NewCornellScene creates a classic Cornell box built from quads with a
// single area light below the ceiling. All wall normals face the box
// interior; the front face is open toward the camera.
//
// The scene also carries two spheres and a triangle panel. With the
// default active kinds only the quads are scanned; the extra primitives
// render when their kinds are switched on.
func NewCornellScene() *Scene {
	world := tracer.NewScene()

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))

	// Standard 555-unit box
	b := 555.0

	// Floor, facing +Y
	world.AddQuad(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(b, 0, 0),
		core.NewVec3(b, 0, b),
		core.NewVec3(0, 0, b),
		white,
	))

	// Ceiling, facing -Y
	world.AddQuad(geometry.NewQuad(
		core.NewVec3(0, b, b),
		core.NewVec3(b, b, b),
		core.NewVec3(b, b, 0),
		core.NewVec3(0, b, 0),
		white,
	))

	// Back wall at z=555, facing -Z
	world.AddQuad(geometry.NewQuad(
		core.NewVec3(b, b, b),
		core.NewVec3(0, b, b),
		core.NewVec3(0, 0, b),
		core.NewVec3(b, 0, b),
		white,
	))

	// Left wall at x=0, facing +X
	world.AddQuad(geometry.NewQuad(
		core.NewVec3(0, b, b),
		core.NewVec3(0, b, 0),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, b),
		red,
	))

	// Right wall at x=555, facing -X
	world.AddQuad(geometry.NewQuad(
		core.NewVec3(b, b, 0),
		core.NewVec3(b, b, b),
		core.NewVec3(b, 0, b),
		core.NewVec3(b, 0, 0),
		green,
	))

	// Ceiling light, slightly below the ceiling, facing down
	lightSize := 130.0
	lo := (b - lightSize) / 2.0
	hi := lo + lightSize
	world.AddQuad(geometry.NewQuad(
		core.NewVec3(lo, b-1, hi),
		core.NewVec3(hi, b-1, hi),
		core.NewVec3(hi, b-1, lo),
		core.NewVec3(lo, b-1, lo),
		material.NewEmissive(core.NewVec3(15, 15, 15)),
	))

	// Idle unless KindSphere is activated
	world.AddSphere(geometry.NewSphere(
		core.NewVec3(185, 82.5, 169),
		82.5,
		material.NewSpecular(core.NewVec3(0.8, 0.8, 0.9), 0.9),
	))
	world.AddSphere(geometry.NewSphere(
		core.NewVec3(370, 90, 351),
		90,
		material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73)),
	))

	// Idle unless KindTriangle is activated; picks up the scene's
	// triangle material override
	world.AddTriangle(geometry.NewTriangle(
		core.NewVec3(278, 400, 300),
		core.NewVec3(378, 200, 300),
		core.NewVec3(178, 200, 300),
		material.Material{},
	))

	return &Scene{
		Name:  "cornell",
		World: world,
		Camera: renderer.CameraConfig{
			Eye:         core.NewVec3(278, 278, -800),
			LookAt:      core.NewVec3(278, 278, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        40,
			AspectRatio: 1.0,
		},
	}
}
