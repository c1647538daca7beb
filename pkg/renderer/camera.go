package renderer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/hmartin/go-shader-tracer/pkg/core"
)

// CameraConfig describes a camera by eye position and view parameters.
// The matrices the core consumes are derived from it once at construction.
type CameraConfig struct {
	Eye         core.Vec3
	LookAt      core.Vec3
	Up          core.Vec3
	VFov        float64 // vertical field of view in degrees
	AspectRatio float64
	Near, Far   float64 // clip planes; defaults 0.1 / 1000 when zero
}

// Camera maps normalized screen coordinates to world-space rays using a
// camera-to-world transform and an inverse projection, the way a compute
// kernel receives its camera. Both matrices are frame-scoped read-only
// inputs; Ray is safe for concurrent use.
type Camera struct {
	cameraToWorld mgl64.Mat4
	invProjection mgl64.Mat4
}

// NewCamera derives the camera matrices from a look-at configuration
func NewCamera(config CameraConfig) *Camera {
	near, far := config.Near, config.Far
	if near == 0 {
		near = 0.1
	}
	if far == 0 {
		far = 1000.0
	}

	view := mgl64.LookAtV(
		mgl64.Vec3{config.Eye.X, config.Eye.Y, config.Eye.Z},
		mgl64.Vec3{config.LookAt.X, config.LookAt.Y, config.LookAt.Z},
		mgl64.Vec3{config.Up.X, config.Up.Y, config.Up.Z},
	)
	projection := mgl64.Perspective(mgl64.DegToRad(config.VFov), config.AspectRatio, near, far)

	return NewMatrixCamera(view.Inv(), projection.Inv())
}

// NewMatrixCamera creates a camera directly from a camera-to-world
// transform and an inverse projection matrix
func NewMatrixCamera(cameraToWorld, invProjection mgl64.Mat4) *Camera {
	return &Camera{
		cameraToWorld: cameraToWorld,
		invProjection: invProjection,
	}
}

// Ray builds the world-space camera ray for normalized device coordinates
// (u, v) in [-1, 1]. The origin is the camera position; the direction is
// the unprojected screen point rotated into world space (w=0, so it
// transforms as a direction, not a point) and normalized.
func (c *Camera) Ray(u, v float64) core.Ray {
	origin := c.cameraToWorld.Mul4x1(mgl64.Vec4{0, 0, 0, 1})

	local := c.invProjection.Mul4x1(mgl64.Vec4{u, v, 0, 1})
	world := c.cameraToWorld.Mul4x1(mgl64.Vec4{local.X(), local.Y(), local.Z(), 0})

	direction := core.NewVec3(world.X(), world.Y(), world.Z()).Normalize()
	return core.NewRay(core.NewVec3(origin.X(), origin.Y(), origin.Z()), direction)
}
