package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Background supplies radiance for rays that leave the scene without
// hitting anything. The default build has no background (black sky);
// implementations plug in skybox or gradient sampling.
type Background interface {
	Sample(ray Ray) Vec3
}
