package scene

import (
	"fmt"
	"sort"

	"github.com/hmartin/go-shader-tracer/pkg/renderer"
	"github.com/hmartin/go-shader-tracer/pkg/tracer"
)

// Scene bundles a world with the camera it was authored for
type Scene struct {
	Name   string
	World  *tracer.Scene
	Camera renderer.CameraConfig
}

// PrimitiveCount returns the total number of primitives in the world,
// active or not
func (s *Scene) PrimitiveCount() int {
	count := len(s.World.Spheres) + len(s.World.Triangles) + len(s.World.Quads)
	if s.World.Ground != nil {
		count++
	}
	return count
}

var constructors = map[string]func() *Scene{
	"cornell": NewCornellScene,
	"furnace": NewFurnaceScene,
}

// Names returns the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the named scene
func New(name string) (*Scene, error) {
	constructor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return constructor(), nil
}
