package core

// Ray represents a ray with an origin, direction and remaining energy.
// Energy is the path throughput: it starts at (1,1,1) and is attenuated
// by every bounce until it reaches zero and the path terminates.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Energy    Vec3
}

// NewRay creates a new ray with full energy
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		Energy:    NewVec3(1, 1, 1),
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
