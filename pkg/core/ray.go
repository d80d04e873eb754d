package core

const (
	// Epsilon guards near-zero determinants and rejects grazing hits
	Epsilon = 1e-7

	// OffsetEpsilon pushes secondary ray origins off the surface they leave
	OffsetEpsilon = 1e-10

	// NoHit is the sentinel distance returned when a ray misses a primitive
	NoHit = -1.0
)

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Offset returns a ray whose origin is nudged along its own direction
func (r Ray) Offset(eps float64) Ray {
	return Ray{Origin: r.Origin.Add(r.Direction.Multiply(eps)), Direction: r.Direction}
}
