package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect returns the distance to the nearest forward hit on the sphere
func (s *Sphere) Intersect(ray core.Ray) float64 {
	if ray.Direction.IsZero() {
		return core.NoHit
	}

	// Ray origin in the sphere's local frame
	oc := ray.Origin.Subtract(s.Center)

	// Direction is unit length, so a = 1: t² + 2t(d·o) + (o·o − r²) = 0
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return core.NoHit
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / 2
	t2 := (-b + sqrtD) / 2

	// Prefer the closer root, fall back to the farther one when the origin is inside
	switch {
	case t1 > 0:
		return t1
	case t2 > 0:
		return t2
	default:
		return core.NoHit
	}
}

// NormalAt returns the outward unit normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
