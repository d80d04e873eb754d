package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Primitive is a renderable surface that can be hit by rays
type Primitive interface {
	// Intersect returns the nearest strictly positive ray parameter, or core.NoHit
	Intersect(ray core.Ray) float64
	// NormalAt returns the unit surface normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3
	// ColorAt returns the surface color at a point on the surface
	ColorAt(point core.Vec3) core.Color
	// GetMaterial returns the shading parameters of the primitive
	GetMaterial() Material
}
