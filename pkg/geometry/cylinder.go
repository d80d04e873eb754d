package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewCylinder creates an open cylinder parallel to the z axis as a clipped quadric:
//
//	(x - cx)² + (y - cy)² - r² = 0,  baseCenter.Z <= z <= baseCenter.Z + height
//
// A zero height leaves the cylinder infinite.
func NewCylinder(baseCenter core.Vec3, radius, height float64, material Material) *Quadric {
	cx, cy := baseCenter.X, baseCenter.Y
	return NewQuadric(
		QuadricCoefficients{1, 1, 0, 0, 0, 0, -2 * cx, -2 * cy, 0, cx*cx + cy*cy - radius*radius},
		baseCenter, 0, 0, height, material,
	)
}
