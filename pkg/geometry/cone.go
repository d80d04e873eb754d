package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewCone creates a cone with its axis parallel to z as a clipped quadric:
//
//	(x - ax)² + (y - ay)² - k²(z - az)² = 0
//
// where k is the slope, the radius gained per unit of height. A positive height keeps
// only the upper nappe between the apex and apex.Z + height; zero keeps both nappes.
func NewCone(apex core.Vec3, slope, height float64, material Material) (*Quadric, error) {
	if slope <= 0 {
		return nil, fmt.Errorf("cone slope must be positive, got %f", slope)
	}
	if height < 0 {
		return nil, fmt.Errorf("cone height must be non-negative, got %f", height)
	}

	ax, ay, az := apex.X, apex.Y, apex.Z
	k2 := slope * slope
	return NewQuadric(
		QuadricCoefficients{1, 1, -k2, 0, 0, 0, -2 * ax, -2 * ay, 2 * k2 * az, ax*ax + ay*ay - k2*az*az},
		apex, 0, 0, height, material,
	), nil
}
