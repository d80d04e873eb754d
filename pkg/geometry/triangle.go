package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V1, V2, V3 core.Vec3 // The three vertices
	Material
	normal core.Vec3 // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v1, v2, v3 core.Vec3, material Material) *Triangle {
	t := &Triangle{
		V1:       v1,
		V2:       v2,
		V3:       v3,
		Material: material,
	}

	// Precompute normal for efficiency
	t.computeNormal()

	return t
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.V2.Subtract(t.V1)
	edge2 := t.V3.Subtract(t.V1)

	// Orientation follows the vertex order and is never flipped toward the viewer
	t.normal = edge1.Cross(edge2).Normalize()
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) float64 {
	edge1 := t.V2.Subtract(t.V1)
	edge2 := t.V3.Subtract(t.V1)

	// Calculate determinant
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray is parallel to the plane of the triangle
	if a > -core.Epsilon && a < core.Epsilon {
		return core.NoHit
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V1)
	u := f * s.Dot(h)

	// Check if intersection is outside triangle
	if u < 0.0 || u > 1.0 {
		return core.NoHit
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)

	// Check if intersection is outside triangle
	if v < 0.0 || u+v > 1.0 {
		return core.NoHit
	}

	tParam := f * edge2.Dot(q)
	if tParam <= core.Epsilon {
		return core.NoHit
	}

	return tParam
}

// NormalAt returns the triangle's normal vector, which is the same at every point
func (t *Triangle) NormalAt(point core.Vec3) core.Vec3 {
	return t.normal
}
