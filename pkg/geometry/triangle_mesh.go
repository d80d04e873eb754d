package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewTriangleMesh creates one triangle per face from shared vertices.
// faces holds vertex indices, three per triangle, in winding order.
func NewTriangleMesh(vertices []core.Vec3, faces []int, material Material) ([]Primitive, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}

	triangles := make([]Primitive, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of bounds", i/3, idx)
			}
		}
		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], material))
	}

	return triangles, nil
}

// NewPyramid creates the side faces of a pyramid over a closed base polygon. The base
// itself is left open.
func NewPyramid(base []core.Vec3, apex core.Vec3, material Material) []Primitive {
	vertices := append(append([]core.Vec3{}, base...), apex)
	apexIdx := len(base)

	faces := make([]int, 0, 3*len(base))
	for i := range base {
		faces = append(faces, i, (i+1)%len(base), apexIdx)
	}

	// Indices are generated in range
	triangles, _ := NewTriangleMesh(vertices, faces, material)
	return triangles
}
