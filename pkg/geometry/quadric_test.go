package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// unit sphere: x² + y² + z² - 1 = 0
var unitSphereCoeffs = QuadricCoefficients{1, 1, 1, 0, 0, 0, 0, 0, 0, -1}

func TestQuadric_Intersect_Unbounded(t *testing.T) {
	quadric := NewQuadric(unitSphereCoeffs, core.Vec3{}, 0, 0, 0, testMaterial)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	assert.InDelta(t, 4.0, quadric.Intersect(ray), 1e-9)

	// Inside the surface only the far root is forward
	inside := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	assert.InDelta(t, 1.0, quadric.Intersect(inside), 1e-9)

	miss := core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1))
	assert.Equal(t, core.NoHit, quadric.Intersect(miss))
}

func TestQuadric_Intersect_MatchesSphere(t *testing.T) {
	quadric := NewQuadric(unitSphereCoeffs, core.Vec3{}, 0, 0, 0, testMaterial)
	sphere := NewSphere(core.Vec3{}, 1, testMaterial)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(3, 1, 0.5), core.NewVec3(-3, -1, -0.4)),
		core.NewRay(core.NewVec3(-2, -2, -2), core.NewVec3(1, 1, 1)),
		core.NewRay(core.NewVec3(0.5, 0, 0), core.NewVec3(0, 1, 0)),
	}
	for i, ray := range rays {
		assert.InDelta(t, sphere.Intersect(ray), quadric.Intersect(ray), 1e-9, "ray %d", i)
	}
}

func TestQuadric_Intersect_Clipped(t *testing.T) {
	// Keep only the part of the unit sphere with z in [0, 2]
	quadric := NewQuadric(unitSphereCoeffs, core.NewVec3(0, 0, 0), 0, 0, 2, testMaterial)

	// Near root at z = -1 is clipped away, so the far root on the upper cap is used
	fromBelow := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	assert.InDelta(t, 6.0, quadric.Intersect(fromBelow), 1e-9)

	// A ray whose both hits lie below z = 0 misses
	low := core.NewRay(core.NewVec3(-5, 0, -0.5), core.NewVec3(1, 0, 0))
	assert.Equal(t, core.NoHit, quadric.Intersect(low))

	// A ray through the upper half hits normally
	high := core.NewRay(core.NewVec3(-5, 0, 0.5), core.NewVec3(1, 0, 0))
	tHit := quadric.Intersect(high)
	require.Greater(t, tHit, 0.0)
	assert.InDelta(t, 0.5, high.At(tHit).Z, 1e-9)
	assert.Less(t, high.At(tHit).X, 0.0)
}

func TestQuadric_Intersect_DegenerateLinear(t *testing.T) {
	// Cylinder x² + y² = 4 along z; a ray along z makes the quadratic term vanish
	cylinder := NewQuadric(QuadricCoefficients{1, 1, 0, 0, 0, 0, 0, 0, 0, -4}, core.Vec3{}, 0, 0, 0, testMaterial)
	along := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	assert.Equal(t, core.NoHit, cylinder.Intersect(along))

	// Plane z = 3 written as a quadric: Iz + J = 0
	plane := NewQuadric(QuadricCoefficients{0, 0, 0, 0, 0, 0, 0, 0, 1, -3}, core.Vec3{}, 0, 0, 0, testMaterial)
	ray := core.NewRay(core.NewVec3(1, 1, 0), core.NewVec3(0, 0, 1))
	assert.InDelta(t, 3.0, plane.Intersect(ray), 1e-9)

	backwards := core.NewRay(core.NewVec3(1, 1, 0), core.NewVec3(0, 0, -1))
	assert.Equal(t, core.NoHit, plane.Intersect(backwards))
}

func TestQuadric_NormalAt(t *testing.T) {
	quadric := NewQuadric(unitSphereCoeffs, core.Vec3{}, 0, 0, 0, testMaterial)

	n := quadric.NormalAt(core.NewVec3(0, 1, 0))
	assert.InDelta(t, 0.0, n.X, 1e-12)
	assert.InDelta(t, 1.0, n.Y, 1e-12)
	assert.InDelta(t, 0.0, n.Z, 1e-12)

	// Cross terms and linear terms contribute to the gradient
	saddle := NewQuadric(QuadricCoefficients{0, 0, 0, 1, 0, 0, 0, 0, -1, 0}, core.Vec3{}, 0, 0, 0, testMaterial)
	g := saddle.NormalAt(core.NewVec3(1, 2, 0))
	expected := core.NewVec3(2, 1, -1).Normalize()
	assert.InDelta(t, expected.X, g.X, 1e-12)
	assert.InDelta(t, expected.Y, g.Y, 1e-12)
	assert.InDelta(t, expected.Z, g.Z, 1e-12)
}
