package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

var plain = geometry.NewMaterial(core.White, geometry.NewCoefficients(0.1, 0.5, 0.3, 0.1), 5)

func TestScene_NearestHit(t *testing.T) {
	s := New("test", 1, 10)
	far := geometry.NewSphere(core.NewVec3(0, 0, -20), 2, plain)
	near := geometry.NewSphere(core.NewVec3(0, 0, -10), 2, plain)
	behind := geometry.NewSphere(core.NewVec3(0, 0, 10), 2, plain)
	s.Add(far, behind, near)

	hit, ok := s.NearestHit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	require.True(t, ok)
	assert.Same(t, near, hit.Primitive)
	assert.Equal(t, 2, hit.Index)
	assert.InDelta(t, 8.0, hit.T, 1e-9)

	_, ok = s.NearestHit(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)))
	assert.False(t, ok)
}

func TestScene_NearestHit_TieKeepsFirst(t *testing.T) {
	s := New("tie", 1, 10)
	first := geometry.NewSphere(core.NewVec3(0, 0, -10), 2, plain)
	second := geometry.NewSphere(core.NewVec3(0, 0, -10), 2, plain)
	s.Add(first, second)

	hit, ok := s.NearestHit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	require.True(t, ok)
	assert.Same(t, first, hit.Primitive)
	assert.Equal(t, 0, hit.Index)
}

func TestScene_NearestHit_IgnoresNonPositive(t *testing.T) {
	s := New("inside", 1, 10)
	// The ray starts on the surface of the floor, which must not count as a hit
	s.AddFloor()
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 10), 1, plain)
	s.Add(sphere)

	hit, ok := s.NearestHit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)))
	require.True(t, ok)
	assert.Same(t, sphere, hit.Primitive)
}

func TestScene_Digest(t *testing.T) {
	a := NewDefaultScene()
	b := NewDefaultScene()
	assert.Equal(t, a.Digest(), b.Digest())

	b.AddLight(lights.NewPointLight(core.NewVec3(1, 2, 3), core.White))
	assert.NotEqual(t, a.Digest(), b.Digest())

	c := NewDefaultScene()
	c.MaxDepth++
	assert.NotEqual(t, a.Digest(), c.Digest())
}

func TestBuiltinScenes(t *testing.T) {
	def := NewDefaultScene()
	assert.Equal(t, 9, def.GetPrimitiveCount())
	assert.Len(t, def.Lights, 3)
	assert.IsType(t, &geometry.Floor{}, def.Primitives[len(def.Primitives)-1])

	single := NewSingleSphereScene()
	assert.Equal(t, 1, single.GetPrimitiveCount())
	assert.Len(t, single.Lights, 1)
	assert.Equal(t, 1, single.MaxDepth)
}

func TestSphereGridScene(t *testing.T) {
	s := NewSphereGridScene()
	require.Equal(t, 65, s.GetPrimitiveCount())
	assert.Len(t, s.Lights, 2)

	for _, p := range s.Primitives[:64] {
		sphere, ok := p.(*geometry.Sphere)
		require.True(t, ok)
		assert.InDelta(t, sphere.Radius, sphere.Center.Z, 1e-12, "spheres rest on the floor")
		assert.Equal(t, sphere.Color, sphere.Color.Fix())
	}
}
