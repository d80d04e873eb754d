package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewDefaultScene creates the demo scene: two spheres, a pyramid, a clipped
// cylinder and cone, point and spot lights above the checkerboard floor
func NewDefaultScene() *Scene {
	s := New("default", 4, 768)

	shiny := geometry.NewCoefficients(0.04, 0.03, 0.03, 0.9)
	matte := geometry.NewCoefficients(0.4, 0.2, 0.1, 0.3)

	s.Add(
		geometry.NewSphere(core.NewVec3(40, 0, 10), 10,
			geometry.NewMaterial(core.NewColor(0, 1, 0), geometry.NewCoefficients(0.4, 0.2, 0.2, 0.2), 10)),
		geometry.NewSphere(core.NewVec3(-30, 60, 20), 20,
			geometry.NewMaterial(core.NewColor(0, 0, 1), shiny, 30)),
	)

	// Pyramid with apex above the origin
	s.Add(geometry.NewPyramid(
		[]core.Vec3{
			core.NewVec3(-20, -20, 0),
			core.NewVec3(20, -20, 0),
			core.NewVec3(20, 20, 0),
			core.NewVec3(-20, 20, 0),
		},
		core.NewVec3(0, 0, 40),
		geometry.NewMaterial(core.NewColor(1, 0, 0), matte, 5),
	)...)

	// Cylinder x² + y² = 100 around (0, -70), clipped to z in [0, 20]
	s.Add(geometry.NewQuadric(
		geometry.QuadricCoefficients{1, 1, 0, 0, 0, 0, 0, 140, 0, 4800},
		core.NewVec3(0, 0, 0), 0, 0, 20,
		geometry.NewMaterial(core.NewColor(0, 1, 1), matte, 10),
	))

	// Cone x² + y² - z² = 0 around (-60, -60), clipped to its upper nappe below z = 25
	s.Add(geometry.NewQuadric(
		geometry.QuadricCoefficients{1, 1, -1, 0, 0, 0, 120, 120, 0, 7200},
		core.NewVec3(-100, -100, 0), 0, 0, 25,
		geometry.NewMaterial(core.NewColor(1, 0, 1), geometry.NewCoefficients(0.4, 0.2, 0.1, 0.3), 15),
	))

	s.AddFloor()

	s.AddLight(
		lights.NewPointLight(core.NewVec3(70, 70, 70), core.NewColor(1, 1, 1)),
		lights.NewPointLight(core.NewVec3(-70, 70, 70), core.NewColor(0, 0, 1)),
		lights.NewSpotLight(core.NewVec3(100, -100, 100), core.NewColor(1, 1, 0),
			core.NewVec3(-1, 1, -1), 20),
	)

	return s
}

// NewSingleSphereScene creates a minimal scene: one sphere at the origin lit from
// (0, 0, 20), without a floor
func NewSingleSphereScene() *Scene {
	s := New("single-sphere", 1, 101)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 5,
		geometry.NewMaterial(core.NewColor(1, 0.5, 0.25), geometry.NewCoefficients(0.2, 0.6, 0.3, 0.5), 3)))
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 0, 20), core.White))
	return s
}
