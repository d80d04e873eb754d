package scene

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering.
// A scene is read-only once rendering starts and may be shared between goroutines.
type Scene struct {
	Name       string
	Primitives []geometry.Primitive // Objects in the scene, in insertion order
	Lights     []lights.Light       // Lights in the scene
	MaxDepth   int                  // Recursion level limit for reflections
	Resolution int                  // Output image size in pixels per side
}

// Hit identifies the primitive nearest along a ray
type Hit struct {
	Primitive geometry.Primitive
	Index     int     // Position of the primitive in Scene.Primitives
	T         float64 // Ray parameter of the intersection
}

// New creates an empty scene
func New(name string, maxDepth, resolution int) *Scene {
	return &Scene{
		Name:       name,
		Primitives: make([]geometry.Primitive, 0),
		Lights:     make([]lights.Light, 0),
		MaxDepth:   maxDepth,
		Resolution: resolution,
	}
}

// Add appends primitives to the scene
func (s *Scene) Add(primitives ...geometry.Primitive) {
	s.Primitives = append(s.Primitives, primitives...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(l ...lights.Light) {
	s.Lights = append(s.Lights, l...)
}

// AddFloor appends the default checkerboard floor
func (s *Scene) AddFloor() {
	s.Add(geometry.NewDefaultFloor())
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}

// NearestHit scans every primitive and returns the one with the smallest strictly
// positive intersection distance. Ties keep the earliest primitive.
func (s *Scene) NearestHit(ray core.Ray) (Hit, bool) {
	nearest := Hit{Index: -1, T: math.Inf(1)}

	for i, p := range s.Primitives {
		t := p.Intersect(ray)
		if t > 0 && t < nearest.T {
			nearest = Hit{Primitive: p, Index: i, T: t}
		}
	}

	return nearest, nearest.Index >= 0
}

// Digest returns a content hash of the scene, stable across runs for identical scenes
func (s *Scene) Digest() uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "depth=%d resolution=%d\n", s.MaxDepth, s.Resolution)
	for _, p := range s.Primitives {
		fmt.Fprintf(d, "%T%+v\n", p, p)
	}
	for _, l := range s.Lights {
		fmt.Fprintf(d, "%+v\n", l)
	}
	return d.Sum64()
}
