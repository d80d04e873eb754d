package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// Convert from OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(r, g, blue).Fix()
}

// NewSphereGridScene creates a grid of colored, partly reflective spheres resting on
// the checkerboard floor
func NewSphereGridScene() *Scene {
	s := New("sphere-grid", 3, 512)

	gridSize := 8
	spacing := 20.0
	radius := 6.0

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := (float64(i) - float64(gridSize-1)/2) * spacing
			y := (float64(j) - float64(gridSize-1)/2) * spacing
			position := core.NewVec3(x, y, radius)

			// Hue varies across x, chroma across y
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			// Every third sphere is a strong mirror
			reflection := 0.2 + 0.3*float64((i+j)%3)
			coefficients := geometry.NewCoefficients(0.2, 0.5, 0.4, reflection)

			s.Add(geometry.NewSphere(position, radius, geometry.NewMaterial(color, coefficients, 20)))
		}
	}

	s.AddFloor()

	s.AddLight(
		lights.NewPointLight(core.NewVec3(60, -80, 150), core.NewColor(0.9, 0.9, 0.85)),
		lights.NewSpotLight(core.NewVec3(-100, -100, 120), core.NewColor(0.6, 0.6, 0.9),
			core.NewVec3(1, 1, -1.2), 30),
	)

	return s
}
