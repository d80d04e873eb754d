package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Coefficients holds the reflection coefficients of a surface.
// Values are conceptually in [0,1] but not enforced.
type Coefficients struct {
	Ambient    float64 // ka
	Diffuse    float64 // kd
	Specular   float64 // ks
	Reflection float64 // kr
}

// NewCoefficients creates reflection coefficients in ka, kd, ks, kr order
func NewCoefficients(ka, kd, ks, kr float64) Coefficients {
	return Coefficients{Ambient: ka, Diffuse: kd, Specular: ks, Reflection: kr}
}

// Material is embedded in every primitive and supplies its shading parameters
type Material struct {
	Color        core.Color
	Coefficients Coefficients
	Shininess    int // Phong exponent
}

// NewMaterial creates a new Material
func NewMaterial(color core.Color, coefficients Coefficients, shininess int) Material {
	return Material{Color: color, Coefficients: coefficients, Shininess: shininess}
}

// GetMaterial returns the material itself
func (m Material) GetMaterial() Material {
	return m
}

// ColorAt returns the constant material color
func (m Material) ColorAt(point core.Vec3) core.Color {
	return m.Color
}
