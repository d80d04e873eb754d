package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator shades hits with ambient, Lambert and Phong terms gated by shadow
// rays, plus mirror reflection bounded by the scene's recursion depth
type WhittedIntegrator struct {
	Background core.Color // Returned for primary rays that hit nothing
}

// NewWhittedIntegrator creates a new Whitted-style integrator
func NewWhittedIntegrator(background core.Color) *WhittedIntegrator {
	return &WhittedIntegrator{Background: background}
}

// bounce is the locally lit color of one reflection level and the reflectivity that
// scales the level after it
type bounce struct {
	local      core.Color
	reflection float64
}

// RayColor finds the nearest primitive along the ray and shades it at level 1
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Color {
	hit, isHit := s.NearestHit(ray)
	if !isHit {
		return w.Background
	}

	_, color := w.Shade(s, hit.Primitive, ray, 1)
	return color.Fix()
}

// Shade intersects the ray with a single primitive. At level 0 only the distance is
// computed and the color is black. At level >= 1 the hit is fully shaded, following
// reflections until level reaches the scene's MaxDepth.
//
// Reflections are traced iteratively: each level's local color is stacked and then
// folded back from the deepest level, clamping after every addition.
func (w *WhittedIntegrator) Shade(s *scene.Scene, p geometry.Primitive, ray core.Ray, level int) (float64, core.Color) {
	tmin := p.Intersect(ray)
	if level == 0 || tmin <= 0 {
		return tmin, core.Black
	}

	bounces := make([]bounce, 0, max(1, s.MaxDepth-level+1))
	current, currentRay, currentT := p, ray, tmin

	for {
		local, reflected := w.shadeLocal(s, current, currentRay, currentT)
		bounces = append(bounces, bounce{
			local:      local,
			reflection: current.GetMaterial().Coefficients.Reflection,
		})

		if level >= s.MaxDepth {
			break
		}

		hit, isHit := s.NearestHit(reflected)
		if !isHit {
			break
		}
		current, currentRay, currentT = hit.Primitive, reflected, hit.T
		level++
	}

	color := bounces[len(bounces)-1].local
	for i := len(bounces) - 2; i >= 0; i-- {
		color = bounces[i].local.Add(color.Scale(bounces[i].reflection)).Fix()
	}

	return tmin, color
}

// shadeLocal computes ambient plus per-light diffuse and specular at the hit, and
// returns the mirror-reflected ray leaving the hit point
func (w *WhittedIntegrator) shadeLocal(s *scene.Scene, p geometry.Primitive, ray core.Ray, tmin float64) (core.Color, core.Ray) {
	point := ray.At(tmin)
	mat := p.GetMaterial()
	surface := p.ColorAt(point)

	color := surface.Scale(mat.Coefficients.Ambient).Fix()
	normal := p.NormalAt(point).Normalize()

	for _, light := range s.Lights {
		lightDir := light.DirectionFrom(point)

		if !light.Illuminates(point) {
			continue
		}

		shadowRay := core.NewRay(point, lightDir).Offset(core.OffsetEpsilon)
		if w.InShadow(s, shadowRay, tmin) {
			continue
		}

		lambert := math.Max(normal.Dot(lightDir), 0)
		r := normal.Multiply(2 * normal.Dot(lightDir)).Subtract(lightDir).Normalize()

		// The power is taken before clamping, so even exponents also highlight
		// reflections pointing against the ray
		phong := math.Max(math.Pow(ray.Direction.Dot(r), float64(mat.Shininess)), 0)

		diffuse := light.Color.Scale(mat.Coefficients.Diffuse * lambert).Mul(surface)
		color = color.Add(diffuse).Fix()

		specular := light.Color.Scale(mat.Coefficients.Specular * phong)
		color = color.Add(specular).Fix()
	}

	reflectedDir := ray.Direction.Reflect(normal).Normalize()
	reflected := core.NewRay(point, reflectedDir).Offset(core.OffsetEpsilon)

	return color, reflected
}

// InShadow reports whether any primitive is hit along the shadow ray closer than tmin,
// the distance of the shaded point from its own ray origin
func (w *WhittedIntegrator) InShadow(s *scene.Scene, shadowRay core.Ray, tmin float64) bool {
	hit, isHit := s.NearestHit(shadowRay)
	return isHit && hit.T < tmin
}
