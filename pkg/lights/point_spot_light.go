package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Light is a point light, optionally restricted to a cone of directions.
// Lights are immutable once the scene is loaded.
type Light struct {
	Position  core.Vec3  // Light position in world space
	Color     core.Color // Light color
	Spot      bool       // Whether the cone restriction applies
	Direction core.Vec3  // Cone axis, from the light outward
	Cutoff    float64    // Cone half-angle in degrees
}

// NewPointLight creates a light that shines in every direction
func NewPointLight(position core.Vec3, color core.Color) Light {
	return Light{
		Position: position,
		Color:    color,
		Cutoff:   360,
	}
}

// NewSpotLight creates a light that only illuminates points within cutoff degrees of direction
func NewSpotLight(position core.Vec3, color core.Color, direction core.Vec3, cutoffDegrees float64) Light {
	return Light{
		Position:  position,
		Color:     color,
		Spot:      true,
		Direction: direction,
		Cutoff:    cutoffDegrees,
	}
}

// Type returns the kind of light
func (l Light) Type() LightType {
	if l.Spot {
		return LightTypeSpot
	}
	return LightTypePoint
}

// DirectionFrom returns the unit vector from point toward the light
func (l Light) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}

// Illuminates reports whether point falls inside the light's cone.
// Point lights illuminate everything. An undefined angle (zero-length axis or a point
// at the light position) never excludes the point.
func (l Light) Illuminates(point core.Vec3) bool {
	if !l.Spot {
		return true
	}

	angle := point.Subtract(l.Position).AngleDegrees(l.Direction)
	if math.IsNaN(angle) {
		return true
	}
	return angle <= l.Cutoff
}
