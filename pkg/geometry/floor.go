package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const (
	DefaultFloorWidth     = 1000.0
	DefaultFloorTileSize  = 20.0
	DefaultFloorShininess = 30
)

// DefaultFloorCoefficients are the fixed coefficients of the synthesized floor
var DefaultFloorCoefficients = NewCoefficients(0.3, 0.3, 0.3, 0.3)

var floorNormal = core.NewVec3(0, 0, 1)

// Floor is a checkerboard on the z = 0 plane, bounded to a square centered on the origin
type Floor struct {
	Reference core.Vec3 // Corner of the square, (-width/2, -width/2, 0)
	TileSize  float64
	Material
}

// NewFloor creates a floor of the given total width and tile size
func NewFloor(floorWidth, tileSize float64, material Material) *Floor {
	return &Floor{
		Reference: core.NewVec3(-floorWidth/2, -floorWidth/2, 0),
		TileSize:  tileSize,
		Material:  material,
	}
}

// NewDefaultFloor creates the 1000-unit floor with 20-unit tiles added to every loaded scene
func NewDefaultFloor() *Floor {
	return NewFloor(DefaultFloorWidth, DefaultFloorTileSize,
		NewMaterial(core.Black, DefaultFloorCoefficients, DefaultFloorShininess))
}

// Intersect returns the distance to the z = 0 plane if the hit lies on the floor
func (f *Floor) Intersect(ray core.Ray) float64 {
	denominator := floorNormal.Dot(ray.Direction)
	if denominator == 0 {
		return core.NoHit
	}

	t := -floorNormal.Dot(ray.Origin) / denominator
	if t <= 0 || !f.contains(ray.At(t)) {
		return core.NoHit
	}
	return t
}

// contains reports whether a point on the plane lies within the floor's square
func (f *Floor) contains(p core.Vec3) bool {
	return p.X >= f.Reference.X && p.X <= -f.Reference.X &&
		p.Y >= f.Reference.Y && p.Y <= -f.Reference.Y
}

// NormalAt returns the constant floor normal (0, 0, 1)
func (f *Floor) NormalAt(point core.Vec3) core.Vec3 {
	return floorNormal
}

// ColorAt returns white or black depending on the parity of the tile containing the point
func (f *Floor) ColorAt(point core.Vec3) core.Color {
	i := math.Floor((f.Reference.X + point.X) / f.TileSize)
	j := math.Floor((f.Reference.Y + point.Y) / f.TileSize)
	if math.Mod(i+j, 2) == 0 {
		return core.White
	}
	return core.Black
}
