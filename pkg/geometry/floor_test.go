package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestFloor_Intersect(t *testing.T) {
	floor := NewDefaultFloor()

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectedT float64
	}{
		{"straight down", core.NewVec3(10, 10, 50), core.NewVec3(0, 0, -1), 50},
		{"from below", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 5},
		{"angled", core.NewVec3(0, 0, 10), core.NewVec3(1, 0, -1), 10 * 1.4142135623730951},
		{"outside bounds", core.NewVec3(600, 0, 10), core.NewVec3(0, 0, -1), core.NoHit},
		{"parallel", core.NewVec3(0, 0, 10), core.NewVec3(1, 0, 0), core.NoHit},
		{"pointing away", core.NewVec3(0, 0, 10), core.NewVec3(0, 0, 1), core.NoHit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			assert.InDelta(t, tt.expectedT, floor.Intersect(ray), 1e-9)
		})
	}
}

func TestFloor_Bounds(t *testing.T) {
	floor := NewFloor(100, 10, testMaterial)

	assert.Equal(t, core.NewVec3(-50, -50, 0), floor.Reference)
	assert.Greater(t, floor.Intersect(core.NewRay(core.NewVec3(50, -50, 1), core.NewVec3(0, 0, -1))), 0.0)
	assert.Equal(t, core.NoHit, floor.Intersect(core.NewRay(core.NewVec3(50.5, 0, 1), core.NewVec3(0, 0, -1))))
	assert.Equal(t, core.NoHit, floor.Intersect(core.NewRay(core.NewVec3(0, -50.5, 1), core.NewVec3(0, 0, -1))))
}

func TestFloor_ColorAt_Checkerboard(t *testing.T) {
	floor := NewDefaultFloor()
	tile := floor.TileSize

	// Sample the centre of every tile in a window straddling the origin
	for i := -5; i < 5; i++ {
		for j := -5; j < 5; j++ {
			p := core.NewVec3((float64(i)+0.5)*tile, (float64(j)+0.5)*tile, 0)
			c := floor.ColorAt(p)
			assert.True(t, c == core.White || c == core.Black, "tile (%d,%d) has color %v", i, j, c)

			right := floor.ColorAt(p.Add(core.NewVec3(tile, 0, 0)))
			up := floor.ColorAt(p.Add(core.NewVec3(0, tile, 0)))
			assert.NotEqual(t, c, right, "tiles (%d,%d) and (%d,%d)", i, j, i+1, j)
			assert.NotEqual(t, c, up, "tiles (%d,%d) and (%d,%d)", i, j, i, j+1)

			diagonal := floor.ColorAt(p.Add(core.NewVec3(tile, tile, 0)))
			assert.Equal(t, c, diagonal)
		}
	}
}

func TestFloor_NormalAndMaterial(t *testing.T) {
	floor := NewDefaultFloor()

	assert.Equal(t, core.NewVec3(0, 0, 1), floor.NormalAt(core.NewVec3(123, -45, 0)))
	assert.Equal(t, DefaultFloorCoefficients, floor.GetMaterial().Coefficients)
	assert.Equal(t, DefaultFloorShininess, floor.GetMaterial().Shininess)
	assert.Equal(t, DefaultFloorTileSize, floor.TileSize)
}
