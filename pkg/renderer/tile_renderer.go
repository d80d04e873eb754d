package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	camera     *Camera
	width      int
	height     int
}

// NewTileRenderer creates a new tile renderer for a width×height image
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator, camera *Camera, width, height int) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		integrator: integratorInst,
		camera:     camera,
		width:      width,
		height:     height,
	}
}

// RenderPixel traces the primary ray of pixel (i, j)
func (tr *TileRenderer) RenderPixel(i, j int) core.Color {
	ray := tr.camera.GetRay(i, j, tr.width, tr.height)
	return tr.integrator.RayColor(ray, tr.scene).Fix()
}

// RenderTileBounds renders pixels within the specified bounds into the frame.
// Tiles never overlap, so concurrent calls on distinct bounds are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, frame *Frame) int {
	pixels := 0
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			frame.Set(i, j, tr.RenderPixel(i, j))
			pixels++
		}
	}
	return pixels
}
