package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderConfig contains the image size and parallelism settings of a render
type RenderConfig struct {
	Width        int     // Image width in pixels
	Height       int     // Image height in pixels
	TileSize     int     // Edge length of a square tile in pixels
	NumWorkers   int     // Number of parallel workers (0 = auto-detect)
	ProgressRate float64 // Maximum progress log lines per second
}

// DefaultRenderConfig returns a square render at the scene's resolution
func DefaultRenderConfig(resolution int) RenderConfig {
	return RenderConfig{
		Width:        resolution,
		Height:       resolution,
		TileSize:     64,
		NumWorkers:   0,
		ProgressRate: 2,
	}
}

// Raytracer renders a scene through a camera into a frame
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	camera     *Camera
	config     RenderConfig
	logger     zerolog.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, integratorInst integrator.Integrator, camera *Camera, config RenderConfig, logger zerolog.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = 64
	}
	return &Raytracer{
		scene:      s,
		integrator: integratorInst,
		camera:     camera,
		config:     config,
		logger:     logger,
	}
}

// RenderPixel traces a single pixel without starting the worker pool
func (rt *Raytracer) RenderPixel(i, j int) core.Color {
	tr := NewTileRenderer(rt.scene, rt.integrator, rt.camera, rt.config.Width, rt.config.Height)
	return tr.RenderPixel(i, j)
}

// Render traces one primary ray per pixel in parallel tiles and returns the frame.
// The result does not depend on the number of workers.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	start := time.Now()
	frame := NewFrame(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	progress := NewProgress(len(tiles), rt.config.ProgressRate, rt.logger)
	tileRenderer := NewTileRenderer(rt.scene, rt.integrator, rt.camera, width, height)
	pool := NewWorkerPool(tileRenderer, progress, len(tiles), rt.config.NumWorkers)

	rt.logger.Info().
		Str("scene", rt.scene.Name).
		Int("width", width).
		Int("height", height).
		Int("tiles", len(tiles)).
		Int("workers", pool.GetNumWorkers()).
		Int("depth", rt.scene.MaxDepth).
		Msg("rendering")

	pool.Start(ctx)
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Frame: frame})
	}
	pool.Stop()

	var firstErr error
	pixels := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil && firstErr == nil {
			firstErr = result.Error
		}
		pixels += result.Pixels
	}
	if firstErr != nil {
		return nil, RenderStats{}, fmt.Errorf("render %q: %w", rt.scene.Name, firstErr)
	}

	stats := RenderStats{
		Width:       width,
		Height:      height,
		TotalPixels: pixels,
		Tiles:       len(tiles),
		Workers:     pool.GetNumWorkers(),
		Duration:    time.Since(start),
	}

	rt.logger.Info().
		Dur("duration", stats.Duration).
		Float64("pixels_per_sec", stats.PixelsPerSecond()).
		Msg("render complete")

	return frame, stats, nil
}
