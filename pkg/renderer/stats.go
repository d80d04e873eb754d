package renderer

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/sasha-s/go-deadlock"
	"golang.org/x/time/rate"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	TotalPixels int           // Total number of pixels rendered
	Tiles       int           // Number of tiles the image was split into
	Workers     int           // Number of parallel workers used
	Duration    time.Duration // Wall-clock render time
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// Progress counts finished tiles across workers and logs at a bounded rate
type Progress struct {
	mu         deadlock.Mutex
	tilesDone  int
	tilesTotal int
	pixelsDone int
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// NewProgress creates a progress tracker that logs at most perSecond updates per second
func NewProgress(tilesTotal int, perSecond float64, logger zerolog.Logger) *Progress {
	return &Progress{
		tilesTotal: tilesTotal,
		limiter:    rate.NewLimiter(rate.Limit(perSecond), 1),
		logger:     logger,
	}
}

// TileDone records a finished tile of the given pixel count
func (p *Progress) TileDone(pixels int) {
	p.mu.Lock()
	p.tilesDone++
	p.pixelsDone += pixels
	done, total, px := p.tilesDone, p.tilesTotal, p.pixelsDone
	p.mu.Unlock()

	if done == total || p.limiter.Allow() {
		p.logger.Debug().
			Int("tiles", done).
			Int("total", total).
			Int("pixels", px).
			Msg("tile progress")
	}
}

// Snapshot returns the finished tile count, total tile count and finished pixel count
func (p *Progress) Snapshot() (tilesDone, tilesTotal, pixelsDone int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tilesDone, p.tilesTotal, p.pixelsDone
}
