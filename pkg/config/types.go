package config

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Output formats
const (
	FormatPNG  = "png"
	FormatCBOR = "cbor"
)

type Render struct {
	Depth        int       `yaml:"depth"`      // -1 keeps the scene's recursion depth
	Resolution   int       `yaml:"resolution"` // 0 keeps the scene's resolution
	Workers      int       `yaml:"workers"`    // 0 uses every CPU
	TileSize     int       `yaml:"tileSize"`
	ProgressRate float64   `yaml:"progressRate"`
	Background   []float64 `yaml:"background,flow"`
}

type Camera struct {
	Position     []float64 `yaml:"position,flow"`
	Look         []float64 `yaml:"look,flow"`
	Right        []float64 `yaml:"right,flow"`
	Up           []float64 `yaml:"up,flow"`
	ViewAngle    float64   `yaml:"viewAngle"`
	WindowWidth  float64   `yaml:"windowWidth"`
	WindowHeight float64   `yaml:"windowHeight"`
}

type Output struct {
	Directory string `yaml:"directory"`
	Format    string `yaml:"format"`
}

type Config struct {
	Render Render `yaml:"render"`
	Camera Camera `yaml:"camera"`
	Output Output `yaml:"output"`
}

func vec3(v []float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraConfig converts the camera section. The config must be valid.
func (c *Config) CameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Position:     vec3(c.Camera.Position),
		Look:         vec3(c.Camera.Look),
		Right:        vec3(c.Camera.Right),
		Up:           vec3(c.Camera.Up),
		ViewAngle:    c.Camera.ViewAngle,
		WindowWidth:  c.Camera.WindowWidth,
		WindowHeight: c.Camera.WindowHeight,
	}
}

// RenderConfig converts the render section for a scene of the given resolution
func (c *Config) RenderConfig(sceneResolution int) renderer.RenderConfig {
	resolution := sceneResolution
	if c.Render.Resolution > 0 {
		resolution = c.Render.Resolution
	}

	rc := renderer.DefaultRenderConfig(resolution)
	rc.NumWorkers = c.Render.Workers
	rc.TileSize = c.Render.TileSize
	rc.ProgressRate = c.Render.ProgressRate
	return rc
}

// Background returns the color of pixels whose primary ray hits nothing
func (c *Config) Background() core.Color {
	b := c.Render.Background
	return core.NewColor(b[0], b[1], b[2])
}
