package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes a pinhole camera by its position and look/right/up frame
type CameraConfig struct {
	Position     core.Vec3
	Look         core.Vec3 // Viewing direction
	Right        core.Vec3
	Up           core.Vec3
	ViewAngle    float64 // Vertical field of view in degrees
	WindowWidth  float64 // Size of the image plane in world units
	WindowHeight float64
}

// DefaultCameraConfig returns the start pose of the demo scene: above and behind the
// floor's (-,-) corner, looking diagonally across it
func DefaultCameraConfig() CameraConfig {
	val := 1 / math.Sqrt2
	return CameraConfig{
		Position:     core.NewVec3(-120, -120, 60),
		Look:         core.NewVec3(val, val, 0),
		Right:        core.NewVec3(val, -val, 0),
		Up:           core.NewVec3(0, 0, 1),
		ViewAngle:    80,
		WindowWidth:  500,
		WindowHeight: 500,
	}
}

// Camera generates primary rays through the pixels of an image plane
type Camera struct {
	config        CameraConfig
	position      core.Vec3
	look          core.Vec3
	right         core.Vec3
	up            core.Vec3
	planeDistance float64
}

// NewCamera creates a camera, normalizing its direction vectors
func NewCamera(config CameraConfig) *Camera {
	halfAngle := config.ViewAngle / 2 * math.Pi / 180
	return &Camera{
		config:        config,
		position:      config.Position,
		look:          config.Look.Normalize(),
		right:         config.Right.Normalize(),
		up:            config.Up.Normalize(),
		planeDistance: (config.WindowHeight / 2) / math.Tan(halfAngle),
	}
}

// GetConfig returns the configuration the camera was created with
func (c *Camera) GetConfig() CameraConfig {
	return c.config
}

// GetRay returns the primary ray through the centre of pixel (i, j) of a width×height
// image. Pixel (0, 0) is the top-left corner; i grows rightward and j downward.
func (c *Camera) GetRay(i, j, width, height int) core.Ray {
	du := c.config.WindowWidth / float64(width)
	dv := c.config.WindowHeight / float64(height)

	topLeft := c.position.
		Add(c.look.Multiply(c.planeDistance)).
		Subtract(c.right.Multiply(c.config.WindowWidth / 2)).
		Add(c.up.Multiply(c.config.WindowHeight / 2)).
		Add(c.right.Multiply(du / 2)).
		Subtract(c.up.Multiply(dv / 2))

	pixel := topLeft.
		Add(c.right.Multiply(du * float64(i))).
		Subtract(c.up.Multiply(dv * float64(j)))

	return core.NewRay(c.position, pixel.Subtract(c.position))
}
