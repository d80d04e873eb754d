package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Frame is a rendered grid of colors with every channel in [0, 1]
type Frame struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major, Pixels[j*Width+i]
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color of pixel (i, j)
func (f *Frame) At(i, j int) core.Color {
	return f.Pixels[j*f.Width+i]
}

// Set stores the color of pixel (i, j)
func (f *Frame) Set(i, j int, c core.Color) {
	f.Pixels[j*f.Width+i] = c
}

// ToImage converts the frame to an 8-bit RGBA image
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			img.SetRGBA(i, j, f.At(i, j).RGBA())
		}
	}
	return img
}
