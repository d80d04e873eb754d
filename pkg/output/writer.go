package output

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Formats accepted by Save
const (
	FormatPNG  = "png"
	FormatCBOR = "cbor"
)

// ErrBadFrame is returned when a decoded frame record is inconsistent
var ErrBadFrame = errors.New("bad frame record")

// FrameRecord is the CBOR form of a rendered frame. Pixels holds unquantized RGB
// triples in row-major order.
type FrameRecord struct {
	Scene  string    `cbor:"scene"`
	Digest uint64    `cbor:"digest"`
	Width  int       `cbor:"width"`
	Height int       `cbor:"height"`
	Pixels []float64 `cbor:"pixels"`
}

// NewFrameRecord flattens a frame
func NewFrameRecord(frame *renderer.Frame, sceneName string, digest uint64) FrameRecord {
	pixels := make([]float64, 0, 3*len(frame.Pixels))
	for _, c := range frame.Pixels {
		pixels = append(pixels, c.R, c.G, c.B)
	}
	return FrameRecord{
		Scene:  sceneName,
		Digest: digest,
		Width:  frame.Width,
		Height: frame.Height,
		Pixels: pixels,
	}
}

// Frame rebuilds the frame, checking the pixel count against the dimensions
func (r FrameRecord) Frame() (*renderer.Frame, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrBadFrame, r.Width, r.Height)
	}
	if len(r.Pixels) != 3*r.Width*r.Height {
		return nil, fmt.Errorf("%w: %d values for %dx%d pixels", ErrBadFrame, len(r.Pixels), r.Width, r.Height)
	}

	frame := renderer.NewFrame(r.Width, r.Height)
	for i := range frame.Pixels {
		frame.Pixels[i] = core.NewColor(r.Pixels[3*i], r.Pixels[3*i+1], r.Pixels[3*i+2])
	}
	return frame, nil
}

// WritePNG encodes the frame as an 8-bit PNG
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	if err := png.Encode(w, frame.ToImage()); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return nil
}

// WriteCBOR encodes the frame record
func WriteCBOR(w io.Writer, record FrameRecord) error {
	if err := cbor.NewEncoder(w).Encode(record); err != nil {
		return fmt.Errorf("error saving CBOR: %w", err)
	}
	return nil
}

// ReadCBOR decodes a frame record written by WriteCBOR
func ReadCBOR(r io.Reader) (FrameRecord, error) {
	var record FrameRecord
	if err := cbor.NewDecoder(r).Decode(&record); err != nil {
		return FrameRecord{}, fmt.Errorf("error reading CBOR: %w", err)
	}
	return record, nil
}

// Filename returns the output file name for a scene render. The digest keeps renders
// of differently edited scenes with the same name apart.
func Filename(sceneName string, digest uint64, format string) string {
	return fmt.Sprintf("render_%s_%016x.%s", sceneName, digest, format)
}

// Save writes the frame into dir in the given format and returns the file path
func Save(dir, format string, frame *renderer.Frame, sceneName string, digest uint64) (string, error) {
	if format != FormatPNG && format != FormatCBOR {
		return "", fmt.Errorf("unknown output format %q", format)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	filename := filepath.Join(dir, Filename(sceneName, digest, format))
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatPNG:
		err = WritePNG(file, frame)
	case FormatCBOR:
		err = WriteCBOR(file, NewFrameRecord(frame, sceneName, digest))
	}
	if err != nil {
		return "", err
	}

	return filename, file.Close()
}
