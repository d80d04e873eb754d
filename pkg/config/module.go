package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DEFAULT []byte

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

func decode(data []byte, config *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil {
		return err
	}
	return nil
}

func readFile(path string, config *Config) error {
	switch filepath.Ext(path) {
	case ".yaml", ".yml", ".json":
	default:
		return fmt.Errorf("not in a valid format")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// An empty file leaves every value as it was
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	return decode(data, config)
}

// Default returns the built-in configuration
func Default() (*Config, error) {
	config := Config{}
	if err := decode(DEFAULT, &config); err != nil {
		return nil, fmt.Errorf("invalid default config file: %w", err)
	}
	return &config, nil
}

// Process starts from the default configuration and overlays the provided files in
// order. A later file overrides only the keys it sets.
func Process(configPaths []string) (*Config, error) {
	config, err := Default()
	if err != nil {
		return nil, err
	}

	for _, path := range configPaths {
		if err := readFile(path, config); err != nil {
			return nil, fmt.Errorf(
				"could not process config file %s: %w",
				path,
				err,
			)
		}

		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf(
				"config file %s is not valid: %w",
				path,
				err,
			)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func checkVec3(name string, v []float64) error {
	if len(v) != 3 {
		return invalid("%s needs 3 components, got %d", name, len(v))
	}
	return nil
}

// Validate checks value ranges and vector sizes
func (c *Config) Validate() error {
	r := c.Render
	if r.Depth < -1 {
		return invalid("render.depth must be -1 or greater, got %d", r.Depth)
	}
	if r.Resolution < 0 {
		return invalid("render.resolution must not be negative, got %d", r.Resolution)
	}
	if r.Workers < 0 {
		return invalid("render.workers must not be negative, got %d", r.Workers)
	}
	if r.TileSize <= 0 {
		return invalid("render.tileSize must be positive, got %d", r.TileSize)
	}
	if r.ProgressRate <= 0 {
		return invalid("render.progressRate must be positive, got %v", r.ProgressRate)
	}
	if err := checkVec3("render.background", r.Background); err != nil {
		return err
	}

	cam := c.Camera
	for name, v := range map[string][]float64{
		"camera.position": cam.Position,
		"camera.look":     cam.Look,
		"camera.right":    cam.Right,
		"camera.up":       cam.Up,
	} {
		if err := checkVec3(name, v); err != nil {
			return err
		}
	}
	for name, v := range map[string][]float64{
		"camera.look":  cam.Look,
		"camera.right": cam.Right,
		"camera.up":    cam.Up,
	} {
		if v[0] == 0 && v[1] == 0 && v[2] == 0 {
			return invalid("%s must not be the zero vector", name)
		}
	}
	if cam.ViewAngle <= 0 || cam.ViewAngle >= 180 {
		return invalid("camera.viewAngle must be in (0, 180), got %v", cam.ViewAngle)
	}
	if cam.WindowWidth <= 0 || cam.WindowHeight <= 0 {
		return invalid("camera window must be positive, got %vx%v", cam.WindowWidth, cam.WindowHeight)
	}

	switch c.Output.Format {
	case FormatPNG, FormatCBOR:
	default:
		return invalid("output.format must be %q or %q, got %q", FormatPNG, FormatCBOR, c.Output.Format)
	}

	return nil
}
