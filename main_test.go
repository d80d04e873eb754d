package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"single sphere scene", "single-sphere", false},
		{"sphere grid scene", "sphere-grid", false},

		// Scene files by name
		{"columns by name", "columns", false},

		// Scene files
		{"scene file by path", "scenes/default.txt", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid path", "scenes/nonexistent.txt", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, s)
			assert.Greater(t, s.Resolution, 0)
			assert.NotEmpty(t, s.Primitives)
		})
	}
}

func TestCreateScene_UnknownPrimitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 10 1 torus 0 0 0 1"), 0644))

	_, err := createScene(path)
	assert.ErrorIs(t, err, loaders.ErrUnknownPrimitive)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := loadConfig(RenderOptions{Workers: -1, Depth: -1})
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.Render.Depth)
	assert.Equal(t, config.FormatPNG, cfg.Output.Format)

	cfg, err = loadConfig(RenderOptions{Workers: 3, Depth: 0, Resolution: 16, Format: "cbor", Output: "out"})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Render.Workers)
	assert.Equal(t, 0, cfg.Render.Depth)
	assert.Equal(t, 16, cfg.Render.Resolution)
	assert.Equal(t, config.FormatCBOR, cfg.Output.Format)
	assert.Equal(t, "out", cfg.Output.Directory)

	_, err = loadConfig(RenderOptions{Workers: -1, Depth: -1, Format: "gif"})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestConfigCommand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, configCommand(&buf))
	assert.Equal(t, config.DEFAULT, buf.Bytes())

	assert.EqualError(t, configCommand(failingWriter{}), "closed pipe")
}

func TestCountLightTypes(t *testing.T) {
	counts := countLightTypes(scene.NewDefaultScene().Lights)
	assert.Equal(t, map[lights.LightType]int{
		lights.LightTypePoint: 2,
		lights.LightTypeSpot:  1,
	}, counts)

	assert.Empty(t, countLightTypes(nil))
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()

	path, err := renderCommand(context.Background(), RenderOptions{
		Scene:      "single-sphere",
		Output:     dir,
		Format:     "cbor",
		Workers:    2,
		Depth:      -1,
		Resolution: 9,
	})
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	record, err := output.ReadCBOR(file)
	require.NoError(t, err)
	assert.Equal(t, "single-sphere", record.Scene)
	assert.Equal(t, 9, record.Width)
	assert.Equal(t, 9, record.Height)
}
