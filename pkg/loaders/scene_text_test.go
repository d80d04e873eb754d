package loaders

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const allObjects = `
3 200   # depth and resolution
3
sphere 1 2 3 4
       1 0 0   0.1 0.2 0.3 0.4   7
triangle 0 0 0  1 0 0  0 1 0
       0 1 0   0.5 0.5 0.5 0   2
general 1 1 1 0 0 0 0 0 0 -25   -5 -5 -5   10 10 10
       0 0 1   0.2 0.2 0.2 0.2   9
1
0 0 50   1 1 1
1
10 10 10   1 1 0   -1 -1 -1   15
`

func TestParseScene_AllObjects(t *testing.T) {
	s, err := ParseScene(strings.NewReader(allObjects))
	require.NoError(t, err)

	assert.Equal(t, 3, s.MaxDepth)
	assert.Equal(t, 200, s.Resolution)

	// Three objects plus the floor
	require.Equal(t, 4, s.GetPrimitiveCount())

	sphere, ok := s.Primitives[0].(*geometry.Sphere)
	require.True(t, ok)
	assert.Equal(t, core.NewVec3(1, 2, 3), sphere.Center)
	assert.Equal(t, 4.0, sphere.Radius)
	assert.Equal(t, core.NewColor(1, 0, 0), sphere.Color)
	assert.Equal(t, geometry.NewCoefficients(0.1, 0.2, 0.3, 0.4), sphere.Coefficients)
	assert.Equal(t, 7, sphere.Shininess)

	triangle, ok := s.Primitives[1].(*geometry.Triangle)
	require.True(t, ok)
	assert.Equal(t, core.NewVec3(1, 0, 0), triangle.V2)

	quadric, ok := s.Primitives[2].(*geometry.Quadric)
	require.True(t, ok)
	assert.Equal(t, -25.0, quadric.J)
	assert.Equal(t, core.NewVec3(-5, -5, -5), quadric.Reference)
	assert.Equal(t, 10.0, quadric.Height)

	assert.IsType(t, &geometry.Floor{}, s.Primitives[3])

	require.Len(t, s.Lights, 2)
	assert.Equal(t, lights.LightTypePoint, s.Lights[0].Type())
	assert.Equal(t, lights.LightTypeSpot, s.Lights[1].Type())
	assert.Equal(t, 15.0, s.Lights[1].Cutoff)
}

func TestParseScene_EmptyScene(t *testing.T) {
	s, err := ParseScene(strings.NewReader("1 10 0 0 0"))
	require.NoError(t, err)

	assert.Equal(t, 1, s.GetPrimitiveCount())
	assert.Empty(t, s.Lights)
}

func TestParseScene_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		target  error
		message string
	}{
		{"unknown tag", "1 10 1 cube 0 0 0 1", ErrUnknownPrimitive, `"cube"`},
		{"truncated header", "1", io.ErrUnexpectedEOF, "resolution"},
		{"truncated sphere", "1 10 1 sphere 0 0 0", io.ErrUnexpectedEOF, "sphere radius"},
		{"truncated spot", "1 10 0 0 1 0 0 0 1 1 1 0 0 -1", io.ErrUnexpectedEOF, "spot cutoff"},
		{"bad number", "1 10 1 sphere 0 zero 0 1", nil, "sphere center y"},
		{"bad shininess", "1 10 1 sphere 0 0 0 1 1 1 1 0 0 0 0 2.5", nil, "shininess"},
		{"negative count", "1 10 -1", nil, "object count"},
		{"trailing token", "1 10 0 0 0 extra", nil, "extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.target != nil {
				assert.True(t, errors.Is(err, tt.target), "got %v", err)
			}
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseScene_ErrorNamesLine(t *testing.T) {
	_, err := ParseScene(strings.NewReader("1 10\n1\n\nsphere 0 0 0 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
	assert.Contains(t, err.Error(), "object 0")
}

func TestLoadSceneFile_DefaultMatchesBuiltin(t *testing.T) {
	s, err := LoadSceneFile(filepath.Join("..", "..", "scenes", "default.txt"))
	require.NoError(t, err)

	builtin := scene.NewDefaultScene()
	assert.Equal(t, "default", s.Name)
	assert.Equal(t, builtin.GetPrimitiveCount(), s.GetPrimitiveCount())
	assert.Equal(t, builtin.Digest(), s.Digest())
}

func TestLoadSceneFile_Missing(t *testing.T) {
	_, err := LoadSceneFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
