package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrUnknownPrimitive is returned when an object tag is not one of the Tag constants
var ErrUnknownPrimitive = errors.New("unknown primitive")

// Object tags of the scene description format
const (
	TagSphere   = "sphere"
	TagTriangle = "triangle"
	TagQuadric  = "general"
	TagCylinder = "cylinder"
	TagCone     = "cone"
)

type token struct {
	text string
	line int
}

// SceneParser reads a whitespace-separated scene description. Text after '#' on a line
// is a comment.
type SceneParser struct {
	tokens []token
	pos    int
}

// NewSceneParser tokenizes the whole input
func NewSceneParser(reader io.Reader) (*SceneParser, error) {
	parser := &SceneParser{}

	scanner := bufio.NewScanner(reader)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		for _, field := range strings.Fields(line) {
			parser.tokens = append(parser.tokens, token{text: field, line: lineNo})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	return parser, nil
}

// ParseScene parses a scene description and appends the default floor
func ParseScene(reader io.Reader) (*scene.Scene, error) {
	parser, err := NewSceneParser(reader)
	if err != nil {
		return nil, err
	}
	return parser.Parse()
}

// LoadSceneFile parses the scene file at path, naming the scene after the file
func LoadSceneFile(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base := filepath.Base(path)
	s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	return s, nil
}

// Parse consumes the header, objects, point lights and spot lights in that order
func (p *SceneParser) Parse() (*scene.Scene, error) {
	depth, err := p.nonNegativeInt("recursion depth")
	if err != nil {
		return nil, err
	}
	resolution, err := p.nonNegativeInt("resolution")
	if err != nil {
		return nil, err
	}

	s := scene.New("", depth, resolution)

	objectCount, err := p.nonNegativeInt("object count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < objectCount; i++ {
		primitive, err := p.parseObject()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Add(primitive)
	}

	pointCount, err := p.nonNegativeInt("point light count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < pointCount; i++ {
		light, err := p.parsePointLight()
		if err != nil {
			return nil, fmt.Errorf("point light %d: %w", i, err)
		}
		s.AddLight(light)
	}

	spotCount, err := p.nonNegativeInt("spot light count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < spotCount; i++ {
		light, err := p.parseSpotLight()
		if err != nil {
			return nil, fmt.Errorf("spot light %d: %w", i, err)
		}
		s.AddLight(light)
	}

	if p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		return nil, fmt.Errorf("line %d: unexpected trailing token %q", tok.line, tok.text)
	}

	s.AddFloor()
	return s, nil
}

func (p *SceneParser) parseObject() (geometry.Primitive, error) {
	tag, err := p.next("object tag")
	if err != nil {
		return nil, err
	}

	switch tag.text {
	case TagSphere:
		center, err := p.vec3("sphere center")
		if err != nil {
			return nil, err
		}
		radius, err := p.float("sphere radius")
		if err != nil {
			return nil, err
		}
		material, err := p.parseMaterial()
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(center, radius, material), nil

	case TagTriangle:
		var vertices [3]core.Vec3
		for i := range vertices {
			if vertices[i], err = p.vec3(fmt.Sprintf("triangle vertex %d", i+1)); err != nil {
				return nil, err
			}
		}
		material, err := p.parseMaterial()
		if err != nil {
			return nil, err
		}
		return geometry.NewTriangle(vertices[0], vertices[1], vertices[2], material), nil

	case TagQuadric:
		var coeffs geometry.QuadricCoefficients
		for i := range coeffs {
			if coeffs[i], err = p.float(fmt.Sprintf("quadric coefficient %c", 'A'+i)); err != nil {
				return nil, err
			}
		}
		reference, err := p.vec3("quadric reference")
		if err != nil {
			return nil, err
		}
		length, err := p.float("quadric length")
		if err != nil {
			return nil, err
		}
		width, err := p.float("quadric width")
		if err != nil {
			return nil, err
		}
		height, err := p.float("quadric height")
		if err != nil {
			return nil, err
		}
		material, err := p.parseMaterial()
		if err != nil {
			return nil, err
		}
		return geometry.NewQuadric(coeffs, reference, length, width, height, material), nil

	case TagCylinder:
		base, err := p.vec3("cylinder base")
		if err != nil {
			return nil, err
		}
		radius, err := p.float("cylinder radius")
		if err != nil {
			return nil, err
		}
		height, err := p.float("cylinder height")
		if err != nil {
			return nil, err
		}
		material, err := p.parseMaterial()
		if err != nil {
			return nil, err
		}
		return geometry.NewCylinder(base, radius, height, material), nil

	case TagCone:
		apex, err := p.vec3("cone apex")
		if err != nil {
			return nil, err
		}
		slope, err := p.float("cone slope")
		if err != nil {
			return nil, err
		}
		height, err := p.float("cone height")
		if err != nil {
			return nil, err
		}
		material, err := p.parseMaterial()
		if err != nil {
			return nil, err
		}
		cone, err := geometry.NewCone(apex, slope, height, material)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", tag.line, err)
		}
		return cone, nil

	default:
		return nil, fmt.Errorf("line %d: %w %q", tag.line, ErrUnknownPrimitive, tag.text)
	}
}

// parseMaterial reads the color, ka kd ks kr and shininess shared by every object
func (p *SceneParser) parseMaterial() (geometry.Material, error) {
	color, err := p.color("color")
	if err != nil {
		return geometry.Material{}, err
	}

	var k [4]float64
	for i, name := range []string{"ka", "kd", "ks", "kr"} {
		if k[i], err = p.float(name); err != nil {
			return geometry.Material{}, err
		}
	}

	shininess, err := p.int("shininess")
	if err != nil {
		return geometry.Material{}, err
	}

	return geometry.NewMaterial(color, geometry.NewCoefficients(k[0], k[1], k[2], k[3]), shininess), nil
}

func (p *SceneParser) parsePointLight() (lights.Light, error) {
	position, err := p.vec3("light position")
	if err != nil {
		return lights.Light{}, err
	}
	color, err := p.color("light color")
	if err != nil {
		return lights.Light{}, err
	}
	return lights.NewPointLight(position, color), nil
}

func (p *SceneParser) parseSpotLight() (lights.Light, error) {
	position, err := p.vec3("light position")
	if err != nil {
		return lights.Light{}, err
	}
	color, err := p.color("light color")
	if err != nil {
		return lights.Light{}, err
	}
	direction, err := p.vec3("spot direction")
	if err != nil {
		return lights.Light{}, err
	}
	cutoff, err := p.float("spot cutoff")
	if err != nil {
		return lights.Light{}, err
	}
	return lights.NewSpotLight(position, color, direction, cutoff), nil
}

func (p *SceneParser) next(field string) (token, error) {
	if p.pos >= len(p.tokens) {
		return token{}, fmt.Errorf("missing %s: %w", field, io.ErrUnexpectedEOF)
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, nil
}

func (p *SceneParser) float(field string) (float64, error) {
	tok, err := p.next(field)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q: %w", tok.line, field, tok.text, err)
	}
	return value, nil
}

func (p *SceneParser) int(field string) (int, error) {
	tok, err := p.next(field)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(tok.text)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s %q: %w", tok.line, field, tok.text, err)
	}
	return value, nil
}

func (p *SceneParser) nonNegativeInt(field string) (int, error) {
	value, err := p.int(field)
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("line %d: %s must not be negative, got %d", p.tokens[p.pos-1].line, field, value)
	}
	return value, nil
}

func (p *SceneParser) vec3(field string) (core.Vec3, error) {
	var xyz [3]float64
	for i, axis := range []string{"x", "y", "z"} {
		value, err := p.float(field + " " + axis)
		if err != nil {
			return core.Vec3{}, err
		}
		xyz[i] = value
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}

func (p *SceneParser) color(field string) (core.Color, error) {
	var rgb [3]float64
	for i, channel := range []string{"r", "g", "b"} {
		value, err := p.float(field + " " + channel)
		if err != nil {
			return core.Color{}, err
		}
		rgb[i] = value
	}
	return core.NewColor(rgb[0], rgb[1], rgb[2]), nil
}
