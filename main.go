package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const scenesDir = "scenes"

type RenderOptions struct {
	Scene      string   `arg:"" optional:"" default:"default" help:"Built-in scene name, scene name under scenes/, or path to a scene file."`
	Configs    []string `name:"config" short:"c" help:"Configuration files, applied in order." type:"existingfile"`
	Output     string   `short:"o" help:"Output directory. Overrides output.directory."`
	Format     string   `short:"f" help:"Output format, png or cbor. Overrides output.format."`
	Workers    int      `short:"w" default:"-1" help:"Number of parallel workers, 0 for one per CPU. Overrides render.workers."`
	Depth      int      `short:"d" default:"-1" help:"Recursion depth. Overrides render.depth and the scene."`
	Resolution int      `short:"r" help:"Image resolution. Overrides render.resolution and the scene."`
}

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Render RenderOptions `cmd:"" default:"withargs" help:"Render a scene to an image."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`

	Scenes struct {
		Dir string `arg:"" optional:"" default:"scenes" help:"Directory to scan for scene files."`
	} `cmd:"" help:"List built-in scenes and scene files."`
}

// builtinScenes are available by name without a scene file
var builtinScenes = map[string]func() *scene.Scene{
	"default":       scene.NewDefaultScene,
	"single-sphere": scene.NewSingleSphereScene,
	"sphere-grid":   scene.NewSphereGridScene,
}

// createScene resolves a built-in scene, a scene file under scenes/ by name, or a path
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}

	if builder, ok := builtinScenes[name]; ok {
		return builder(), nil
	}

	path := name
	if !strings.HasSuffix(name, loaders.SceneFileExt) {
		path = filepath.Join(scenesDir, name+loaders.SceneFileExt)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("unknown scene %q", name)
	}

	return loaders.LoadSceneFile(path)
}

// loadConfig reads the config files and applies command-line overrides
func loadConfig(opts RenderOptions) (*config.Config, error) {
	cfg, err := config.Process(opts.Configs)
	if err != nil {
		return nil, err
	}

	if opts.Output != "" {
		cfg.Output.Directory = opts.Output
	}
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	if opts.Workers >= 0 {
		cfg.Render.Workers = opts.Workers
	}
	if opts.Depth >= 0 {
		cfg.Render.Depth = opts.Depth
	}
	if opts.Resolution > 0 {
		cfg.Render.Resolution = opts.Resolution
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configCommand prints the embedded default configuration
func configCommand(w io.Writer) error {
	_, err := w.Write(config.DEFAULT)
	return err
}

// countLightTypes tallies lights by kind
func countLightTypes(ls []lights.Light) map[lights.LightType]int {
	counts := make(map[lights.LightType]int)
	for _, l := range ls {
		counts[l.Type()]++
	}
	return counts
}

func renderCommand(ctx context.Context, opts RenderOptions) (string, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return "", err
	}

	s, err := createScene(opts.Scene)
	if err != nil {
		return "", err
	}
	if cfg.Render.Depth >= 0 {
		s.MaxDepth = cfg.Render.Depth
	}

	lightTypes := countLightTypes(s.Lights)
	log.Info().
		Str("scene", s.Name).
		Int("primitives", s.GetPrimitiveCount()).
		Int("point_lights", lightTypes[lights.LightTypePoint]).
		Int("spot_lights", lightTypes[lights.LightTypeSpot]).
		Msg("scene loaded")

	camera := renderer.NewCamera(cfg.CameraConfig())
	whitted := integrator.NewWhittedIntegrator(cfg.Background())
	rt := renderer.NewRaytracer(s, whitted, camera, cfg.RenderConfig(s.Resolution), log.Logger)

	frame, stats, err := rt.Render(ctx)
	if err != nil {
		return "", err
	}

	path, err := output.Save(cfg.Output.Directory, cfg.Output.Format, frame, s.Name, s.Digest())
	if err != nil {
		return "", err
	}

	log.Info().
		Str("path", path).
		Int("width", stats.Width).
		Int("height", stats.Height).
		Dur("duration", stats.Duration).
		Msg("render saved")

	return path, nil
}

func scenesCommand(dir string) error {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Built-in scenes:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}

	files, err := loaders.ListSceneFiles(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Scene files in %s:\n", dir)
	for _, info := range files {
		if info.Description != "" {
			fmt.Printf("  %-20s %s - %s\n", info.ID, info.Name, info.Description)
		} else {
			fmt.Printf("  %-20s %s\n", info.ID, info.Name)
		}
	}
	return nil
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("raytracer"),
		kong.Description("a recursive Whitted ray tracer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	switch ctx.Command() {
	case "render", "render <scene>":
		signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if _, err := renderCommand(signalCtx, CLI.Render); err != nil {
			writeError(err)
		}
	case "config":
		if err := configCommand(os.Stdout); err != nil {
			writeError(err)
		}
	case "scenes", "scenes <dir>":
		if err := scenesCommand(CLI.Scenes.Dir); err != nil {
			writeError(err)
		}
	}
}
