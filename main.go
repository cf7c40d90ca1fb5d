package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/df07/go-weekend-pathtracer/pkg/config"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
	"github.com/df07/go-weekend-pathtracer/pkg/scene"
)

var (
	sceneName  = flag.String("scene", "bouncing-spheres", "Built-in scene to render (see -list)")
	configPath = flag.String("config", "", "Optional YAML file with scene, seed, workers and camera settings")
	seed       = flag.Int64("seed", 42, "Seed for scene construction and pixel sampling")
	workers    = flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	width      = flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples    = flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth      = flag.Int("depth", 0, "Maximum bounces per ray (0 = scene default)")
	outPath    = flag.String("out", "", "Output PPM file (default standard output)")
	list       = flag.Bool("list", false, "List available scenes and exit")
)

// options holds everything the command line can ask for
type options struct {
	Scene      string
	ConfigPath string
	Seed       int64
	Workers    int
	Width      int
	Samples    int
	Depth      int
	OutPath    string
	List       bool

	// Explicitly set flags win over the config file
	SetFlags map[string]bool
}

// renderJob is a fully resolved render request
type renderJob struct {
	SceneName string
	Scene     *scene.Scene
	Camera    renderer.CameraConfig
	Options   renderer.RenderOptions
}

func main() {
	// Logs go to stderr unless asked otherwise; stdout may carry the image
	flag.Set("logtostderr", "true")
	flag.Parse()
	defer glog.Flush()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts := options{
		Scene:      *sceneName,
		ConfigPath: *configPath,
		Seed:       *seed,
		Workers:    *workers,
		Width:      *width,
		Samples:    *samples,
		Depth:      *depth,
		OutPath:    *outPath,
		List:       *list,
		SetFlags:   set,
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		glog.Fatalf("%v", err)
	}
}

// run renders the requested scene and writes it as PPM to stdout or opts.OutPath
func run(ctx context.Context, opts options, stdout io.Writer) error {
	if opts.List {
		for _, info := range scene.ListScenes() {
			fmt.Fprintf(stdout, "%-18s %s\n", info.ID, info.Description)
		}
		return nil
	}

	job, err := resolve(opts)
	if err != nil {
		return err
	}

	glog.Infof("Rendering scene %q with seed %d", job.SceneName, job.Options.Seed)
	img, stats, err := renderer.Render(ctx, job.Scene.World, job.Camera, job.Options)
	if err != nil {
		return fmt.Errorf("while rendering scene %q: %w", job.SceneName, err)
	}
	glog.Infof("Rendered %dx%d, %d samples in %v (%.0f samples/s, %d workers)",
		stats.Width, stats.Height, stats.TotalSamples, stats.Duration, stats.SamplesPerSecond(), stats.Workers)

	if opts.OutPath == "" {
		return renderer.WritePPM(stdout, img)
	}

	file, err := os.Create(opts.OutPath)
	if err != nil {
		return fmt.Errorf("while creating output file: %w", err)
	}
	if err := writeAndClose(file, img); err != nil {
		return err
	}
	glog.Infof("Render saved as %s", opts.OutPath)
	return nil
}

// writeAndClose writes img to wc and closes it, reporting the first failure
func writeAndClose(wc io.WriteCloser, img *renderer.Image) error {
	if err := renderer.WritePPM(wc, img); err != nil {
		wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("while closing output file: %w", err)
	}
	return nil
}

// resolve layers scene defaults, the config file and explicit flags, in
// that order of increasing precedence
func resolve(opts options) (*renderJob, error) {
	sceneName := opts.Scene
	renderOptions := renderer.RenderOptions{Seed: opts.Seed, NumWorkers: opts.Workers}

	var file *config.File
	if opts.ConfigPath != "" {
		var err error
		file, err = config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}

		if file.Scene != "" && !opts.SetFlags["scene"] {
			sceneName = file.Scene
		}
		if file.Seed != nil && !opts.SetFlags["seed"] {
			renderOptions.Seed = *file.Seed
		}
		if file.Workers != nil && !opts.SetFlags["workers"] {
			renderOptions.NumWorkers = *file.Workers
		}
	}

	s, err := scene.Build(sceneName, renderOptions.Seed)
	if err != nil {
		return nil, fmt.Errorf("while building scene: %w", err)
	}

	camera := s.CameraConfig
	if file != nil {
		camera, err = file.ApplyCamera(camera)
		if err != nil {
			return nil, fmt.Errorf("while applying config file %s: %w", opts.ConfigPath, err)
		}
	}

	if opts.Width > 0 {
		camera.Width = opts.Width
	}
	if opts.Samples > 0 {
		camera.SamplesPerPixel = opts.Samples
	}
	if opts.Depth > 0 {
		camera.MaxDepth = opts.Depth
	}

	if err := camera.Validate(); err != nil {
		return nil, fmt.Errorf("while validating camera for scene %q: %w", sceneName, err)
	}

	return &renderJob{
		SceneName: sceneName,
		Scene:     s,
		Camera:    camera,
		Options:   renderOptions,
	}, nil
}
