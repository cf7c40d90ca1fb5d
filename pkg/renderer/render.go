package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/golang/glog"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
)

// RenderOptions controls how a frame is scheduled
type RenderOptions struct {
	Seed       int64 // Base seed; each pixel derives its own generator from it
	NumWorkers int   // Parallel workers, 0 = one per CPU
}

// Image is a rendered frame of averaged linear colors in raster order
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (i, j), with j counting rows from the top
func (img *Image) At(i, j int) core.Vec3 {
	return img.Pixels[j*img.Width+i]
}

// Render traces every pixel of the frame described by config against world.
// Rows are rendered in parallel; the returned image is in raster order
// regardless of completion order. Output is a pure function of world,
// config and options.Seed.
func Render(ctx context.Context, world geometry.Shape, config CameraConfig, options RenderOptions) (*Image, RenderStats, error) {
	if err := config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("while validating camera configuration: %w", err)
	}

	camera := NewCamera(config)
	raytracer := NewRaytracer(world, camera)
	pool := NewWorkerPool(options.NumWorkers)
	img := NewImage(camera.Width(), camera.Height())

	if glog.V(1) {
		glog.Infof("Rendering %dx%d at %d samples per pixel, max depth %d, %d workers",
			img.Width, img.Height, config.SamplesPerPixel, config.MaxDepth, pool.GetNumWorkers())
	}

	start := time.Now()
	err := pool.Run(ctx, img.Height, func(ctx context.Context, j int) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		// One generator per row, reseeded for every pixel
		random := rand.New(rand.NewSource(0))
		row := img.Pixels[j*img.Width : (j+1)*img.Width]
		for i := range row {
			random.Seed(pixelSeed(options.Seed, j*img.Width+i))
			row[i] = raytracer.SamplePixel(i, j, config.SamplesPerPixel, random)
		}

		if glog.V(2) {
			glog.Infof("Finished row %d of %d", j+1, img.Height)
		}
		return nil
	})
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("while rendering: %w", err)
	}

	stats := RenderStats{
		Width:        img.Width,
		Height:       img.Height,
		TotalPixels:  img.Width * img.Height,
		TotalSamples: img.Width * img.Height * config.SamplesPerPixel,
		Workers:      pool.GetNumWorkers(),
		Duration:     time.Since(start),
	}
	if glog.V(1) {
		glog.Infof("Rendered %d rows with %d workers", stats.Height, stats.Workers)
	}

	return img, stats, nil
}

// pixelSeed mixes the frame seed with a pixel index so neighbouring pixels
// get unrelated sequences
func pixelSeed(seed int64, index int) int64 {
	z := uint64(seed) + uint64(index+1)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
