package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

func renderToPPM(t *testing.T, world geometry.Shape, config CameraConfig, options RenderOptions) []string {
	t.Helper()

	img, _, err := Render(context.Background(), world, config, options)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func expectUniformImage(t *testing.T, lines []string, width, height int, pixel string) {
	t.Helper()

	header := []string{"P3", fmt.Sprintf("%d %d", width, height), "255"}
	if diff := cmp.Diff(header, lines[:3]); diff != "" {
		t.Fatalf("Header mismatch (-want +got):\n%s", diff)
	}
	if len(lines)-3 != width*height {
		t.Fatalf("Expected %d pixel lines, got %d", width*height, len(lines)-3)
	}
	for i, line := range lines[3:] {
		if line != pixel {
			t.Errorf("Pixel %d: expected %q, got %q", i, pixel, line)
		}
	}
}

func TestRender_EmissiveQuadFillsFrame(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(0.25, 0.25, 0.25))
	quad := geometry.NewQuad(core.NewVec3(-10, -10, -2), core.NewVec3(20, 0, 0), core.NewVec3(0, 20, 0), light)
	world := geometry.NewHittableList(quad)

	config := pinholeConfig()
	config.Width = 8
	config.AspectRatio = 2.0
	config.SamplesPerPixel = 1
	config.MaxDepth = 1

	lines := renderToPPM(t, world, config, RenderOptions{Seed: 1, NumWorkers: 3})
	expectUniformImage(t, lines, 8, 4, "128 128 128")
}

func TestRender_EmptySceneShowsBackground(t *testing.T) {
	config := pinholeConfig()
	config.Width = 6
	config.AspectRatio = 2.0
	config.SamplesPerPixel = 4
	config.Background = core.NewVec3(0.5, 0.7, 1.0)

	lines := renderToPPM(t, geometry.NewHittableList(), config, RenderOptions{Seed: 7})
	expectUniformImage(t, lines, 6, 3, "181 214 255")
}

func diffuseTestWorld() geometry.Shape {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
	)
	return geometry.NewBVH(world)
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	config := pinholeConfig()
	config.Width = 16
	config.AspectRatio = 16.0 / 9.0
	config.SamplesPerPixel = 4
	config.MaxDepth = 8
	config.Background = core.NewVec3(0.5, 0.7, 1.0)
	world := diffuseTestWorld()

	serial, _, err := Render(context.Background(), world, config, RenderOptions{Seed: 42, NumWorkers: 1})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	parallel, stats, err := Render(context.Background(), world, config, RenderOptions{Seed: 42, NumWorkers: 8})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Errorf("Parallel render differs from serial render (-serial +parallel):\n%s", diff)
	}

	if stats.TotalPixels != 16*9 || stats.TotalSamples != 16*9*4 || stats.Workers != 8 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	other, _, err := Render(context.Background(), world, config, RenderOptions{Seed: 43, NumWorkers: 8})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if cmp.Equal(serial, other) {
		t.Error("Expected a different seed to change the image")
	}
}

func TestRender_InvalidConfig(t *testing.T) {
	config := pinholeConfig()
	config.SamplesPerPixel = 0

	if _, _, err := Render(context.Background(), geometry.NewHittableList(), config, RenderOptions{}); err == nil {
		t.Error("Expected invalid configuration to be rejected")
	}
}

func TestRender_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Render(ctx, geometry.NewHittableList(), pinholeConfig(), RenderOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestPixelSeed_Distinct(t *testing.T) {
	seen := make(map[int64]int)
	for i := 0; i < 10000; i++ {
		s := pixelSeed(42, i)
		if prev, ok := seen[s]; ok {
			t.Fatalf("Pixels %d and %d share seed %d", prev, i, s)
		}
		seen[s] = i
	}
	if pixelSeed(1, 0) == pixelSeed(2, 0) {
		t.Error("Expected frame seed to change pixel seeds")
	}
}
