// Package config reads render settings from YAML files.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// File is the contents of a render configuration file. Every field is
// optional; unset fields leave the command-line or scene defaults alone.
//
//	scene: cornell-box
//	seed: 7
//	workers: 4
//	camera:
//	  width: 300
//	  samplesPerPixel: 50
//	  center: [278, 278, -800]
type File struct {
	Scene   string          `json:"scene,omitempty"`
	Seed    *int64          `json:"seed,omitempty"`
	Workers *int            `json:"workers,omitempty"`
	Camera  json.RawMessage `json:"camera,omitempty"`
}

// Load reads and parses the configuration file at path
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("while reading config file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("while parsing config file %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML (or JSON) configuration. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.UnmarshalStrict(data, f); err != nil {
		return nil, err
	}

	// Validate the camera section eagerly so errors surface at load time
	if _, err := f.ApplyCamera(renderer.CameraConfig{}); err != nil {
		return nil, err
	}
	return f, nil
}

// ApplyCamera returns base with every camera option present in the file
// overriding the corresponding field
func (f *File) ApplyCamera(base renderer.CameraConfig) (renderer.CameraConfig, error) {
	if len(f.Camera) == 0 || bytes.Equal(f.Camera, []byte("null")) {
		return base, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(f.Camera))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&base); err != nil {
		return base, fmt.Errorf("while decoding camera section: %w", err)
	}
	return base, nil
}
