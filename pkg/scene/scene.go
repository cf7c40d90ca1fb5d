package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Objects      *geometry.HittableList // Top-level objects in the scene
	World        geometry.Shape         // Acceleration structure over Objects
	CameraConfig renderer.CameraConfig  // Default camera for this scene
}

// newScene creates an empty scene with the given default camera
func newScene(config renderer.CameraConfig) *Scene {
	return &Scene{
		Objects:      geometry.NewHittableList(),
		CameraConfig: config,
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	for _, shape := range shapes {
		s.Objects.Add(shape)
	}
}

// Preprocess builds the BVH the renderer traces against
func (s *Scene) Preprocess() {
	s.World = geometry.NewBVH(s.Objects)
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Objects.Shapes {
		count += countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, looking through
// lists, hierarchies and transforms
func countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.HittableList:
		count := 0
		for _, inner := range obj.Shapes {
			count += countPrimitivesInShape(inner)
		}
		return count
	case *geometry.BVHNode:
		if obj.Left == nil {
			return 0
		}
		if obj.Left == obj.Right {
			return countPrimitivesInShape(obj.Left)
		}
		return countPrimitivesInShape(obj.Left) + countPrimitivesInShape(obj.Right)
	case *geometry.Translate:
		return countPrimitivesInShape(obj.Object)
	case *geometry.RotateY:
		return countPrimitivesInShape(obj.Object)
	default:
		// Regular shapes count as 1 primitive each
		return 1
	}
}

// NewGroundQuad creates a horizontal square quad centered at the given point
// with normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}

// defaultCameraConfig holds the settings most scenes share
func defaultCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:          core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		VFov:            20.0,
		DefocusAngle:    0.0,
		FocusDistance:   10.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Background:      core.NewVec3(0.70, 0.80, 1.00),
	}
}
