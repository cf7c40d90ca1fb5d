package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// DummyMaterial is a named material so tests can tell which shape was hit
type DummyMaterial struct {
	Name string
}

func (d *DummyMaterial) Scatter(rayIn core.Ray, hit *material.HitRecord, random *rand.Rand) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

var everything = core.NewInterval(0.001, math.Inf(1))
